package notify

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ariel-frischer/claude-notify/internal/runner"
)

// Sender plays alert sounds.
type Sender interface {
	// SendSound starts playing the named system sound or sound file and returns once the
	// player is running. It does not wait for playback to finish.
	SendSound(ctx context.Context, sound string) error

	// SoundAvailable returns true if the platform player is installed.
	SoundAvailable() bool
}

// soundCommand maps a sound to the player invocation for one platform.
type soundCommand func(sound string) (name string, args []string, ok bool)

// NewSender creates a sender for the current operating system.
func NewSender(r runner.Runner, logger *log.Logger) Sender {
	return newSenderFor(runtime.GOOS, r, logger, runner.Available)
}

func newSenderFor(goos string, r runner.Runner, logger *log.Logger, available func(string) bool) Sender {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var (
		player string
		build  soundCommand
	)
	switch goos {
	case "darwin":
		player, build = "afplay", darwinSound
	case "linux":
		player, build = "paplay", linuxSound
	case "windows":
		player, build = "powershell", windowsSound
	default:
		return noopSender{}
	}
	return &execSender{
		runner:    r,
		build:     build,
		available: available(player),
		logger:    logger,
	}
}

type execSender struct {
	runner    runner.Runner
	build     soundCommand
	available bool
	logger    *log.Logger
}

func (s *execSender) SendSound(ctx context.Context, sound string) error {
	if !s.available {
		return nil
	}
	if isSoundFile(sound) {
		sound = ValidateSoundFile(sound, s.logger)
	}
	name, args, ok := s.build(sound)
	if !ok {
		return nil
	}
	wait, err := s.runner.Start(ctx, name, args...)
	if err != nil {
		return err
	}
	go func() {
		if err := wait(); err != nil {
			s.logger.Debug("sound player failed", "player", name, "err", err)
		}
	}()
	return nil
}

func (s *execSender) SoundAvailable() bool {
	return s.available
}

// noopSender is used on platforms without a known player.
type noopSender struct{}

func (noopSender) SendSound(context.Context, string) error { return nil }
func (noopSender) SoundAvailable() bool                    { return false }

const darwinSoundDir = "/System/Library/Sounds"

// darwinSound plays named system sounds ("Glass") from the system library.
func darwinSound(sound string) (string, []string, bool) {
	if sound == "" {
		sound = "Glass"
	}
	if !isSoundFile(sound) {
		sound = filepath.Join(darwinSoundDir, sound+".aiff")
	}
	return "afplay", []string{sound}, true
}

// linuxSounds maps the macOS sound names to freedesktop theme sounds.
var linuxSounds = map[string]string{
	"Glass": "/usr/share/sounds/freedesktop/stereo/complete.oga",
	"Ping":  "/usr/share/sounds/freedesktop/stereo/message-new-instant.oga",
}

func linuxSound(sound string) (string, []string, bool) {
	if !isSoundFile(sound) {
		file, ok := linuxSounds[sound]
		if !ok {
			return "", nil, false
		}
		sound = file
	}
	return "paplay", []string{sound}, true
}

func windowsSound(sound string) (string, []string, bool) {
	script := "[System.Media.SystemSounds]::Asterisk.Play()"
	if isSoundFile(sound) {
		script = "(New-Object Media.SoundPlayer '" + strings.ReplaceAll(sound, "'", "''") + "').PlaySync()"
	}
	return "powershell", []string{"-NoProfile", "-Command", script}, true
}

// isSoundFile tells a path apart from a system sound name.
func isSoundFile(sound string) bool {
	return strings.ContainsRune(sound, os.PathSeparator) || strings.ContainsRune(sound, '/') || filepath.Ext(sound) != ""
}

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks if the sound file exists and has a supported format.
// Returns the path when usable and "" (fall back to the default sound) otherwise.
func ValidateSoundFile(soundFile string, logger *log.Logger) string {
	if soundFile == "" {
		return ""
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		logger.Warn("sound file unusable, falling back to default", "file", soundFile, "err", err)
		return ""
	}

	if info.IsDir() {
		logger.Warn("sound path is a directory, falling back to default", "file", soundFile)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		logger.Warn("unsupported audio format, falling back to default", "file", soundFile, "ext", ext)
		return ""
	}

	return soundFile
}
