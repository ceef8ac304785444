// Package notify_test tests platform sound commands and custom sound file validation.
// Related: internal/notify/sender.go
// Tags: notify, sound, afplay, paplay
package notify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/testutil"
)

func allAvailable(string) bool { return true }

func TestSender_SystemSounds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		goos     string
		sound    string
		wantName string
		wantArgs []string
	}{
		"darwin glass": {
			goos: "darwin", sound: "Glass",
			wantName: "afplay", wantArgs: []string{"/System/Library/Sounds/Glass.aiff"},
		},
		"darwin ping": {
			goos: "darwin", sound: "Ping",
			wantName: "afplay", wantArgs: []string{"/System/Library/Sounds/Ping.aiff"},
		},
		"linux glass": {
			goos: "linux", sound: "Glass",
			wantName: "paplay", wantArgs: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"},
		},
		"windows": {
			goos: "windows", sound: "Ping",
			wantName: "powershell", wantArgs: []string{"-NoProfile", "-Command", "[System.Media.SystemSounds]::Asterisk.Play()"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := testutil.NewMockRunner()
			s := newSenderFor(tt.goos, r, nil, allAvailable)
			require.True(t, s.SoundAvailable())

			require.NoError(t, s.SendSound(context.Background(), tt.sound))
			calls := r.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantName, calls[0].Name)
			assert.Equal(t, tt.wantArgs, calls[0].Args)
		})
	}
}

func TestSender_UnknownLinuxSoundIsSilent(t *testing.T) {
	t.Parallel()
	r := testutil.NewMockRunner()
	s := newSenderFor("linux", r, nil, allAvailable)

	require.NoError(t, s.SendSound(context.Background(), "Submarine"))
	assert.Empty(t, r.Calls())
}

func TestSender_CustomFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "done.wav")
	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))

	r := testutil.NewMockRunner()
	s := newSenderFor("darwin", r, nil, allAvailable)
	require.NoError(t, s.SendSound(context.Background(), file))
	assert.Equal(t, []string{file}, r.Calls()[0].Args)

	// A missing file falls back to the default system sound.
	r.Reset()
	require.NoError(t, s.SendSound(context.Background(), filepath.Join(dir, "missing.wav")))
	assert.Equal(t, []string{"/System/Library/Sounds/Glass.aiff"}, r.Calls()[0].Args)
}

func TestSender_Unavailable(t *testing.T) {
	t.Parallel()
	r := testutil.NewMockRunner()
	s := newSenderFor("darwin", r, nil, func(string) bool { return false })
	assert.False(t, s.SoundAvailable())
	require.NoError(t, s.SendSound(context.Background(), "Glass"))
	assert.Empty(t, r.Calls())

	noop := newSenderFor("plan9", r, nil, allAvailable)
	assert.False(t, noop.SoundAvailable())
	assert.NoError(t, noop.SendSound(context.Background(), "Glass"))
}

func TestSender_PlayerError(t *testing.T) {
	t.Parallel()
	r := testutil.NewMockRunner().OnCommand("afplay", "", assert.AnError)
	s := newSenderFor("darwin", r, nil, allAvailable)
	assert.ErrorIs(t, s.SendSound(context.Background(), "Glass"), assert.AnError)
}

func TestValidateSoundFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.aiff")
	bad := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(good, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o644))

	tests := map[string]struct {
		file string
		want string
	}{
		"empty":       {file: "", want: ""},
		"valid":       {file: good, want: good},
		"missing":     {file: filepath.Join(dir, "nope.wav"), want: ""},
		"directory":   {file: dir, want: ""},
		"unsupported": {file: bad, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateSoundFile(tt.file, nil))
		})
	}
}

func TestIsSoundFile(t *testing.T) {
	t.Parallel()
	assert.False(t, isSoundFile("Glass"))
	assert.True(t, isSoundFile("/tmp/a.wav"))
	assert.True(t, isSoundFile("chime.mp3"))
}
