package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/ariel-frischer/claude-notify/internal/target"
)

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// DetectTerminalCapabilities detects terminal features and returns capabilities
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("CLAUDE_NOTIFY_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// spinnerSet returns the index into spinner.CharSets for the capabilities.
func spinnerSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14 // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	return 9 // | / - \
}

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// Terminal draws the alert inline and reads a single key press.
// Keys 1-9 open the matching target, enter opens the first, d/q/esc dismiss.
type Terminal struct {
	in   io.Reader
	out  io.Writer
	raw  bool
	tick time.Duration
}

// NewTerminal returns a terminal presenter. When raw is true and in is a terminal,
// it is switched to raw mode so a single key press answers.
func NewTerminal(in io.Reader, out io.Writer, raw bool) *Terminal {
	return &Terminal{in: in, out: out, raw: raw, tick: time.Second}
}

func (t *Terminal) Name() string { return PresenterTerminal }

func (t *Terminal) Show(ctx context.Context, a Alert) (Choice, error) {
	caps := DetectTerminalCapabilities()
	fmt.Fprint(t.out, renderBox(a, caps.SupportsUnicode))

	if restore := t.makeRaw(); restore != nil {
		defer restore()
	}

	sp := spinner.New(spinner.CharSets[spinnerSet(caps)], 100*time.Millisecond, spinner.WithWriter(t.out))
	sp.Suffix = countdown(ctx)
	sp.Start()
	defer sp.Stop()

	keys := readKeys(t.in)
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Dismissed, nil
		case <-ticker.C:
			sp.Lock()
			sp.Suffix = countdown(ctx)
			sp.Unlock()
		case k, ok := <-keys:
			if !ok {
				// Input closed; only the deadline can answer now.
				keys = nil
				continue
			}
			if choice, done := decodeKey(a, k); done {
				return choice, nil
			}
		}
	}
}

func (t *Terminal) makeRaw() func() {
	if !t.raw {
		return nil
	}
	f, ok := t.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil
	}
	return func() { _ = term.Restore(int(f.Fd()), state) }
}

// readKeys forwards bytes from r until it fails. The goroutine may outlive Show while
// blocked on a read; the process exits right after the alert anyway.
func readKeys(r io.Reader) <-chan byte {
	ch := make(chan byte)
	go func() {
		defer close(ch)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				ch <- buf[0]
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// decodeKey reports the choice for k and whether k answers the alert.
func decodeKey(a Alert, k byte) (Choice, bool) {
	switch {
	case k >= '1' && k <= '9':
		i := int(k - '1')
		if i < len(a.Targets) {
			return OpenChoice(a.Targets[i]), true
		}
	case k == '\r' || k == '\n':
		if len(a.Targets) > 0 {
			return OpenChoice(a.Targets[0]), true
		}
	case k == 'd' || k == 'D' || k == 'q' || k == keyEsc || k == keyCtrlC:
		return Dismissed, true
	}
	return Dismissed, false
}

func countdown(ctx context.Context) string {
	deadline, ok := ctx.Deadline()
	if !ok {
		return " waiting"
	}
	left := time.Until(deadline).Round(time.Second)
	if left < 0 {
		left = 0
	}
	return fmt.Sprintf(" dismissing in %s", left)
}

const minRuleWidth = 40

// ruleWidth fits the card's rules to its widest text line, measured in terminal cells.
func ruleWidth(a Alert) int {
	w := minRuleWidth
	for _, text := range []string{"  " + a.Header(), "  " + a.Project, "  " + a.Subtitle()} {
		if n := runewidth.StringWidth(text); n > w {
			w = n
		}
	}
	return w
}

// renderBox draws the alert card. Lines end in \r\n so they survive raw mode.
func renderBox(a Alert, unicode bool) string {
	bullet, rule := "*", "-"
	if unicode {
		bullet, rule = "●", "─"
	}
	accent := color.New(color.FgCyan, color.Bold)
	if a.Kind == KindPermission {
		accent = color.New(color.FgYellow, color.Bold)
	}
	dim := color.New(color.Faint)

	var b strings.Builder
	line := strings.Repeat(rule, ruleWidth(a))
	b.WriteString(dim.Sprint(line) + "\r\n")
	b.WriteString(accent.Sprint(bullet+" "+a.Header()) + "\r\n")
	b.WriteString("  " + color.New(color.Bold).Sprint(a.Project) + "\r\n")
	b.WriteString("  " + dim.Sprint(a.Subtitle()) + "\r\n")

	labels := a.Buttons()
	hints := make([]string, 0, len(labels)+1)
	for i, l := range labels {
		if i >= 9 {
			break
		}
		hints = append(hints, "["+strconv.Itoa(i+1)+"] "+Brand(a.Targets[i]).Sprint(l))
	}
	hints = append(hints, "[d] "+DismissLabel)
	b.WriteString("  " + strings.Join(hints, "  ") + "\r\n")
	b.WriteString(dim.Sprint(line) + "\r\n")
	return b.String()
}

// Brand returns the target's hex brand color, or the reset color when it has none.
func Brand(t target.Target) *color.Color {
	hex := strings.TrimPrefix(t.BrandColor, "#")
	if len(hex) != 6 {
		return color.New(color.Reset)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.New(color.Reset)
	}
	return color.RGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
}
