// Package target_test tests identifier resolution: exact match, fuzzy priority, and fallback.
// Related: internal/target/resolve.go, internal/target/registry.go
// Tags: target, resolve, registry, fuzzy
package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Canonical(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want string
	}{
		"zed":                  {raw: "zed", want: "zed"},
		"zed capitalized":      {raw: "Zed", want: "zed"},
		"zed padded":           {raw: "  ZED \n", want: "zed"},
		"vscode id":            {raw: "vscode", want: "vscode"},
		"code alias":           {raw: "code", want: "vscode"},
		"vs code display name": {raw: "VS Code", want: "vscode"},
		"cursor":               {raw: "Cursor", want: "cursor"},
		"windsurf":             {raw: "windsurf", want: "windsurf"},
		"void":                 {raw: "void", want: "void"},
		"sublime":              {raw: "Sublime", want: "sublime"},
		"subl alias":           {raw: "subl", want: "sublime"},
		"fleet":                {raw: "fleet", want: "fleet"},
		"nova":                 {raw: "NOVA", want: "nova"},
		"warp":                 {raw: "Warp", want: "warp"},
		"terminal":             {raw: "Terminal", want: "terminal"},
		"apple terminal env":   {raw: "Apple_Terminal", want: "terminal"},
		"iterm":                {raw: "iterm", want: "iterm"},
		"iterm2 display name":  {raw: "iTerm2", want: "iterm"},
		"iterm TERM_PROGRAM":   {raw: "iTerm.app", want: "iterm"},
		"ghostty":              {raw: "Ghostty", want: "ghostty"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.raw).ID)
		})
	}
}

func TestResolve_Fuzzy(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want string
	}{
		"visual studio code":      {raw: "Visual Studio Code", want: "vscode"},
		"code insiders":           {raw: "code-insiders", want: "vscode"},
		"cursor app":              {raw: "Cursor.app", want: "cursor"},
		"zed preview":             {raw: "Zed Preview", want: "zed"},
		"windsurf next":           {raw: "windsurf-next", want: "windsurf"},
		"iterm nightly":           {raw: "iTerm2-nightly", want: "iterm"},
		"ghostty path":            {raw: "/Applications/Ghostty.app", want: "ghostty"},
		"code beats cursor order": {raw: "cursor-code", want: "vscode"},
		"cursor beats zed order":  {raw: "zed-cursor", want: "cursor"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.raw).ID)
		})
	}
}

func TestResolve_Fallback(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "emacs", "kitty", "none"} {
		got := Resolve(raw)
		assert.Equal(t, FallbackID, got.ID, "raw=%q", raw)
		assert.True(t, got.Terminal)
	}
}

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	t.Parallel()

	// "codeterm" contains "code", so the editor substring rule would capture it
	// if exact matching did not run first.
	reg := NewRegistry(
		[]Target{
			{ID: "vscode", DisplayName: "VS Code", AppName: "Visual Studio Code", Strategy: CLI("code")},
			{ID: "codeterm", DisplayName: "CodeTerm", AppName: "CodeTerm", Strategy: WindowFocus(), Terminal: true},
			{ID: "terminal", DisplayName: "Terminal", AppName: "Terminal", Strategy: WindowFocus(), Terminal: true},
		},
		nil,
		[]FuzzyRule{{Needles: []string{"code"}, ID: "vscode"}},
		"terminal",
	)

	got := reg.Resolve("CodeTerm")
	assert.Equal(t, "codeterm", got.ID)
	assert.True(t, got.Terminal)

	assert.Equal(t, "vscode", reg.Resolve("codeterm-nightly").ID)
}

func TestRegistry_Contents(t *testing.T) {
	t.Parallel()
	reg := Default()

	fallback := reg.Fallback()
	assert.Equal(t, "terminal", fallback.ID)
	assert.Equal(t, TerminalWindowFocus, fallback.Strategy.Kind)

	for _, tgt := range reg.All() {
		assert.NotEmpty(t, tgt.DisplayName, tgt.ID)
		assert.NotEmpty(t, tgt.AppName, tgt.ID)
		if tgt.Terminal {
			assert.Equal(t, TerminalWindowFocus, tgt.Strategy.Kind, tgt.ID)
			assert.False(t, tgt.CanOpenProject(), tgt.ID)
		} else {
			assert.True(t, tgt.CanOpenProject(), tgt.ID)
		}
	}

	zed, ok := reg.Get("zed")
	require.True(t, ok)
	assert.Equal(t, "cli:zed", zed.Strategy.String())
	assert.Equal(t, "editor", zed.Class())

	warp, ok := reg.Get("warp")
	require.True(t, ok)
	assert.Equal(t, URLSchemeLaunch, warp.Strategy.Kind)
	assert.Equal(t, "warp://action/new_tab?path=", warp.Strategy.Value)

	assert.IsIncreasing(t, reg.IDs())
}

func TestExplain(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw    string
		wantID string
		want   Match
	}{
		"canonical id":  {raw: "zed", wantID: "zed", want: MatchExact},
		"display name":  {raw: "VS Code", wantID: "vscode", want: MatchExact},
		"substring":     {raw: "my-zed-build", wantID: "zed", want: MatchFuzzy},
		"unknown":       {raw: "emacs", wantID: "terminal", want: MatchFallback},
		"blank":         {raw: "  ", wantID: "terminal", want: MatchFallback},
		"exact to term": {raw: "terminal", wantID: "terminal", want: MatchExact},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, how := Default().Explain(tt.raw)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.want, how)
			assert.Equal(t, got, Default().Resolve(tt.raw))
		})
	}
}
