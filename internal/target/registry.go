package target

import (
	"sort"
	"strings"
)

// RegistryVersion is bumped whenever the built-in table changes shape or content.
const RegistryVersion = 2

const (
	// FallbackID is returned by Resolve when nothing matches.
	FallbackID = "terminal"
	// DefaultEditorID is the single default of the editors-file path.
	DefaultEditorID = "zed"
)

const (
	editorIcon   = "accessories-text-editor"
	terminalIcon = "utilities-terminal"
)

// builtinTargets is the one shared catalog consumed by both resolution paths.
var builtinTargets = []Target{
	{ID: "zed", DisplayName: "Zed", AppName: "Zed", Strategy: CLI("zed"), BrandColor: "#084CCF", Icon: editorIcon},
	{ID: "vscode", DisplayName: "VS Code", AppName: "Visual Studio Code", Strategy: CLI("code"), BrandColor: "#007ACC", Icon: editorIcon},
	{ID: "cursor", DisplayName: "Cursor", AppName: "Cursor", Strategy: CLI("cursor"), BrandColor: "#1E1E1E", Icon: editorIcon},
	{ID: "windsurf", DisplayName: "Windsurf", AppName: "Windsurf", Strategy: CLI("windsurf"), BrandColor: "#09B6A2", Icon: editorIcon},
	{ID: "void", DisplayName: "Void", AppName: "Void", Strategy: CLI("void"), BrandColor: "#4F46E5", Icon: editorIcon},
	{ID: "sublime", DisplayName: "Sublime", AppName: "Sublime Text", Strategy: CLI("subl"), BrandColor: "#FF9800", Icon: editorIcon},
	{ID: "fleet", DisplayName: "Fleet", AppName: "Fleet", Strategy: CLI("fleet"), BrandColor: "#7B61FF", Icon: editorIcon},
	{ID: "nova", DisplayName: "Nova", AppName: "Nova", Strategy: CLI("nova"), BrandColor: "#5E4AE3", Icon: editorIcon},
	{ID: "warp", DisplayName: "Warp", AppName: "Warp", Strategy: URLScheme("warp://action/new_tab?path="), BrandColor: "#01A4FF", Icon: terminalIcon},
	{ID: "terminal", DisplayName: "Terminal", AppName: "Terminal", Strategy: WindowFocus(), Terminal: true, BrandColor: "#4D4D4D", Icon: terminalIcon},
	{ID: "iterm", DisplayName: "iTerm2", AppName: "iTerm", Strategy: WindowFocus(), Terminal: true, BrandColor: "#3DDC84", Icon: terminalIcon},
	{ID: "ghostty", DisplayName: "Ghostty", AppName: "Ghostty", Strategy: WindowFocus(), Terminal: true, BrandColor: "#3551F3", Icon: terminalIcon},
}

// builtinAliases are extra exact-match spellings.
var builtinAliases = map[string]string{
	"code":           "vscode",
	"iterm2":         "iterm",
	"iterm.app":      "iterm",
	"terminal.app":   "terminal",
	"apple_terminal": "terminal",
	"subl":           "sublime",
}

// FuzzyRule maps any of Needles (substring match) to the target ID.
type FuzzyRule struct {
	Needles []string
	ID      string
}

// builtinRules are checked in order; ties are broken by position, not alphabetically.
var builtinRules = []FuzzyRule{
	{Needles: []string{"vscode", "visual studio", "vs code", "code"}, ID: "vscode"},
	{Needles: []string{"cursor"}, ID: "cursor"},
	{Needles: []string{"zed"}, ID: "zed"},
	{Needles: []string{"windsurf"}, ID: "windsurf"},
	{Needles: []string{"iterm"}, ID: "iterm"},
	{Needles: []string{"ghostty"}, ID: "ghostty"},
}

// Registry is a read-only lookup table of targets.
type Registry struct {
	targets  map[string]Target
	order    []string
	aliases  map[string]string
	names    map[string]string
	rules    []FuzzyRule
	fallback string
}

// NewRegistry builds a registry from targets, aliases and fuzzy rules.
// The fallback ID must name one of the targets.
func NewRegistry(targets []Target, aliases map[string]string, rules []FuzzyRule, fallback string) *Registry {
	r := &Registry{
		targets:  make(map[string]Target, len(targets)),
		aliases:  make(map[string]string, len(aliases)),
		names:    make(map[string]string, len(targets)),
		rules:    rules,
		fallback: fallback,
	}
	for _, t := range targets {
		r.targets[t.ID] = t
		r.order = append(r.order, t.ID)
		if name := normalize(t.DisplayName); name != "" {
			if _, taken := r.names[name]; !taken {
				r.names[name] = t.ID
			}
		}
	}
	for alias, id := range aliases {
		r.aliases[normalize(alias)] = id
	}
	return r
}

var defaultRegistry = NewRegistry(builtinTargets, builtinAliases, builtinRules, FallbackID)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Get returns the target with the given canonical ID.
func (r *Registry) Get(id string) (Target, bool) {
	t, ok := r.targets[id]
	return t, ok
}

// Lookup finds a target by exact (case-insensitive) id, alias or display name.
func (r *Registry) Lookup(raw string) (Target, bool) {
	key := normalize(raw)
	if t, ok := r.lookupID(key); ok {
		return t, true
	}
	if id, ok := r.names[key]; ok {
		return r.Get(id)
	}
	return Target{}, false
}

// lookupID matches canonical ids and aliases only.
func (r *Registry) lookupID(key string) (Target, bool) {
	if t, ok := r.targets[key]; ok {
		return t, true
	}
	if id, ok := r.aliases[key]; ok {
		return r.Get(id)
	}
	return Target{}, false
}

// Fallback returns the target used when nothing matches.
func (r *Registry) Fallback() Target {
	return r.targets[r.fallback]
}

// All returns every target in registration order.
func (r *Registry) All() []Target {
	out := make([]Target, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.targets[id])
	}
	return out
}

// IDs returns all canonical IDs in alphabetical order.
func (r *Registry) IDs() []string {
	ids := append([]string(nil), r.order...)
	sort.Strings(ids)
	return ids
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
