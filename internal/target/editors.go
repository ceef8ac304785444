package target

import (
	"bufio"
	"bytes"
	"os"
	"strings"
)

const (
	editorsKey = "EDITORS="
	editorKey  = "EDITOR="
)

// LoadEditors reads the editors file at path and resolves it against the built-in registry.
func LoadEditors(path string) []Target {
	return defaultRegistry.LoadEditors(path)
}

// LoadEditors reads a line-oriented KEY=value file and returns the configured targets.
// A missing or unreadable file yields the single default editor.
func (r *Registry) LoadEditors(path string) []Target {
	data, err := os.ReadFile(path)
	if err != nil {
		return r.defaultEditors()
	}
	return r.ParseEditors(data)
}

// ParseEditors scans lines in order; the first recognized line that yields at least one
// known target wins.
//
//	EDITORS=zed,vscode,warp   all known ids, in listed order, unknowns dropped
//	EDITOR=zed                legacy single-editor key
//
// Lookup is by canonical id or alias only, never fuzzy. When no line qualifies the
// result is the single default editor.
func (r *Registry) ParseEditors(data []byte) []Target {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, editorsKey):
			value := normalize(strings.TrimPrefix(line, editorsKey))
			var targets []Target
			for _, key := range strings.Split(value, ",") {
				if t, ok := r.lookupID(normalize(key)); ok {
					targets = append(targets, t)
				}
			}
			if len(targets) > 0 {
				return targets
			}
		case strings.HasPrefix(line, editorKey):
			value := normalize(strings.TrimPrefix(line, editorKey))
			if t, ok := r.lookupID(value); ok {
				return []Target{t}
			}
		}
	}
	return r.defaultEditors()
}

func (r *Registry) defaultEditors() []Target {
	if t, ok := r.Get(DefaultEditorID); ok {
		return []Target{t}
	}
	return []Target{r.Fallback()}
}
