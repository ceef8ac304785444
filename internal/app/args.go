package app

import (
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/notify"
)

// PermissionMode is the argument value that switches an alert to permission semantics.
const PermissionMode = "permission"

const (
	defaultRuntime = "Claude"
	defaultProject = "Project"
)

// Params are the positional hook arguments:
//
//	[runtime] [project] [project-path] [editor] [tty] [mode]
type Params struct {
	Runtime     string
	Project     string
	ProjectPath string
	// Editor is the raw editor/terminal identifier; empty means "use the editors file".
	Editor string
	// TTY is the raw device path; "none" and empty mean absent.
	TTY  string
	Kind notify.Kind
}

// ParseArgs maps positional arguments to Params. Every argument is optional and
// "permission" anywhere selects permission semantics.
func ParseArgs(args []string) Params {
	p := Params{
		Runtime: defaultRuntime,
		Project: defaultProject,
		Kind:    notify.KindCompletion,
	}
	for _, a := range args {
		if a == PermissionMode {
			p.Kind = notify.KindPermission
			break
		}
	}

	at := func(i int) string {
		if i >= len(args) {
			return ""
		}
		v := strings.TrimSpace(args[i])
		// The mode word may be passed early when trailing args are omitted.
		if i >= 3 && v == PermissionMode {
			return ""
		}
		return v
	}

	if v := at(0); v != "" {
		p.Runtime = v
	}
	if v := at(1); v != "" {
		p.Project = v
	}
	p.ProjectPath = at(2)
	p.Editor = at(3)
	p.TTY = at(4)
	return p
}
