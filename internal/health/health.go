// Package health checks that the pieces an alert depends on are present: a usable
// presenter, valid settings, a writable slot directory, a sound player, and the
// command-line launchers of the configured editors.
package health

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Inputs is everything the checks look at.
type Inputs struct {
	Settings *config.Settings
	// SettingsErr is the error config.Load returned, if any.
	SettingsErr error
	Env         notify.Env
	Sender      notify.Sender
	Editors     []target.Target
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(in Inputs) *HealthReport {
	report := &HealthReport{Passed: true}
	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(CheckSettings(in.SettingsErr))
	add(CheckPresenter(in.Settings.Presenter, in.Env))
	add(CheckSlotDir(in.Settings.SlotDir))
	add(CheckSound(in.Settings.SoundEnabled, in.Sender))
	add(CheckEditors(in.Editors, in.Env.Available))
	return report
}

// CheckSettings reports whether the settings file loaded.
func CheckSettings(err error) CheckResult {
	if err != nil {
		return CheckResult{
			Name:    "Settings",
			Passed:  false,
			Message: fmt.Sprintf("%v (alerts use defaults)", err),
		}
	}
	return CheckResult{Name: "Settings", Passed: true, Message: "valid"}
}

// CheckPresenter reports which presenter an alert would use. An alert that can only
// fall back to the silent presenter fails the check.
func CheckPresenter(name string, env notify.Env) CheckResult {
	p, err := notify.Select(name, env)
	if err != nil {
		return CheckResult{
			Name:    "Presenter",
			Passed:  false,
			Message: fmt.Sprintf("%s: %v", name, err),
		}
	}
	if p.Name() == notify.PresenterNone {
		return CheckResult{
			Name:    "Presenter",
			Passed:  name == notify.PresenterNone,
			Message: "none (alerts are not shown)",
		}
	}
	return CheckResult{Name: "Presenter", Passed: true, Message: p.Name()}
}

// CheckSlotDir verifies that lock files can be created in dir.
func CheckSlotDir(dir string) CheckResult {
	fail := func(err error) CheckResult {
		return CheckResult{
			Name:    "Slot directory",
			Passed:  false,
			Message: fmt.Sprintf("%s: %v (alerts will overlap)", dir, err),
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fail(err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return CheckResult{Name: "Slot directory", Passed: true, Message: filepath.Clean(dir)}
}

// CheckSound reports whether alert sounds can play.
func CheckSound(enabled bool, s notify.Sender) CheckResult {
	switch {
	case !enabled:
		return CheckResult{Name: "Sound", Passed: true, Message: "disabled"}
	case s == nil || !s.SoundAvailable():
		return CheckResult{Name: "Sound", Passed: false, Message: "no sound player found"}
	default:
		return CheckResult{Name: "Sound", Passed: true, Message: "available"}
	}
}

// CheckEditors verifies that every command-line launcher among targets is on PATH.
func CheckEditors(targets []target.Target, available func(string) bool) CheckResult {
	var ids, missing []string
	for _, t := range targets {
		ids = append(ids, t.ID)
		if t.Strategy.Kind == target.CommandLineLaunch && !available(t.Strategy.Value) {
			missing = append(missing, fmt.Sprintf("%s (%s)", t.Strategy.Value, t.ID))
		}
	}
	if len(missing) > 0 {
		return CheckResult{
			Name:    "Editors",
			Passed:  false,
			Message: "not in PATH: " + strings.Join(missing, ", "),
		}
	}
	return CheckResult{Name: "Editors", Passed: true, Message: strings.Join(ids, ", ")}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, check.Name, check.Message)
	}
	return b.String()
}
