// Package config_test tests the config show and config path commands.
// Related: internal/cli/config/config.go, internal/cli/config/doctor.go, internal/cli/config/register.go
// Tags: config, cli, settings, editors
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/testutil"
)

// Commands are package-level and tests use t.Setenv, so they run sequentially.

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeErr(t, args...)
	require.NoError(t, err)
	return out
}

func executeErr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "claude-notify"}
	root.PersistentFlags().String("settings", "", "")
	root.PersistentFlags().Bool("debug", false, "")
	shared.AddGroups(root)
	Register(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// isolate points the config dir at a temp dir and returns it.
func isolate(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(testutil.IsolateEnv(t), "config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func body(out string) []byte {
	for i := 0; i+1 < len(out); i++ {
		if out[i] == '\n' && out[i+1] == '\n' {
			return []byte(out[i+2:])
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "test"}
	require.NotPanics(t, func() { Register(root) })

	top := make(map[string]bool)
	for _, c := range root.Commands() {
		top[c.Name()] = true
	}
	assert.True(t, top["config"])
	assert.True(t, top["doctor"])

	names := make(map[string]bool)
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["show"])
	assert.True(t, names["path"])
}

func TestConfigShow_YAML(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"timeout": "45s"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), []byte("EDITORS=zed,warp\n"), 0o644))

	out := execute(t, "config", "show")
	assert.Contains(t, out, "# Settings file: "+filepath.Join(dir, "settings.json"))
	assert.NotContains(t, out, "Settings error")

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(body(out), &got))
	assert.Equal(t, "45s", got["timeout"])
	assert.Equal(t, "300ms", got["open_delay"])
	assert.Equal(t, 20, got["slot_count"])
	assert.Equal(t, []interface{}{"zed", "warp"}, got["editors"])
}

func TestConfigShow_JSON(t *testing.T) {
	isolate(t)

	out := execute(t, "config", "show", "--json")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body(out), &got))
	assert.Equal(t, "30s", got["timeout"])
	assert.Equal(t, "auto", got["presenter"])
	assert.Equal(t, []interface{}{"zed"}, got["editors"])
}

func TestConfigShow_BrokenSettings(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"presenter": "balloon"}`), 0o644))

	out := execute(t, "config", "show", "--json=false")
	assert.Contains(t, out, "# Settings error (defaults shown):")
	assert.Contains(t, out, "presenter")
	assert.Contains(t, out, "presenter: auto")
}

func TestConfigPath(t *testing.T) {
	dir := isolate(t)

	out := execute(t, "config", "path")
	assert.Contains(t, out, "settings: "+filepath.Join(dir, "settings.json")+"\n")
	assert.Contains(t, out, "editors:  "+filepath.Join(dir, "config")+"\n")
	assert.Contains(t, out, "slots:    "+filepath.Join(filepath.Dir(dir), "cache", "slots")+"\n")

	custom := filepath.Join(dir, "other.json")
	out = execute(t, "config", "path", "--settings", custom)
	assert.Contains(t, out, "settings: "+custom+"\n")
}

func fakeDoctorEnv(t *testing.T, cmds ...string) {
	t.Helper()
	orig := doctorEnv
	t.Cleanup(func() { doctorEnv = orig })
	doctorEnv = func(r runner.Runner, logger *log.Logger) notify.Env {
		return notify.Env{
			GOOS:   "darwin",
			Runner: r,
			Available: func(name string) bool {
				for _, c := range cmds {
					if c == name {
						return true
					}
				}
				return false
			},
			Logger: logger,
		}
	}
}

func TestDoctor_Healthy(t *testing.T) {
	isolate(t)
	t.Setenv("CLAUDE_NOTIFY_SOUND_ENABLED", "false")
	fakeDoctorEnv(t, "osascript", "zed")

	out := execute(t, "doctor")
	assert.Contains(t, out, "✓ Settings: valid")
	assert.Contains(t, out, "✓ Presenter: dialog")
	assert.Contains(t, out, "✓ Sound: disabled")
	assert.Contains(t, out, "✓ Editors: zed")
	assert.NotContains(t, out, "✗")
}

func TestDoctor_Failures(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CLAUDE_NOTIFY_SOUND_ENABLED", "false")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"presenter": "dialog"}`), 0o644))
	fakeDoctorEnv(t)

	out, err := executeErr(t, "doc")
	require.Error(t, err)
	assert.Contains(t, out, "✗ Presenter:")
	assert.Contains(t, out, "✗ Editors: not in PATH: zed (zed)")
}
