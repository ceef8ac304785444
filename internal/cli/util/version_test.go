// Package util_test tests the version and sauce commands.
// Related: internal/cli/util/version.go, internal/cli/util/register.go
// Tags: util, cli, version
package util

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/build"
	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
)

// Tests here share package-level commands and build globals, so they run sequentially.

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := &cobra.Command{Use: "claude-notify"}
	shared.AddGroups(root)
	Register(root)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "test"}
	require.NotPanics(t, func() { Register(root) })

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["sauce"])
}

func TestVersion_Plain(t *testing.T) {
	origVersion, origCommit := build.Version, build.Commit
	defer func() { build.Version, build.Commit = origVersion, origCommit }()
	build.Version = "v0.3.0"
	build.Commit = "deadbeefcafe"
	defer func() { versionPlain = false }()

	out := execute(t, "version", "--plain")
	assert.Contains(t, out, "claude-notify v0.3.0\n")
	assert.Contains(t, out, "commit: deadbeefcafe\n")
	assert.Contains(t, out, "go: "+runtime.Version())
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersion_Pretty(t *testing.T) {
	origCommit := build.Commit
	defer func() { build.Commit = origCommit }()
	build.Commit = "deadbeefcafe"
	versionPlain = false

	out := execute(t, "version")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "deadbeef")
	assert.NotContains(t, out, "deadbeefcafe")
	assert.Contains(t, out, build.SourceURL)
}

func TestVersion_RejectsArgs(t *testing.T) {
	root := &cobra.Command{Use: "claude-notify"}
	shared.AddGroups(root)
	Register(root)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "extra"})
	assert.Error(t, root.Execute())
}

func TestSauce(t *testing.T) {
	assert.Equal(t, build.SourceURL+"\n", execute(t, "sauce"))
}
