// Package notify_test tests alert text, button labels and stacked panel layout.
// Related: internal/notify/alert.go, internal/notify/layout.go
// Tags: notify, alert, layout
package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/target"
)

func targets(t *testing.T, ids ...string) []target.Target {
	t.Helper()
	out := make([]target.Target, 0, len(ids))
	for _, id := range ids {
		tg, ok := target.Default().Get(id)
		require.True(t, ok, "missing target %s", id)
		out = append(out, tg)
	}
	return out
}

func TestAlert_Text(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind         Kind
		wantHeader   string
		wantSubtitle string
		wantSound    string
	}{
		"completion": {
			kind:         KindCompletion,
			wantHeader:   "Claude Complete",
			wantSubtitle: "Ready for your input",
			wantSound:    "Glass",
		},
		"permission": {
			kind:         KindPermission,
			wantHeader:   "Claude Needs Approval",
			wantSubtitle: "Permission required to continue",
			wantSound:    "Ping",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := Alert{Kind: tt.kind, Runtime: "Claude"}
			assert.Equal(t, tt.wantHeader, a.Header())
			assert.Equal(t, tt.wantSubtitle, a.Subtitle())
			assert.Equal(t, tt.wantSound, a.Sound())
		})
	}
}

func TestAlert_Buttons(t *testing.T) {
	t.Parallel()

	single := Alert{Targets: targets(t, "zed")}
	assert.Equal(t, []string{OpenProjectLabel}, single.Buttons())
	got, ok := single.TargetForLabel(OpenProjectLabel)
	require.True(t, ok)
	assert.Equal(t, "zed", got.ID)

	multi := Alert{Targets: targets(t, "zed", "vscode", "warp")}
	assert.Equal(t, []string{"Zed", "VS Code", "Warp"}, multi.Buttons())
	got, ok = multi.TargetForLabel("VS Code")
	require.True(t, ok)
	assert.Equal(t, "vscode", got.ID)

	_, ok = multi.TargetForLabel(OpenProjectLabel)
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n, slot int
		want    Placement
	}{
		"single target first slot": {n: 1, slot: 0, want: Placement{Width: 320, Height: 230, Top: 12, Right: 12}},
		"single target third slot": {n: 1, slot: 2, want: Placement{Width: 320, Height: 230, Top: 12 + 2*238, Right: 12}},
		"two targets":              {n: 2, slot: 0, want: Placement{Width: 320, Height: 274, Top: 12, Right: 12}},
		"four targets":             {n: 4, slot: 1, want: Placement{Width: 320, Height: 318, Top: 12 + 326, Right: 12}},
		"no targets":               {n: 0, slot: 0, want: Placement{Width: 320, Height: 230, Top: 12, Right: 12}},
		"negative slot clamps":     {n: 1, slot: -1, want: Placement{Width: 320, Height: 230, Top: 12, Right: 12}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Layout(tt.n, tt.slot))
		})
	}
}

func TestOpenChoice(t *testing.T) {
	t.Parallel()
	c := OpenChoice(targets(t, "cursor")[0])
	assert.True(t, c.Open)
	assert.Equal(t, "cursor", c.Target.ID)
	assert.False(t, Dismissed.Open)
}
