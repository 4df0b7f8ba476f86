package reclaim_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/reclaim/internal/reclaim"
)

func TestOutermost(t *testing.T) {
	j := filepath.Join

	tests := []struct {
		name    string
		targets []string
		want    []string
	}{
		{
			name:    "empty",
			targets: nil,
			want:    []string{},
		},
		{
			name:    "siblings are kept",
			targets: []string{j("/ws", "a", "node_modules"), j("/ws", "b", "node_modules")},
			want:    []string{j("/ws", "a", "node_modules"), j("/ws", "b", "node_modules")},
		},
		{
			name: "nested matches collapse onto their ancestor",
			targets: []string{
				j("/ws", "node_modules"),
				j("/ws", "node_modules", "a", "node_modules"),
				j("/ws", "node_modules", "a", "node_modules", "b", "node_modules"),
				j("/ws", "src", "node_modules"),
			},
			want: []string{j("/ws", "node_modules"), j("/ws", "src", "node_modules")},
		},
		{
			name:    "shared prefix is not an ancestor",
			targets: []string{j("/ws", "target"), j("/ws", "targets")},
			want:    []string{j("/ws", "target"), j("/ws", "targets")},
		},
		{
			name:    "relative paths",
			targets: []string{"node_modules", j("node_modules", "x", "node_modules")},
			want:    []string{"node_modules"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reclaim.Outermost(tt.targets))
		})
	}
}

func TestReclaim_OutermostTargetsHaveNoFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	makeTree(t, fs, "/ws", "node_modules/a/node_modules/", "node_modules/c/node_modules/", "src/")

	opt := reclaim.ScanOptions{Target: "node_modules", Policy: reclaim.MatchAll}

	targets, err := reclaim.NewScanner(fs, opt).Scan(context.Background(), "/ws")
	require.NoError(t, err)
	require.Len(t, targets, 3)

	report := reclaim.NewReclaimer(fs, reclaim.Options{}).Reclaim(context.Background(), reclaim.Outermost(targets))

	assert.Equal(t, 1, report.Deleted)
	assert.Empty(t, report.Failures)
	assert.False(t, exists(t, fs, "/ws/node_modules"))
	assert.True(t, exists(t, fs, "/ws/src"))
}
