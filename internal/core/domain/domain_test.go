package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rewatch/internal/core/domain"
)

func TestChangeSet_HasChanges(t *testing.T) {
	tests := []struct {
		name    string
		changes domain.ChangeSet
		want    bool
		wantLen int
	}{
		{name: "empty", changes: domain.ChangeSet{}},
		{name: "new", changes: domain.ChangeSet{New: []domain.ResourceID{"a"}}, want: true, wantLen: 1},
		{name: "deleted", changes: domain.ChangeSet{Deleted: []domain.ResourceID{"a", "b"}}, want: true, wantLen: 2},
		{name: "updated", changes: domain.ChangeSet{Updated: []domain.ResourceID{"a"}}, want: true, wantLen: 1},
		{
			name:    "failures only",
			changes: domain.ChangeSet{Failures: []domain.ResourceFailure{{ID: "a", Err: domain.ErrResourceReadFailed}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.changes.HasChanges())
			assert.Equal(t, tt.wantLen, tt.changes.Len())
		})
	}
}

func TestConfig_Select(t *testing.T) {
	cfg := &domain.Config{
		Watches: map[string]*domain.Watch{
			"src":  {Name: "src"},
			"docs": {Name: "docs"},
			"api":  {Name: "api"},
		},
	}

	assert.Equal(t, []string{"api", "docs", "src"}, cfg.WatchNames())

	all, err := cfg.Select(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "api", all[0].Name)
	assert.Equal(t, "src", all[2].Name)

	picked, err := cfg.Select([]string{"src", "api"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "src", picked[0].Name)
	assert.Equal(t, "api", picked[1].Name)

	_, err = cfg.Select([]string{"src", "nope"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchNotFound.Error())
}

func TestLayout(t *testing.T) {
	assert.Equal(t, ".rewatch", domain.DefaultStatePath())
	assert.Equal(t, filepath.Join("state", "cache"), domain.SnapshotDirPath("state"))
	assert.Equal(t, filepath.Join("state", "snapshots.db"), domain.SnapshotDBPath("state"))
}
