package database

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func TestOpenCreatesEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	store, err := Open(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Movies)
	assert.Equal(t, path, store.Path())
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestUpdatePersistsAndViewReadsBack(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Update(ctx, func(snap *model.Snapshot) error {
		snap.Users = append(snap.Users, model.User{ID: 7, Email: "x@y.z"})
		return nil
	})
	require.NoError(t, err)

	err = store.View(ctx, func(snap *model.Snapshot) error {
		require.Len(t, snap.Users, 1)
		assert.Equal(t, uint64(7), snap.Users[0].ID)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateFailureLeavesFileUntouched(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	ctx := context.Background()

	boom := errors.New("boom")
	err = store.Update(ctx, func(snap *model.Snapshot) error {
		snap.Users = append(snap.Users, model.User{ID: 1})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.View(ctx, func(snap *model.Snapshot) error {
		assert.Empty(t, snap.Users, "failed update must not persist")
		return nil
	})
	require.NoError(t, err)
}

func TestViewMutationsAreDiscarded(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	ctx := context.Background()

	err = store.View(ctx, func(snap *model.Snapshot) error {
		snap.Users = append(snap.Users, model.User{ID: 1})
		return nil
	})
	require.NoError(t, err)

	err = store.View(ctx, func(snap *model.Snapshot) error {
		assert.Empty(t, snap.Users)
		return nil
	})
	require.NoError(t, err)
}

func TestSnapshotIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	_, err := Open(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"users\"")
}

func TestUpdateHonorsContextCancellation(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Update(ctx, func(snap *model.Snapshot) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCorruptSnapshotSurfacesParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err = store.View(context.Background(), func(snap *model.Snapshot) error { return nil })
	assert.Error(t, err)
}
