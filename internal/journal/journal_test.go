// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/file-organizer/pkg/types"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "state", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	j := openTestJournal(t)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id, err := j.BeginRun(ctx, "/tmp/downloads", start)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	moves := []types.Move{
		{Source: "a.png", Category: "Images", Destination: "/tmp/downloads/Images/a.png", MovedAt: start.Add(time.Second)},
		{Source: "b.txt", Category: "Documents", Destination: "/tmp/downloads/Documents/b (1).txt", Renamed: true, MovedAt: start.Add(2 * time.Second)},
	}
	summary := types.RunSummary{RunID: id, BaseDir: "/tmp/downloads", StartedAt: start}
	for _, m := range moves {
		require.NoError(t, j.RecordMove(ctx, id, m))
		summary.Record(m)
	}
	summary.Skipped = 1
	summary.FinishedAt = start.Add(3 * time.Second)
	require.NoError(t, j.FinishRun(ctx, summary, nil))

	run, err := j.Run(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/downloads", run.BaseDir)
	assert.Equal(t, 2, run.Moved)
	assert.Equal(t, 1, run.Skipped)
	assert.True(t, run.StartedAt.Equal(start))
	assert.True(t, run.FinishedAt.Equal(summary.FinishedAt))
	assert.Empty(t, run.Error)

	got, err := j.Moves(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.png", got[0].Source)
	assert.False(t, got[0].Renamed)
	assert.Equal(t, "Documents", got[1].Category)
	assert.True(t, got[1].Renamed)
	assert.True(t, got[1].MovedAt.Equal(moves[1].MovedAt))
}

func TestFinishRunStoresError(t *testing.T) {
	ctx := context.Background()
	j := openTestJournal(t)

	id, err := j.BeginRun(ctx, "/data", time.Now())
	require.NoError(t, err)

	summary := types.RunSummary{RunID: id, FinishedAt: time.Now()}
	require.NoError(t, j.FinishRun(ctx, summary, errors.New("moving x.png: destination exists")))

	run, err := j.Run(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "moving x.png: destination exists", run.Error)
}

func TestFinishRunUnknownID(t *testing.T) {
	j := openTestJournal(t)
	err := j.FinishRun(context.Background(), types.RunSummary{RunID: "missing", FinishedAt: time.Now()}, nil)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunNotFound(t *testing.T) {
	j := openTestJournal(t)
	_, err := j.Run(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunsNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	j := openTestJournal(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := j.BeginRun(ctx, "/dir", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := j.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)
	assert.True(t, all[0].FinishedAt.IsZero())

	limited, err := j.Runs(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j1, err := Open(path)
	require.NoError(t, err)
	_, err = j1.BeginRun(context.Background(), "/a", time.Now())
	require.NoError(t, err)
	require.NoError(t, j1.Close())

	j2, err := Open(path)
	require.NoError(t, err)
	defer j2.Close()
	runs, err := j2.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestOpenPathWithURICharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "odd #dir")
	path := filepath.Join(dir, "journal?v=1.db")

	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.BeginRun(context.Background(), "/a", time.Now())
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(dir, "journal"))
}
