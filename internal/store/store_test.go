package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagpulse/internal/report"
	"tagpulse/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	rep := report.Build("Tariffs",
		types.Counts{Positive: 3, Negative: 5, Neutral: 2},
		[]string{"inflation/prices"})

	ranAt := time.Date(2025, 3, 7, 16, 0, 0, 0, time.UTC)
	id, err := s.RecordRun("Tariffs", 10, rep, "/tmp/tariffs_posts_20250307-160000.csv", ranAt)
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := s.RecentRuns("Tariffs", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	r := runs[0]
	assert.Equal(t, "Tariffs", r.Hashtag)
	assert.Equal(t, 10, r.Collected)
	assert.Equal(t, 3, r.Positive)
	assert.Equal(t, 5, r.Negative)
	assert.Equal(t, 2, r.Neutral)
	assert.Equal(t, report.SkewNegative, r.Skew)
	assert.Equal(t, []string{"inflation/prices"}, r.Themes)
	assert.Equal(t, rep.Summary, r.Summary)
	assert.Equal(t, "/tmp/tariffs_posts_20250307-160000.csv", r.CSVPath)
}

func TestRecentRunsNewestFirstAndFiltered(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rep := report.Build("Tariffs", types.Counts{Neutral: 1}, nil)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.RecordRun("Tariffs", i, rep, "", base.AddDate(0, 0, i))
		require.NoError(t, err)
	}
	_, err := s.RecordRun("Inflation", 99, rep, "", base)
	require.NoError(t, err)

	runs, err := s.RecentRuns("Tariffs", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[0].Collected, "newest first")
	assert.Equal(t, 1, runs[1].Collected)

	other, err := s.RecentRuns("Inflation", 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 99, other[0].Collected)
}

func TestRecentRunsEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	runs, err := s.RecentRuns("Nothing", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
