package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanResultRepo_CreateAndLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanResultRepo(db)
	ctx := context.Background()

	state := testutil.NewTestPlanState("ana", testutil.NewTestConfig(testutil.WithOnlyTopics(0, 1, 2)))
	require.NoError(t, repo.Create(ctx, state))

	latest, err := repo.Latest(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, state.ID, latest.ID)
	assert.Equal(t, "ana", latest.UserID)
	assert.Equal(t, state.Config, latest.Config)
	assert.Equal(t, state.Result, latest.Result)
	assert.True(t, state.GeneratedAt.Equal(latest.GeneratedAt))
	assert.Empty(t, latest.Checked, "checks are loaded separately")
}

func TestPlanResultRepo_LatestPicksNewestRevision(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanResultRepo(db)
	ctx := context.Background()

	cfg := testutil.NewTestConfig(testutil.WithOnlyTopics(0))
	older := testutil.NewTestPlanState("ana", cfg)
	older.GeneratedAt = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	newer := testutil.NewTestPlanState("ana", cfg)
	newer.GeneratedAt = older.GeneratedAt.Add(time.Millisecond)

	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	latest, err := repo.Latest(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)

	revisions, err := repo.ListByUser(ctx, "ana", 0)
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, newer.ID, revisions[0].ID)
	assert.Equal(t, older.ID, revisions[1].ID)

	limited, err := repo.ListByUser(ctx, "ana", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPlanResultRepo_RevisionSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanResultRepo(db)
	ctx := context.Background()

	// One weekday before the deadline: most topics cannot fit.
	cfg := testutil.NewTestConfig(testutil.WithEndDate(testutil.Monday))
	state := testutil.NewTestPlanState("ana", cfg)
	require.NoError(t, repo.Create(ctx, state))

	revisions, err := repo.ListByUser(ctx, "ana", 10)
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	rev := revisions[0]
	assert.Equal(t, domain.ScheduleExtensive, rev.ScheduleType)
	assert.False(t, rev.AllTopicsFit)
	assert.Equal(t, state.Result.RemainingTopicsCount, rev.RemainingCount)
	assert.Positive(t, rev.RemainingCount)
}

func TestPlanResultRepo_LatestNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanResultRepo(db)

	_, err := repo.Latest(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlanResultRepo_DeleteByUserRemovesChecks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanResultRepo(db)
	checks := NewSQLiteCheckedTaskRepo(db)
	ctx := context.Background()

	mine := testutil.NewTestPlanState("ana", testutil.NewTestConfig(testutil.WithOnlyTopics(0)))
	theirs := testutil.NewTestPlanState("bruno", testutil.NewTestConfig(testutil.WithOnlyTopics(0)))
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))
	require.NoError(t, checks.Set(ctx, mine.ID, "2026-10-19#0", true))
	require.NoError(t, checks.Set(ctx, theirs.ID, "2026-10-19#0", true))

	require.NoError(t, repo.DeleteByUser(ctx, "ana"))

	_, err := repo.Latest(ctx, "ana")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Latest(ctx, "bruno")
	assert.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM checked_tasks`).Scan(&n))
	assert.Equal(t, 1, n)
}
