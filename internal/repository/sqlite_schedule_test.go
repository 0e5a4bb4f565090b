package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/century/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSchedule("Lu_AFGO", testutil.WithYears(1960, 2020), testutil.WithSiteFile("afgo.100"))
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lu_AFGO", fetched.Name)
	assert.Equal(t, s.Params, fetched.Params)
	assert.True(t, s.CreatedAt.Equal(fetched.CreatedAt))
}

func TestScheduleRepo_GetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSchedule("site-01")
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByName(ctx, "site-01")
	require.NoError(t, err)
	assert.Equal(t, s.ID, fetched.ID)
}

func TestScheduleRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_DuplicateNameRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule("dup")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestSchedule("dup")))
}

func TestScheduleRepo_ListSortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestSchedule(name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "bravo", list[1].Name)
	assert.Equal(t, "charlie", list[2].Name)
}

func TestScheduleRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	s := testutil.NewTestSchedule("upd")
	require.NoError(t, repo.Create(ctx, s))

	s.Params.LastYear = 2030
	s.Params.InitialCrop = "BE8"
	s.UpdatedAt = s.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2030, fetched.Params.LastYear)
	assert.Equal(t, "BE8", fetched.Params.InitialCrop)
	assert.True(t, fetched.UpdatedAt.After(fetched.CreatedAt))
}

func TestScheduleRepo_UpdateAndDelete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	ghost := testutil.NewTestSchedule("ghost")
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ghost.ID), ErrNotFound)
}
