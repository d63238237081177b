package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/ganot/teampulse/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	managerID := "m1"
	created := &team.Team{
		ID:          "t1",
		OrgID:       "org1",
		Name:        "Platform",
		MemberCount: 7,
		ManagerID:   &managerID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "t1", got.ID)
	require.Equal(t, "org1", got.OrgID)
	require.Equal(t, "Platform", got.Name)
	require.Equal(t, 7, got.MemberCount)
	require.NotNil(t, got.ManagerID)
	require.Equal(t, "m1", *got.ManagerID)
}

func TestTeamRepository_Get_NotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)

	_, err := repo.Get(context.Background(), "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestTeamRepository_Create_Duplicate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	tm := &team.Team{ID: "t1", OrgID: "org1", Name: "Platform", MemberCount: 7}
	require.NoError(t, repo.Create(ctx, tm))

	err := repo.Create(ctx, &team.Team{ID: "t1", OrgID: "org1", Name: "Copy", MemberCount: 3})
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestTeamRepository_Create_InvalidInput(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &team.Team{OrgID: "org1"})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	err = repo.Create(ctx, &team.Team{ID: "t1"})
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestTeamRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &team.Team{ID: "t1", OrgID: "org1", Name: "First", MemberCount: 5, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &team.Team{ID: "t2", OrgID: "org1", Name: "Second", MemberCount: 6, CreatedAt: base.Add(time.Hour)}))

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	// Oldest first.
	require.Equal(t, "t1", teams[0].ID)
	require.Equal(t, "t2", teams[1].ID)
	require.Nil(t, teams[0].ManagerID)
}
