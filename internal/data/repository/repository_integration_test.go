package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/internal/usecase"
	"request-portal/pkg/database"
	"request-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestRepository migrates the database named by TEST_DATABASE_URL and
// empties every table except roles.
func openTestRepository(t *testing.T) (*repository.Repository, database.PgxIface) {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping integration test - requires TEST_DATABASE_URL")
	}

	ctx := context.Background()
	log := zap.NewNop()
	config := utils.DatabaseConfig{URL: url, MaxConns: 4}

	require.NoError(t, database.Migrate(ctx, config, "up", log))

	db, err := database.InitDB(ctx, config)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `TRUNCATE activity_logs, requests, user_profiles, users RESTART IDENTITY`)
	require.NoError(t, err)

	return repository.NewRepository(db, log), db
}

// profileCount reads user_profiles directly.
func profileCount(t *testing.T, db database.Querier, userID int64) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM user_profiles WHERE user_id = $1`, userID).Scan(&n))
	return n
}

func mustCreateUser(t *testing.T, repo *repository.Repository, username string) *entity.User {
	t.Helper()
	ctx := context.Background()

	role, err := repo.Role.FindByName(ctx, "user")
	require.NoError(t, err)
	require.NotNil(t, role)

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		RoleID:       role.ID,
	}
	require.NoError(t, repo.User.Create(ctx, user))
	return user
}

func TestRoles_Seeded(t *testing.T) {
	repo, _ := openTestRepository(t)

	roles, err := repo.Role.FindAll(context.Background())
	require.NoError(t, err)

	names := make([]entity.UserRole, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []entity.UserRole{entity.RoleAdmin, entity.RoleStaff, entity.RoleUser}, names)

	require.NoError(t, usecase.VerifyRoles(context.Background(), repo.Role))

	missing, err := repo.Role.FindByName(context.Background(), "superuser")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateNamesConstraint(t *testing.T) {
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	first := mustCreateUser(t, repo, "alice01")
	before, err := repo.User.CountAll(ctx)
	require.NoError(t, err)

	dup := &entity.User{
		Username:     "alice01",
		Email:        "other@example.com",
		PasswordHash: "x",
		RoleID:       first.RoleID,
	}
	err = repo.User.Create(ctx, dup)

	var dupErr *repository.DuplicateError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "users_username_key", dupErr.Constraint)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	after, err := repo.User.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUserRepository_FindByIDWithProfile(t *testing.T) {
	repo, db := openTestRepository(t)
	ctx := context.Background()

	user := mustCreateUser(t, repo, "bob")

	found, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Profile)
	assert.Equal(t, entity.RoleUser, found.Role.Name)

	phone := "555-1234"
	require.NoError(t, repo.Profile.Upsert(ctx, &entity.UserProfile{UserID: user.ID, Phone: &phone}))

	assert.Equal(t, 1, profileCount(t, db, user.ID))

	found, err = repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Profile)
	assert.Equal(t, "555-1234", *found.Profile.Phone)

	missing, err := repo.User.FindByID(ctx, user.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRequestRepository_StatsAndOwner(t *testing.T) {
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	owner := mustCreateUser(t, repo, "carol")
	for _, status := range []entity.RequestStatus{
		entity.StatusPending, entity.StatusPending, entity.StatusInProgress, entity.StatusRejected,
	} {
		require.NoError(t, repo.Request.Create(ctx, &entity.Request{
			UserID:      owner.ID,
			Description: "Replace the broken projector",
			Status:      status,
		}))
	}

	stats, err := repo.Request.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStats{Pending: 2, InProgress: 1, Completed: 0, Rejected: 1, Total: 4}, *stats)

	all, err := repo.Request.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "carol", all[0].User.Username)

	err = repo.Request.Create(ctx, &entity.Request{UserID: owner.ID + 1000, Description: "Orphan request text", Status: entity.StatusPending})
	assert.ErrorIs(t, err, repository.ErrForeignKey)
}

func TestDeleteUser_RemovesProfileAndRequestsFirst(t *testing.T) {
	repo, db := openTestRepository(t)
	ctx := context.Background()

	user := mustCreateUser(t, repo, "dave")
	other := mustCreateUser(t, repo, "frank")
	require.NoError(t, repo.Profile.Upsert(ctx, &entity.UserProfile{UserID: user.ID}))
	for i := 0; i < 2; i++ {
		req := &entity.Request{UserID: user.ID, Description: "Order more toner please", Status: entity.StatusPending}
		require.NoError(t, repo.Request.Create(ctx, req))
	}
	require.NoError(t, repo.Request.Create(ctx, &entity.Request{
		UserID: other.ID, Description: "Unrelated request stays", Status: entity.StatusPending,
	}))
	uid := user.ID
	require.NoError(t, repo.ActivityLog.Create(ctx, &entity.ActivityLog{
		UserID: &uid, Action: entity.ActionCreateRequest, Description: "Created request #1 with status pending",
	}))

	// requests and user_profiles reference users without ON DELETE, so a
	// wrong order fails on the foreign key.
	users := usecase.NewUserService(repo, zap.NewNop())
	require.NoError(t, users.DeleteUser(ctx, user.ID))

	gone, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, 0, profileCount(t, db, user.ID))

	remaining, err := repo.Request.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].UserID)

	// Audit history outlives the user
	entries, err := repo.ActivityLog.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].UserID)
	assert.Nil(t, entries[0].User)

	err = users.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	user := mustCreateUser(t, repo, "erin")
	boom := errors.New("abort")

	err := repo.Tx.RunInTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Delete(ctx, user.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	still, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
