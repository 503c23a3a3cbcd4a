package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return store
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createTestUser(t *testing.T, store *Store, username string) *model.User {
	t.Helper()
	user, err := store.Users().Add(context.Background(), &model.User{
		Username:     username,
		PasswordHash: "digest",
		Email:        username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user, err := store.Users().Add(ctx, &model.User{
		Username:     "alice",
		PasswordHash: "digest",
		Email:        "alice@example.com",
		FullName:     "Alice A.",
		CreatedAt:    created,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	loaded, found, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "digest", loaded.PasswordHash)
	assert.Equal(t, "alice@example.com", loaded.Email)
	assert.Equal(t, "Alice A.", loaded.FullName)
	assert.True(t, created.Equal(loaded.CreatedAt))
}

func TestGetByIDMissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	_, found, err := store.Users().GetByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateNonexistentFails(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	err := store.Users().Update(ctx, &model.User{ID: 42, Username: "ghost", PasswordHash: "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteNonexistentFails(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	err := store.Users().Delete(ctx, &model.User{ID: 42})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateOverwritesFullEntity(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	user := createTestUser(t, store, "alice")

	user.Email = "new@example.com"
	user.FullName = "Alice Renamed"
	require.NoError(t, store.Users().Update(ctx, user))

	loaded, found, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new@example.com", loaded.Email)
	assert.Equal(t, "Alice Renamed", loaded.FullName)
}

func TestDuplicateUsernameIsConflict(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	createTestUser(t, store, "alice")

	_, err := store.Users().Add(ctx, &model.User{Username: "alice", PasswordHash: "y"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestFindIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	alice := createTestUser(t, store, "alice")
	createTestUser(t, store, "bob")

	byName := func(u *model.User) bool { return u.Username == "alice" }

	first, err := store.Users().Find(ctx, byName)
	require.NoError(t, err)
	second, err := store.Users().Find(ctx, byName)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, alice.ID, first[0].ID)
}

func TestCountAndExists(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	createTestUser(t, store, "alice")
	createTestUser(t, store, "bob")

	total, err := store.Users().Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	count, err := store.Users().Count(ctx, func(u *model.User) bool { return u.Username == "bob" })
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := store.Users().Exists(ctx, func(u *model.User) bool { return u.Username == "carol" })
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAddPreservesExplicitID(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	user, err := store.Users().Add(ctx, &model.User{ID: 77, Username: "fixed", PasswordHash: "x"})
	require.NoError(t, err)
	assert.Equal(t, 77, user.ID)

	_, found, err := store.Users().GetByID(ctx, 77)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSharedHandle(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	dbPath := filepath.Join(t.TempDir(), "shared.db")
	first, err := Open(dbPath)
	require.NoError(t, err)

	second, err := Open(dbPath)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
