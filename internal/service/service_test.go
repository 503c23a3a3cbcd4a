package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"budgeteer/internal/model"
	"budgeteer/internal/service"
	"budgeteer/internal/storage"

	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated temp-file store for one test.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

// seedUserWithCategories creates a user plus one income and one expense
// category, returning their ids.
func seedUserWithCategories(t *testing.T, store *storage.Store) (userID, incomeCatID, expenseCatID int) {
	t.Helper()
	ctx := context.Background()

	user, err := store.Users().Add(ctx, &model.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	incomeCat, err := store.Categories().Add(ctx, &model.IncomeCategory{
		CategoryMeta: model.CategoryMeta{Name: "Plata", Color: "#51CF66", UserID: user.ID},
		IsRecurring:  true,
	})
	require.NoError(t, err)

	expenseCat, err := store.Categories().Add(ctx, &model.ExpenseCategory{
		CategoryMeta:     model.CategoryMeta{Name: "Hrana", Color: "#FF6B6B", UserID: user.ID},
		IsEssential:      true,
		MaxMonthlyBudget: model.MustAmount("0"),
	})
	require.NoError(t, err)

	return user.ID, incomeCat.Meta().ID, expenseCat.Meta().ID
}

func mustIncome(t *testing.T, amount, description string, date time.Time, categoryID, userID int) *model.Income {
	t.Helper()
	income, err := service.NewIncome(model.MustAmount(amount), description, date, categoryID, userID, "", true)
	require.NoError(t, err)
	return income
}

func mustExpense(t *testing.T, amount, description string, date time.Time, categoryID, userID int) *model.Expense {
	t.Helper()
	expense, err := service.NewExpense(model.MustAmount(amount), description, date, categoryID, userID, "", false)
	require.NoError(t, err)
	return expense
}
