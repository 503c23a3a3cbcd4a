package service_test

import (
	"context"
	"testing"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
	"budgeteer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMutationsPublish(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID, incomeCat, _ := seedUserWithCategories(t, store)

	bus := service.NewBus()
	notifications := 0
	bus.Subscribe(func() { notifications++ })

	transactions := service.NewTransactions(store, bus)
	may := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	saved, err := transactions.Add(ctx, mustIncome(t, "100", "Plata", may, incomeCat, userID))
	require.NoError(t, err)
	assert.Equal(t, 1, notifications)

	saved.Meta().Description = "Plata za maj"
	require.NoError(t, transactions.Update(ctx, saved))
	assert.Equal(t, 2, notifications)

	require.NoError(t, transactions.Delete(ctx, saved))
	assert.Equal(t, 3, notifications)
}

func TestFailedMutationDoesNotPublish(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID, incomeCat, _ := seedUserWithCategories(t, store)

	bus := service.NewBus()
	notifications := 0
	bus.Subscribe(func() { notifications++ })

	transactions := service.NewTransactions(store, bus)

	// Unknown category: validation fails before any mutation.
	_, err := transactions.Add(ctx, mustIncome(t, "100", "x", time.Now(), 999, userID))
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, notifications)

	// Unknown id on update: nothing committed, nothing published.
	ghost := mustIncome(t, "100", "x", time.Now(), incomeCat, userID)
	ghost.ID = 12345
	err = transactions.Update(ctx, ghost)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, notifications)
}

func TestObserverSeesPostMutationState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID, incomeCat, _ := seedUserWithCategories(t, store)

	bus := service.NewBus()
	transactions := service.NewTransactions(store, bus)
	reports := service.NewReports(store)

	// A live dashboard recomputes totals on every broadcast; delivery is
	// synchronous so it must observe the committed transaction.
	var lastBalance string
	bus.Subscribe(func() {
		summary, err := reports.Totals(ctx, userID, 5, 2026)
		require.NoError(t, err)
		lastBalance = summary.Balance.String()
	})

	may := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	_, err := transactions.Add(ctx, mustIncome(t, "250", "Honorar", may, incomeCat, userID))
	require.NoError(t, err)
	assert.Equal(t, "250", lastBalance)
}

func TestAddRejectsForeignCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID, incomeCat, _ := seedUserWithCategories(t, store)

	other, err := store.Users().Add(ctx, &model.User{Username: "bob", PasswordHash: "x"})
	require.NoError(t, err)
	require.NotEqual(t, userID, other.ID)

	transactions := service.NewTransactions(store, service.NewBus())

	// bob cannot book against alice's category.
	_, err = transactions.Add(ctx, mustIncome(t, "50", "tudja kategorija", time.Now(), incomeCat, other.ID))
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestForPeriodUsesSubstringPredicates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID, incomeCat, expenseCat := seedUserWithCategories(t, store)

	transactions := service.NewTransactions(store, service.NewBus())
	may := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	_, err := transactions.Add(ctx, mustIncome(t, "2000", "Plata za maj", may, incomeCat, userID))
	require.NoError(t, err)
	_, err = transactions.Add(ctx, mustExpense(t, "500", "Hrana i piće", may, expenseCat, userID))
	require.NoError(t, err)

	period, err := transactions.ForPeriod(ctx, userID, 5, 2026)
	require.NoError(t, err)
	assert.Len(t, period, 2)

	matched, err := store.Transactions().Find(ctx, service.TransactionsDescribed("Hrana"))
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Hrana i piće", matched[0].Meta().Description)
}
