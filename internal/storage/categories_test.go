package storage

import (
	"context"
	"testing"

	"budgeteer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryVariantRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("income category", func(t *testing.T) {
		store := createTestStore(t)
		user := createTestUser(t, store, "alice")

		saved, err := store.Categories().Add(ctx, &model.IncomeCategory{
			CategoryMeta: model.CategoryMeta{
				Name:        "Plata",
				Description: "Mesečna plata",
				Color:       "#51CF66",
				UserID:      user.ID,
			},
			IsRecurring: true,
		})
		require.NoError(t, err)

		loaded, found, err := store.Categories().GetByID(ctx, saved.Meta().ID)
		require.NoError(t, err)
		require.True(t, found)

		// The kind column alone decides the reconstructed variant.
		income, ok := loaded.(*model.IncomeCategory)
		require.True(t, ok)
		assert.Equal(t, model.CategoryIncome, loaded.Kind())
		assert.True(t, income.IsRecurring)
		assert.Equal(t, "Plata", income.Name)
		assert.Equal(t, "#51CF66", income.Color)
	})

	t.Run("expense category", func(t *testing.T) {
		store := createTestStore(t)
		user := createTestUser(t, store, "alice")

		saved, err := store.Categories().Add(ctx, &model.ExpenseCategory{
			CategoryMeta: model.CategoryMeta{
				Name:   "Hrana",
				Color:  "#FF6B6B",
				UserID: user.ID,
			},
			IsEssential:      true,
			MaxMonthlyBudget: model.MustAmount("350.50"),
		})
		require.NoError(t, err)

		loaded, found, err := store.Categories().GetByID(ctx, saved.Meta().ID)
		require.NoError(t, err)
		require.True(t, found)

		expense, ok := loaded.(*model.ExpenseCategory)
		require.True(t, ok)
		assert.Equal(t, model.CategoryExpense, loaded.Kind())
		assert.True(t, expense.IsEssential)
		assert.Equal(t, "350.5", expense.MaxMonthlyBudget.String())
	})
}

func TestCategoryDefaultColor(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	user := createTestUser(t, store, "alice")

	saved, err := store.Categories().Add(ctx, &model.IncomeCategory{
		CategoryMeta: model.CategoryMeta{Name: "Poklon", UserID: user.ID},
	})
	require.NoError(t, err)

	loaded, _, err := store.Categories().GetByID(ctx, saved.Meta().ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategoryColor, loaded.Meta().Color)
}

func TestCategoryVariantSwitchOnUpdate(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	user := createTestUser(t, store, "alice")

	saved, err := store.Categories().Add(ctx, &model.IncomeCategory{
		CategoryMeta: model.CategoryMeta{Name: "Honorar", Color: "#74C0FC", UserID: user.ID},
	})
	require.NoError(t, err)

	// Full-entity overwrite may change the variant; the discriminator
	// column follows.
	replacement := &model.ExpenseCategory{
		CategoryMeta:     *saved.Meta(),
		IsEssential:      false,
		MaxMonthlyBudget: model.MustAmount("0"),
	}
	require.NoError(t, store.Categories().Update(ctx, replacement))

	loaded, _, err := store.Categories().GetByID(ctx, saved.Meta().ID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryExpense, loaded.Kind())
}

func TestTransactionVariantRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	user := createTestUser(t, store, "alice")

	category, err := store.Categories().Add(ctx, &model.IncomeCategory{
		CategoryMeta: model.CategoryMeta{Name: "Plata", Color: "#51CF66", UserID: user.ID},
	})
	require.NoError(t, err)

	saved, err := store.Transactions().Add(ctx, &model.Income{
		TransactionMeta: model.TransactionMeta{
			Amount:      model.MustAmount("2000.55"),
			Description: "Plata za maj",
			Date:        testDate(2026, 5, 10),
			CategoryID:  category.Meta().ID,
			UserID:      user.ID,
		},
		Source:    "Employer d.o.o.",
		IsTaxable: false,
	})
	require.NoError(t, err)

	loaded, found, err := store.Transactions().GetByID(ctx, saved.Meta().ID)
	require.NoError(t, err)
	require.True(t, found)

	income, ok := loaded.(*model.Income)
	require.True(t, ok)
	assert.Equal(t, "2000.55", income.Amount.String())
	assert.Equal(t, "Plata za maj", income.Description)
	assert.Equal(t, "Employer d.o.o.", income.Source)
	assert.False(t, income.IsTaxable)
	assert.Equal(t, "+2000.55", income.FormatAmount())

	expense, err := store.Transactions().Add(ctx, &model.Expense{
		TransactionMeta: model.TransactionMeta{
			Amount:     model.MustAmount("99.99"),
			Date:       testDate(2026, 5, 11),
			CategoryID: category.Meta().ID,
			UserID:     user.ID,
		},
		PaymentMethod: "Card",
		IsPlanned:     true,
	})
	require.NoError(t, err)

	loaded, _, err = store.Transactions().GetByID(ctx, expense.Meta().ID)
	require.NoError(t, err)
	loadedExpense, ok := loaded.(*model.Expense)
	require.True(t, ok)
	assert.Equal(t, "Card", loadedExpense.PaymentMethod)
	assert.True(t, loadedExpense.IsPlanned)
	assert.Equal(t, "-99.99", loadedExpense.FormatAmount())
}

func TestBudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)
	user := createTestUser(t, store, "alice")

	category, err := store.Categories().Add(ctx, &model.ExpenseCategory{
		CategoryMeta: model.CategoryMeta{Name: "Hrana", Color: "#FF6B6B", UserID: user.ID},
	})
	require.NoError(t, err)

	saved, err := store.Budgets().Add(ctx, &model.Budget{
		CategoryID:    category.Meta().ID,
		UserID:        user.ID,
		PlannedAmount: model.MustAmount("400"),
		Month:         5,
		Year:          2026,
	})
	require.NoError(t, err)

	loaded, found, err := store.Budgets().GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "400", loaded.PlannedAmount.String())
	assert.Equal(t, "2026-05", loaded.Period())
	assert.True(t, loaded.ActiveOn(testDate(2026, 5, 20)))
}
