package cli

import (
	"testing"
	"time"

	"budgeteer/internal/model"
	"budgeteer/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRenderTransactionsTable(t *testing.T) {
	date := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		&model.Income{
			TransactionMeta: model.TransactionMeta{
				ID:          1,
				Amount:      model.MustAmount("2000"),
				Description: "Plata za maj",
				Date:        date,
			},
		},
		&model.Expense{
			TransactionMeta: model.TransactionMeta{
				ID:          2,
				Amount:      model.MustAmount("49.90"),
				Description: "Hrana",
				Date:        date,
			},
		},
	}

	out := RenderTransactionsTable(transactions)
	assert.Contains(t, out, "Plata za maj")
	assert.Contains(t, out, "2026-05-10")
	assert.Contains(t, out, "+2000.00")
	assert.Contains(t, out, "-49.90")
}

func TestRenderTransactionsTableEmpty(t *testing.T) {
	out := RenderTransactionsTable(nil)
	assert.Contains(t, out, "No transactions found")
}

func TestRenderCategoriesTable(t *testing.T) {
	categories := []model.Category{
		&model.ExpenseCategory{
			CategoryMeta: model.CategoryMeta{ID: 3, Name: "Hrana", Description: "Namirnice"},
		},
		&model.IncomeCategory{
			CategoryMeta: model.CategoryMeta{ID: 4, Name: "Plata"},
		},
	}

	out := RenderCategoriesTable(categories)
	assert.Contains(t, out, "Hrana")
	assert.Contains(t, out, "Namirnice")
	assert.Contains(t, out, "no description")
}

func TestRenderBudgetsTable(t *testing.T) {
	budgets := []*model.Budget{
		{ID: 1, CategoryID: 7, Month: 5, Year: 2026, PlannedAmount: model.MustAmount("400")},
	}

	out := RenderBudgetsTable(budgets, func(int) string { return "Hrana" })
	assert.Contains(t, out, "2026-05")
	assert.Contains(t, out, "Hrana")
	assert.Contains(t, out, "400.00")
}

func TestRenderSummary(t *testing.T) {
	summary := service.Summary{
		TotalIncome:   model.MustAmount("2000"),
		TotalExpenses: model.MustAmount("500"),
		Balance:       model.MustAmount("1500"),
	}

	out := RenderSummary("May 2026", summary)
	assert.Contains(t, out, "May 2026")
	assert.Contains(t, out, "+2000.00")
	assert.Contains(t, out, "-500.00")
	assert.Contains(t, out, "1500.00")
}
