package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		txn  Transaction
		want string
	}{
		{
			name: "income carries a plus sign",
			txn: &Income{
				TransactionMeta: TransactionMeta{Amount: MustAmount("2000")},
				Source:          "Employer",
				IsTaxable:       true,
			},
			want: "+2000.00",
		},
		{
			name: "expense carries a minus sign",
			txn: &Expense{
				TransactionMeta: TransactionMeta{Amount: MustAmount("512.40")},
				PaymentMethod:   DefaultPaymentMethod,
			},
			want: "-512.40",
		},
		{
			name: "sub-unit amounts keep exact cents",
			txn: &Expense{
				TransactionMeta: TransactionMeta{Amount: MustAmount("0.1")},
			},
			want: "-0.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.FormatAmount())
		})
	}
}

func TestTransactionKind(t *testing.T) {
	income := &Income{}
	expense := &Expense{}

	assert.Equal(t, TransactionIncome, income.Kind())
	assert.Equal(t, TransactionExpense, expense.Kind())
	assert.NotEqual(t, income.Icon(), expense.Icon())
}

func TestCategoryKind(t *testing.T) {
	income := &IncomeCategory{CategoryMeta: CategoryMeta{Name: "Plata"}, IsRecurring: true}
	expense := &ExpenseCategory{CategoryMeta: CategoryMeta{Name: "Hrana"}, IsEssential: true}

	assert.Equal(t, CategoryIncome, income.Kind())
	assert.Equal(t, CategoryExpense, expense.Kind())
	assert.Equal(t, "Plata", income.Meta().Name)
	assert.Equal(t, "Hrana", expense.Meta().Name)
}

func TestBudgetActiveOn(t *testing.T) {
	budget := &Budget{Month: 3, Year: 2026}

	assert.True(t, budget.ActiveOn(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.ActiveOn(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.ActiveOn(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03", budget.Period())
}

func TestMonthlyReportBalance(t *testing.T) {
	report := &MonthlyReport{
		TotalIncome:   MustAmount("2000"),
		TotalExpenses: MustAmount("500"),
		Balance:       MustAmount("1500"),
		Month:         5,
		Year:          2026,
	}

	assert.True(t, report.BalancePositive())
	assert.Equal(t, "2026-05", report.Period())
	assert.Equal(t, "May 2026", report.MonthName())

	negative := &MonthlyReport{Balance: MustAmount("-0.01")}
	assert.False(t, negative.BalancePositive())

	zero := &MonthlyReport{}
	assert.True(t, zero.BalancePositive())
}
