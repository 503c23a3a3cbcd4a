package service

import (
	"context"
	"time"

	"budgeteer/internal/model"

	"github.com/shopspring/decimal"
)

// Summary holds period totals for a user. All arithmetic is exact decimal;
// no intermediate rounding.
type Summary struct {
	TotalIncome   model.Amount
	TotalExpenses model.Amount
	Balance       model.Amount
}

// Reports computes period totals and produces immutable monthly snapshots.
type Reports struct {
	store Storage
}

// NewReports creates the reporting service.
func NewReports(store Storage) *Reports {
	return &Reports{store: store}
}

// Totals sums the user's transactions for the given month, partitioned by
// variant. Insertion order never affects the result.
func (r *Reports) Totals(ctx context.Context, userID, month, year int) (Summary, error) {
	if err := validateMonth(month); err != nil {
		return Summary{}, err
	}
	if err := validateID(userID, "userId"); err != nil {
		return Summary{}, err
	}

	transactions, err := r.store.Transactions().Find(ctx, TransactionsInPeriod(userID, month, year))
	if err != nil {
		return Summary{}, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Kind() {
		case model.TransactionIncome:
			totalIncome = totalIncome.Add(txn.Meta().Amount)
		case model.TransactionExpense:
			totalExpenses = totalExpenses.Add(txn.Meta().Amount)
		}
	}

	return Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}, nil
}

// Generate computes the period totals and persists them as an immutable
// MonthlyReport snapshot.
func (r *Reports) Generate(ctx context.Context, userID, month, year int) (*model.MonthlyReport, error) {
	summary, err := r.Totals(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	return r.store.Reports().Add(ctx, &model.MonthlyReport{
		UserID:        userID,
		Month:         month,
		Year:          year,
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Balance:       summary.Balance,
		GeneratedAt:   time.Now(),
	})
}
