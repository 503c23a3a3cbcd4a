package model

import (
	"fmt"
	"time"
)

// MonthlyReport is an immutable snapshot of one month's totals. It is
// derived from transactions, never updated, and recreated on demand.
type MonthlyReport struct {
	TotalIncome   Amount
	TotalExpenses Amount
	Balance       Amount
	GeneratedAt   time.Time
	ID            int
	UserID        int
	Month         int
	Year          int
}

// Period returns the report period as "YYYY-MM".
func (r *MonthlyReport) Period() string {
	return fmt.Sprintf("%d-%02d", r.Year, r.Month)
}

// MonthName returns the report period as a human-readable month and year.
func (r *MonthlyReport) MonthName() string {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// BalancePositive reports whether the month closed at or above zero.
// Informational only; a negative balance is a valid report.
func (r *MonthlyReport) BalancePositive() bool {
	return !r.Balance.IsNegative()
}
