package model

import (
	"fmt"
	"time"
)

// Budget is a planned spending amount for one category in one calendar month.
type Budget struct {
	PlannedAmount Amount
	CreatedAt     time.Time
	ID            int
	CategoryID    int
	UserID        int
	Month         int // 1-12
	Year          int
}

// Period returns the budget period as "YYYY-MM".
func (b *Budget) Period() string {
	return fmt.Sprintf("%d-%02d", b.Year, b.Month)
}

// ActiveOn reports whether the budget covers the given calendar date.
func (b *Budget) ActiveOn(date time.Time) bool {
	return date.Year() == b.Year && int(date.Month()) == b.Month
}
