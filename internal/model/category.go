package model

import "time"

// CategoryKind discriminates the concrete category variant. It is the only
// field the storage layer consults when reconstructing a category row.
type CategoryKind string

const (
	// CategoryIncome marks categories for income transactions.
	CategoryIncome CategoryKind = "Income"
	// CategoryExpense marks categories for expense transactions.
	CategoryExpense CategoryKind = "Expense"
)

// DefaultCategoryColor is applied when the caller supplies no color.
const DefaultCategoryColor = "#808080"

// CategoryMeta holds the fields shared by every category variant.
type CategoryMeta struct {
	CreatedAt   time.Time
	Name        string
	Description string
	Color       string
	ID          int
	UserID      int
}

// Category is one concrete case of the category family.
type Category interface {
	Meta() *CategoryMeta
	Kind() CategoryKind
	Icon() string
}

// IncomeCategory groups income transactions.
type IncomeCategory struct {
	CategoryMeta
	IsRecurring bool
}

// Meta returns the shared category fields.
func (c *IncomeCategory) Meta() *CategoryMeta { return &c.CategoryMeta }

// Kind returns the income discriminator.
func (c *IncomeCategory) Kind() CategoryKind { return CategoryIncome }

// Icon returns the display icon for income categories.
func (c *IncomeCategory) Icon() string { return "💰" }

// ExpenseCategory groups expense transactions.
type ExpenseCategory struct {
	MaxMonthlyBudget Amount
	CategoryMeta
	IsEssential bool
}

// Meta returns the shared category fields.
func (c *ExpenseCategory) Meta() *CategoryMeta { return &c.CategoryMeta }

// Kind returns the expense discriminator.
func (c *ExpenseCategory) Kind() CategoryKind { return CategoryExpense }

// Icon returns the display icon for expense categories.
func (c *ExpenseCategory) Icon() string { return "💸" }
