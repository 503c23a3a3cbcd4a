package model

import (
	"fmt"
	"time"
)

// TransactionKind discriminates the concrete transaction variant.
type TransactionKind string

const (
	// TransactionIncome marks money coming in.
	TransactionIncome TransactionKind = "Income"
	// TransactionExpense marks money going out.
	TransactionExpense TransactionKind = "Expense"
)

// DefaultPaymentMethod is applied to expenses when none is given.
const DefaultPaymentMethod = "Cash"

// TransactionMeta holds the fields shared by every transaction variant.
type TransactionMeta struct {
	Amount      Amount
	CreatedAt   time.Time
	Date        time.Time
	Description string
	ID          int
	CategoryID  int
	UserID      int
}

// Transaction is one concrete case of the transaction family.
type Transaction interface {
	Meta() *TransactionMeta
	Kind() TransactionKind
	FormatAmount() string
	Icon() string
}

// Income is money received by the user.
type Income struct {
	TransactionMeta
	Source    string
	IsTaxable bool
}

// Meta returns the shared transaction fields.
func (i *Income) Meta() *TransactionMeta { return &i.TransactionMeta }

// Kind returns the income discriminator.
func (i *Income) Kind() TransactionKind { return TransactionIncome }

// FormatAmount renders the signed display amount, incomes with a plus sign.
func (i *Income) FormatAmount() string {
	return fmt.Sprintf("+%s", i.Amount.StringFixed(2))
}

// Icon returns the display icon for incomes.
func (i *Income) Icon() string { return "📈" }

// Expense is money spent by the user.
type Expense struct {
	TransactionMeta
	PaymentMethod string
	IsPlanned     bool
}

// Meta returns the shared transaction fields.
func (e *Expense) Meta() *TransactionMeta { return &e.TransactionMeta }

// Kind returns the expense discriminator.
func (e *Expense) Kind() TransactionKind { return TransactionExpense }

// FormatAmount renders the signed display amount, expenses with a minus sign.
func (e *Expense) FormatAmount() string {
	return fmt.Sprintf("-%s", e.Amount.StringFixed(2))
}

// Icon returns the display icon for expenses.
func (e *Expense) Icon() string { return "📉" }
