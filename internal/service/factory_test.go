package service

import (
	"testing"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	date := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	amount := model.MustAmount("2000")

	tests := []struct {
		name     string
		typeTag  string
		wantKind model.TransactionKind
	}{
		{name: "income tag", typeTag: "income", wantKind: model.TransactionIncome},
		{name: "expense tag", typeTag: "expense", wantKind: model.TransactionExpense},
		{name: "tag matching is case-insensitive", typeTag: "InCoMe", wantKind: model.TransactionIncome},
		{name: "upper-case expense", typeTag: "EXPENSE", wantKind: model.TransactionExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := NewTransaction(tt.typeTag, amount, "Plata", date, 3, 1)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, txn.Kind())
			meta := txn.Meta()
			assert.True(t, amount.Equal(meta.Amount))
			assert.Equal(t, "Plata", meta.Description)
			assert.Equal(t, date, meta.Date)
			assert.Equal(t, 3, meta.CategoryID)
			assert.Equal(t, 1, meta.UserID)
		})
	}
}

func TestNewTransactionDefaults(t *testing.T) {
	date := time.Now()

	txn, err := NewTransaction("income", model.MustAmount("100"), "", date, 1, 1)
	require.NoError(t, err)
	income, ok := txn.(*model.Income)
	require.True(t, ok)
	assert.True(t, income.IsTaxable)
	assert.Empty(t, income.Source)

	txn, err = NewTransaction("expense", model.MustAmount("100"), "", date, 1, 1)
	require.NoError(t, err)
	expense, ok := txn.(*model.Expense)
	require.True(t, ok)
	assert.Equal(t, model.DefaultPaymentMethod, expense.PaymentMethod)
	assert.False(t, expense.IsPlanned)
}

func TestNewTransactionRejectsUnknownTag(t *testing.T) {
	tests := []string{"transfer", "", "incom", "expenses", "Income "}

	for _, tag := range tests {
		t.Run("tag "+tag, func(t *testing.T) {
			_, err := NewTransaction(tag, model.MustAmount("100"), "x", time.Now(), 1, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestNewTransactionRejectsInvalidFields(t *testing.T) {
	date := time.Now()

	_, err := NewTransaction("income", model.MustAmount("0"), "x", date, 1, 1)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = NewTransaction("income", model.MustAmount("-5"), "x", date, 1, 1)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = NewTransaction("income", model.MustAmount("5"), "x", date, 0, 1)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = NewTransaction("income", model.MustAmount("5"), "x", date, 1, 0)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestExtendedConstructors(t *testing.T) {
	date := time.Now()

	income, err := NewIncome(model.MustAmount("3000"), "plata za maj", date, 2, 1, "Employer d.o.o.", false)
	require.NoError(t, err)
	assert.Equal(t, "Employer d.o.o.", income.Source)
	assert.False(t, income.IsTaxable)

	expense, err := NewExpense(model.MustAmount("45.90"), "bioskop", date, 4, 1, "Card", true)
	require.NoError(t, err)
	assert.Equal(t, "Card", expense.PaymentMethod)
	assert.True(t, expense.IsPlanned)

	expense, err = NewExpense(model.MustAmount("10"), "kafa", date, 4, 1, "", false)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPaymentMethod, expense.PaymentMethod)
}
