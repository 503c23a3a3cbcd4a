package service

import (
	"fmt"
	"strings"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

// NewTransaction constructs the transaction variant named by the type tag
// ("income" or "expense", case-insensitive) with that variant's defaults.
// Any other tag is a hard rejection, never a silent default.
func NewTransaction(typeTag string, amount model.Amount, description string, date time.Time, categoryID, userID int) (model.Transaction, error) {
	if err := validateTransactionFields(amount, categoryID, userID); err != nil {
		return nil, err
	}

	meta := model.TransactionMeta{
		Amount:      amount,
		Description: description,
		Date:        date,
		CategoryID:  categoryID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	switch strings.ToLower(typeTag) {
	case "income":
		return &model.Income{TransactionMeta: meta, IsTaxable: true}, nil
	case "expense":
		return &model.Expense{TransactionMeta: meta, PaymentMethod: model.DefaultPaymentMethod}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized transaction type %q", common.ErrValidation, typeTag)
	}
}

// NewIncome constructs an income with explicit source and taxability.
func NewIncome(amount model.Amount, description string, date time.Time, categoryID, userID int, source string, isTaxable bool) (*model.Income, error) {
	if err := validateTransactionFields(amount, categoryID, userID); err != nil {
		return nil, err
	}

	return &model.Income{
		TransactionMeta: model.TransactionMeta{
			Amount:      amount,
			Description: description,
			Date:        date,
			CategoryID:  categoryID,
			UserID:      userID,
			CreatedAt:   time.Now(),
		},
		Source:    source,
		IsTaxable: isTaxable,
	}, nil
}

// NewExpense constructs an expense with explicit payment method and
// planned flag. An empty payment method falls back to the default.
func NewExpense(amount model.Amount, description string, date time.Time, categoryID, userID int, paymentMethod string, isPlanned bool) (*model.Expense, error) {
	if err := validateTransactionFields(amount, categoryID, userID); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		paymentMethod = model.DefaultPaymentMethod
	}

	return &model.Expense{
		TransactionMeta: model.TransactionMeta{
			Amount:      amount,
			Description: description,
			Date:        date,
			CategoryID:  categoryID,
			UserID:      userID,
			CreatedAt:   time.Now(),
		},
		PaymentMethod: paymentMethod,
		IsPlanned:     isPlanned,
	}, nil
}

func validateTransactionFields(amount model.Amount, categoryID, userID int) error {
	if err := validatePositiveAmount(amount); err != nil {
		return err
	}
	if err := validateID(categoryID, "categoryId"); err != nil {
		return err
	}
	return validateID(userID, "userId")
}
