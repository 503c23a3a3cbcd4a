package service

import (
	"context"
	"fmt"
	"log/slog"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

// Transactions wraps the transaction repository with validation, ownership
// checks and change notification. Every successful mutation publishes on
// the bus after the commit.
type Transactions struct {
	store Storage
	bus   *Bus
}

// NewTransactions creates the transaction service.
func NewTransactions(store Storage, bus *Bus) *Transactions {
	return &Transactions{store: store, bus: bus}
}

// Add validates and persists the transaction, then broadcasts the change.
func (t *Transactions) Add(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := t.validate(ctx, txn); err != nil {
		return nil, err
	}

	saved, err := t.store.Transactions().Add(ctx, txn)
	if err != nil {
		return nil, err
	}

	slog.Debug("added transaction", "id", saved.Meta().ID, "kind", saved.Kind())
	t.bus.Publish()
	return saved, nil
}

// Update validates and overwrites the transaction, then broadcasts the change.
func (t *Transactions) Update(ctx context.Context, txn model.Transaction) error {
	if err := t.validate(ctx, txn); err != nil {
		return err
	}

	if err := t.store.Transactions().Update(ctx, txn); err != nil {
		return err
	}

	t.bus.Publish()
	return nil
}

// Delete removes the transaction, then broadcasts the change.
func (t *Transactions) Delete(ctx context.Context, txn model.Transaction) error {
	if err := t.store.Transactions().Delete(ctx, txn); err != nil {
		return err
	}

	t.bus.Publish()
	return nil
}

// ForPeriod returns the user's transactions dated in the given month.
func (t *Transactions) ForPeriod(ctx context.Context, userID, month, year int) ([]model.Transaction, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	return t.store.Transactions().Find(ctx, TransactionsInPeriod(userID, month, year))
}

// validate checks field constraints and the ownership invariant: the
// transaction's category must exist and belong to the same user.
func (t *Transactions) validate(ctx context.Context, txn model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction cannot be nil", common.ErrValidation)
	}

	meta := txn.Meta()
	if err := validateTransactionFields(meta.Amount, meta.CategoryID, meta.UserID); err != nil {
		return err
	}

	category, found, err := t.store.Categories().GetByID(ctx, meta.CategoryID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: category %d does not exist", common.ErrValidation, meta.CategoryID)
	}
	if category.Meta().UserID != meta.UserID {
		return fmt.Errorf("%w: category %d is not owned by user %d",
			common.ErrConflict, meta.CategoryID, meta.UserID)
	}
	return nil
}
