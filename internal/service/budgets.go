package service

import (
	"context"
	"fmt"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

// Budgets wraps the budget repository with validation and ownership checks.
type Budgets struct {
	store Storage
}

// NewBudgets creates the budget service.
func NewBudgets(store Storage) *Budgets {
	return &Budgets{store: store}
}

// Set validates and persists a budget for one category and month.
func (b *Budgets) Set(ctx context.Context, budget *model.Budget) (*model.Budget, error) {
	if err := b.validate(ctx, budget); err != nil {
		return nil, err
	}
	return b.store.Budgets().Add(ctx, budget)
}

// Update validates and overwrites a budget.
func (b *Budgets) Update(ctx context.Context, budget *model.Budget) error {
	if err := b.validate(ctx, budget); err != nil {
		return err
	}
	return b.store.Budgets().Update(ctx, budget)
}

// Delete removes a budget.
func (b *Budgets) Delete(ctx context.Context, budget *model.Budget) error {
	return b.store.Budgets().Delete(ctx, budget)
}

// ForPeriod returns the user's budgets for the given month.
func (b *Budgets) ForPeriod(ctx context.Context, userID, month, year int) ([]*model.Budget, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	return b.store.Budgets().Find(ctx, BudgetsForPeriod(userID, month, year))
}

// ActiveOn returns the user's budgets active for the given calendar date.
func (b *Budgets) ActiveOn(ctx context.Context, userID int, date time.Time) ([]*model.Budget, error) {
	return b.store.Budgets().Find(ctx, func(budget *model.Budget) bool {
		return budget.UserID == userID && budget.ActiveOn(date)
	})
}

func (b *Budgets) validate(ctx context.Context, budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget cannot be nil", common.ErrValidation)
	}
	if err := validateMonth(budget.Month); err != nil {
		return err
	}
	if err := validateNonNegativeAmount(budget.PlannedAmount, "plannedAmount"); err != nil {
		return err
	}
	if err := validateID(budget.CategoryID, "categoryId"); err != nil {
		return err
	}
	if err := validateID(budget.UserID, "userId"); err != nil {
		return err
	}

	category, found, err := b.store.Categories().GetByID(ctx, budget.CategoryID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: category %d does not exist", common.ErrValidation, budget.CategoryID)
	}
	if category.Meta().UserID != budget.UserID {
		return fmt.Errorf("%w: category %d is not owned by user %d",
			common.ErrConflict, budget.CategoryID, budget.UserID)
	}
	return nil
}
