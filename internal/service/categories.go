package service

import (
	"context"
	"fmt"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

// Categories wraps the category repository with field validation.
type Categories struct {
	store Storage
}

// NewCategories creates the category service.
func NewCategories(store Storage) *Categories {
	return &Categories{store: store}
}

// Create validates and persists a category of either variant.
func (c *Categories) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if err := c.validate(category); err != nil {
		return nil, err
	}
	return c.store.Categories().Add(ctx, category)
}

// Update validates and overwrites a category.
func (c *Categories) Update(ctx context.Context, category model.Category) error {
	if err := c.validate(category); err != nil {
		return err
	}
	return c.store.Categories().Update(ctx, category)
}

// Delete removes a category. The store refuses while transactions or
// budgets still reference it.
func (c *Categories) Delete(ctx context.Context, category model.Category) error {
	return c.store.Categories().Delete(ctx, category)
}

// ForUser returns the categories owned by the given user.
func (c *Categories) ForUser(ctx context.Context, userID int) ([]model.Category, error) {
	return c.store.Categories().Find(ctx, CategoriesByUser(userID))
}

func (c *Categories) validate(category model.Category) error {
	if category == nil {
		return fmt.Errorf("%w: category cannot be nil", common.ErrValidation)
	}

	meta := category.Meta()
	if err := validateName(meta.Name); err != nil {
		return err
	}
	if meta.Color == "" {
		meta.Color = model.DefaultCategoryColor
	}
	if err := validateColor(meta.Color); err != nil {
		return err
	}
	if err := validateID(meta.UserID, "userId"); err != nil {
		return err
	}

	if expense, isExpense := category.(*model.ExpenseCategory); isExpense {
		return validateNonNegativeAmount(expense.MaxMonthlyBudget, "maxMonthlyBudget")
	}
	return nil
}
