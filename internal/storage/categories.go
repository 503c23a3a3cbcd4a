package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

func categoryTable(s *Store) tableDef[model.Category] {
	return tableDef[model.Category]{
		table: "categories",
		selectAll: `SELECT id, kind, name, description, color, user_id,
			is_recurring, is_essential, max_monthly_budget, created_at FROM categories`,
		scan:      scanCategory,
		id:        func(c model.Category) int { return c.Meta().ID },
		setID:     func(c model.Category, id int) { c.Meta().ID = id },
		insert:    insertCategory,
		update:    updateCategory,
		preDelete: s.categoryPreDelete,
	}
}

// scanCategory reads the kind discriminator first and dispatches to the
// matching variant's field set.
func scanCategory(rows *sql.Rows) (model.Category, error) {
	var (
		meta        model.CategoryMeta
		kind        string
		isRecurring bool
		isEssential bool
		maxBudget   string
	)

	err := rows.Scan(&meta.ID, &kind, &meta.Name, &meta.Description, &meta.Color,
		&meta.UserID, &isRecurring, &isEssential, &maxBudget, &meta.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}

	switch model.CategoryKind(kind) {
	case model.CategoryIncome:
		return &model.IncomeCategory{CategoryMeta: meta, IsRecurring: isRecurring}, nil
	case model.CategoryExpense:
		budget, err := model.NewAmount(maxBudget)
		if err != nil {
			return nil, fmt.Errorf("failed to parse max monthly budget %q: %w", maxBudget, err)
		}
		return &model.ExpenseCategory{CategoryMeta: meta, IsEssential: isEssential, MaxMonthlyBudget: budget}, nil
	default:
		return nil, fmt.Errorf("unknown category kind %q for id %d", kind, meta.ID)
	}
}

func insertCategory(ctx context.Context, tx *sql.Tx, c model.Category) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: category", ErrNilEntity)
	}

	meta := c.Meta()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}
	if meta.Color == "" {
		meta.Color = model.DefaultCategoryColor
	}

	isRecurring, isEssential, maxBudget := categoryVariantColumns(c)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO categories (id, kind, name, description, color, user_id,
			is_recurring, is_essential, max_monthly_budget, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		idOrNil(meta.ID), string(c.Kind()), meta.Name, meta.Description, meta.Color,
		meta.UserID, isRecurring, isEssential, maxBudget, meta.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func updateCategory(ctx context.Context, tx *sql.Tx, c model.Category) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: category", ErrNilEntity)
	}

	meta := c.Meta()
	isRecurring, isEssential, maxBudget := categoryVariantColumns(c)

	result, err := tx.ExecContext(ctx, `
		UPDATE categories
		SET kind = ?, name = ?, description = ?, color = ?, user_id = ?,
			is_recurring = ?, is_essential = ?, max_monthly_budget = ?, created_at = ?
		WHERE id = ?`,
		string(c.Kind()), meta.Name, meta.Description, meta.Color, meta.UserID,
		isRecurring, isEssential, maxBudget, meta.CreatedAt, meta.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// categoryVariantColumns flattens the variant-specific fields onto the
// shared relation; the columns of the other variant keep their defaults.
func categoryVariantColumns(c model.Category) (isRecurring, isEssential bool, maxBudget string) {
	maxBudget = "0"
	switch cat := c.(type) {
	case *model.IncomeCategory:
		isRecurring = cat.IsRecurring
	case *model.ExpenseCategory:
		isEssential = cat.IsEssential
		maxBudget = cat.MaxMonthlyBudget.String()
	}
	return isRecurring, isEssential, maxBudget
}

// categoryPreDelete refuses deletion while transactions or budgets still
// reference the category.
func (s *Store) categoryPreDelete(ctx context.Context, tx *sql.Tx, c model.Category) error {
	if c == nil {
		return fmt.Errorf("%w: category", ErrNilEntity)
	}
	id := c.Meta().ID

	var txnCount, budgetCount int
	err := tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM transactions WHERE category_id = ?),
			(SELECT COUNT(*) FROM budgets WHERE category_id = ?)`,
		id, id).Scan(&txnCount, &budgetCount)
	if err != nil {
		return fmt.Errorf("failed to count category references: %w", err)
	}

	if txnCount > 0 || budgetCount > 0 {
		return fmt.Errorf("%w: category %d is referenced by %d transactions and %d budgets",
			common.ErrConflict, id, txnCount, budgetCount)
	}
	return nil
}
