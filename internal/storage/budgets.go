package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgeteer/internal/model"
)

func budgetTable(_ *Store) tableDef[*model.Budget] {
	return tableDef[*model.Budget]{
		table:     "budgets",
		selectAll: `SELECT id, category_id, user_id, planned_amount, month, year, created_at FROM budgets`,
		scan:      scanBudget,
		id:        func(b *model.Budget) int { return b.ID },
		setID:     func(b *model.Budget, id int) { b.ID = id },
		insert:    insertBudget,
		update:    updateBudget,
	}
}

func scanBudget(rows *sql.Rows) (*model.Budget, error) {
	var (
		b       model.Budget
		planned string
	)
	err := rows.Scan(&b.ID, &b.CategoryID, &b.UserID, &planned, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}

	amount, err := model.NewAmount(planned)
	if err != nil {
		return nil, fmt.Errorf("failed to parse planned amount %q: %w", planned, err)
	}
	b.PlannedAmount = amount
	return &b, nil
}

func insertBudget(ctx context.Context, tx *sql.Tx, b *model.Budget) (int64, error) {
	if b == nil {
		return 0, fmt.Errorf("%w: budget", ErrNilEntity)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO budgets (id, category_id, user_id, planned_amount, month, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		idOrNil(b.ID), b.CategoryID, b.UserID, b.PlannedAmount.String(), b.Month, b.Year, b.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func updateBudget(ctx context.Context, tx *sql.Tx, b *model.Budget) (int64, error) {
	if b == nil {
		return 0, fmt.Errorf("%w: budget", ErrNilEntity)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE budgets
		SET category_id = ?, user_id = ?, planned_amount = ?, month = ?, year = ?, created_at = ?
		WHERE id = ?`,
		b.CategoryID, b.UserID, b.PlannedAmount.String(), b.Month, b.Year, b.CreatedAt, b.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
