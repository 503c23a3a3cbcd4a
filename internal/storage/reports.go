package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgeteer/internal/model"
)

func reportTable(_ *Store) tableDef[*model.MonthlyReport] {
	return tableDef[*model.MonthlyReport]{
		table: "monthly_reports",
		selectAll: `SELECT id, user_id, month, year, total_income, total_expenses,
			balance, generated_at FROM monthly_reports`,
		scan:   scanReport,
		id:     func(r *model.MonthlyReport) int { return r.ID },
		setID:  func(r *model.MonthlyReport, id int) { r.ID = id },
		insert: insertReport,
		update: updateReport,
	}
}

func scanReport(rows *sql.Rows) (*model.MonthlyReport, error) {
	var (
		r                               model.MonthlyReport
		totalIncome, totalExp, balance string
	)
	err := rows.Scan(&r.ID, &r.UserID, &r.Month, &r.Year, &totalIncome, &totalExp, &balance, &r.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly report: %w", err)
	}

	for _, field := range []struct {
		dst *model.Amount
		raw string
	}{
		{&r.TotalIncome, totalIncome},
		{&r.TotalExpenses, totalExp},
		{&r.Balance, balance},
	} {
		amount, err := model.NewAmount(field.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report amount %q: %w", field.raw, err)
		}
		*field.dst = amount
	}
	return &r, nil
}

func insertReport(ctx context.Context, tx *sql.Tx, r *model.MonthlyReport) (int64, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: monthly report", ErrNilEntity)
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO monthly_reports (id, user_id, month, year, total_income,
			total_expenses, balance, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		idOrNil(r.ID), r.UserID, r.Month, r.Year, r.TotalIncome.String(),
		r.TotalExpenses.String(), r.Balance.String(), r.GeneratedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Reports are immutable snapshots; update exists only to satisfy the
// repository contract and overwrites the row like any other entity.
func updateReport(ctx context.Context, tx *sql.Tx, r *model.MonthlyReport) (int64, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: monthly report", ErrNilEntity)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE monthly_reports
		SET user_id = ?, month = ?, year = ?, total_income = ?,
			total_expenses = ?, balance = ?, generated_at = ?
		WHERE id = ?`,
		r.UserID, r.Month, r.Year, r.TotalIncome.String(), r.TotalExpenses.String(),
		r.Balance.String(), r.GeneratedAt, r.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
