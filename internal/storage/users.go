package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

func userTable(s *Store) tableDef[*model.User] {
	return tableDef[*model.User]{
		table:     "users",
		selectAll: `SELECT id, username, password_hash, email, full_name, created_at FROM users`,
		scan:      scanUser,
		id:        func(u *model.User) int { return u.ID },
		setID:     func(u *model.User, id int) { u.ID = id },
		insert:    insertUser,
		update:    updateUser,
		preDelete: s.userPreDelete,
	}
}

func scanUser(rows *sql.Rows) (*model.User, error) {
	var u model.User
	if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func insertUser(ctx context.Context, tx *sql.Tx, u *model.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("%w: user", ErrNilEntity)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, email, full_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		idOrNil(u.ID), u.Username, u.PasswordHash, u.Email, u.FullName, u.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func updateUser(ctx context.Context, tx *sql.Tx, u *model.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("%w: user", ErrNilEntity)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE users
		SET username = ?, password_hash = ?, email = ?, full_name = ?, created_at = ?
		WHERE id = ?`,
		u.Username, u.PasswordHash, u.Email, u.FullName, u.CreatedAt, u.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// userPreDelete enforces the user deletion rules: restricted while the
// user still owns transactions, otherwise cascading to the user's
// categories, budgets and report snapshots.
func (s *Store) userPreDelete(ctx context.Context, tx *sql.Tx, u *model.User) error {
	if u == nil {
		return fmt.Errorf("%w: user", ErrNilEntity)
	}

	var txnCount int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE user_id = ?`, u.ID).Scan(&txnCount)
	if err != nil {
		return fmt.Errorf("failed to count user transactions: %w", err)
	}
	if txnCount > 0 {
		return fmt.Errorf("%w: user %d still owns %d transactions", common.ErrConflict, u.ID, txnCount)
	}

	cascades := []string{
		`DELETE FROM budgets WHERE user_id = ?`,
		`DELETE FROM categories WHERE user_id = ?`,
		`DELETE FROM monthly_reports WHERE user_id = ?`,
	}
	for _, query := range cascades {
		if _, err := tx.ExecContext(ctx, query, u.ID); err != nil {
			return fmt.Errorf("failed to cascade user delete: %w", err)
		}
	}
	return nil
}
