package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgeteer/internal/model"
)

func transactionTable(_ *Store) tableDef[model.Transaction] {
	return tableDef[model.Transaction]{
		table: "transactions",
		selectAll: `SELECT id, kind, amount, description, date, category_id, user_id,
			source, is_taxable, payment_method, is_planned, created_at FROM transactions`,
		scan:   scanTransaction,
		id:     func(t model.Transaction) int { return t.Meta().ID },
		setID:  func(t model.Transaction, id int) { t.Meta().ID = id },
		insert: insertTransaction,
		update: updateTransaction,
		// Nothing references transactions; no restrict or cascade rules.
	}
}

// scanTransaction reads the kind discriminator first and dispatches to the
// matching variant's field set.
func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var (
		meta          model.TransactionMeta
		kind          string
		amount        string
		source        string
		isTaxable     bool
		paymentMethod string
		isPlanned     bool
	)

	err := rows.Scan(&meta.ID, &kind, &amount, &meta.Description, &meta.Date,
		&meta.CategoryID, &meta.UserID, &source, &isTaxable, &paymentMethod,
		&isPlanned, &meta.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	parsed, err := model.NewAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
	}
	meta.Amount = parsed

	switch model.TransactionKind(kind) {
	case model.TransactionIncome:
		return &model.Income{TransactionMeta: meta, Source: source, IsTaxable: isTaxable}, nil
	case model.TransactionExpense:
		return &model.Expense{TransactionMeta: meta, PaymentMethod: paymentMethod, IsPlanned: isPlanned}, nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %q for id %d", kind, meta.ID)
	}
}

func insertTransaction(ctx context.Context, tx *sql.Tx, t model.Transaction) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: transaction", ErrNilEntity)
	}

	meta := t.Meta()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}

	source, isTaxable, paymentMethod, isPlanned := transactionVariantColumns(t)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (id, kind, amount, description, date, category_id,
			user_id, source, is_taxable, payment_method, is_planned, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		idOrNil(meta.ID), string(t.Kind()), meta.Amount.String(), meta.Description,
		meta.Date, meta.CategoryID, meta.UserID, source, isTaxable, paymentMethod,
		isPlanned, meta.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func updateTransaction(ctx context.Context, tx *sql.Tx, t model.Transaction) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: transaction", ErrNilEntity)
	}

	meta := t.Meta()
	source, isTaxable, paymentMethod, isPlanned := transactionVariantColumns(t)

	result, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET kind = ?, amount = ?, description = ?, date = ?, category_id = ?,
			user_id = ?, source = ?, is_taxable = ?, payment_method = ?,
			is_planned = ?, created_at = ?
		WHERE id = ?`,
		string(t.Kind()), meta.Amount.String(), meta.Description, meta.Date,
		meta.CategoryID, meta.UserID, source, isTaxable, paymentMethod, isPlanned,
		meta.CreatedAt, meta.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func transactionVariantColumns(t model.Transaction) (source string, isTaxable bool, paymentMethod string, isPlanned bool) {
	isTaxable = true
	paymentMethod = model.DefaultPaymentMethod
	switch txn := t.(type) {
	case *model.Income:
		source = txn.Source
		isTaxable = txn.IsTaxable
	case *model.Expense:
		paymentMethod = txn.PaymentMethod
		isPlanned = txn.IsPlanned
	}
	return source, isTaxable, paymentMethod, isPlanned
}
