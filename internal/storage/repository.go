package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgeteer/internal/common"
	"budgeteer/internal/service"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// tableDef describes how one entity type maps onto its relation.
type tableDef[T any] struct {
	// selectAll is the full projection; per-id lookups append WHERE id = ?.
	selectAll string
	table     string
	scan      func(*sql.Rows) (T, error)
	id        func(T) int
	setID     func(T, int)
	insert    func(context.Context, *sql.Tx, T) (int64, error)
	update    func(context.Context, *sql.Tx, T) (int64, error)
	// preDelete enforces restrict rules and performs cascades inside the
	// same transaction as the row removal. May be nil.
	preDelete func(context.Context, *sql.Tx, T) error
}

// repo is the generic SQLite-backed repository. Predicates are evaluated
// in memory over the loaded rows, preserving field-by-field semantics
// (equality, range, substring) at single-user data scale.
type repo[T any] struct {
	store *Store
	def   tableDef[T]
}

// GetByID returns the entity, or ok=false if no row has that id.
func (r *repo[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	var zero T
	if err := validateContext(ctx); err != nil {
		return zero, false, err
	}

	rows, err := r.store.db.QueryContext(ctx, r.def.selectAll+" WHERE id = ?", id)
	if err != nil {
		return zero, false, fmt.Errorf("failed to query %s: %w", r.def.table, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, false, fmt.Errorf("failed to read %s row: %w", r.def.table, err)
		}
		return zero, false, nil
	}

	entity, err := r.def.scan(rows)
	if err != nil {
		return zero, false, err
	}
	return entity, true, nil
}

// GetAll returns every entity of the type, ordered by id.
func (r *repo[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.Find(ctx, nil)
}

// Find returns the entities satisfying the predicate. A nil predicate
// matches everything.
func (r *repo[T]) Find(ctx context.Context, match service.Predicate[T]) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := r.store.db.QueryContext(ctx, r.def.selectAll+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.def.table, err)
	}
	defer func() { _ = rows.Close() }()

	var entities []T
	for rows.Next() {
		entity, scanErr := r.def.scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		if match == nil || match(entity) {
			entities = append(entities, entity)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", r.def.table, err)
	}
	return entities, nil
}

// Add persists the entity, assigning a new unique id when unset. The change
// is durable when Add returns.
func (r *repo[T]) Add(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := validateContext(ctx); err != nil {
		return zero, err
	}

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	id, err := r.def.insert(ctx, tx, entity)
	if err != nil {
		_ = tx.Rollback()
		return zero, mapConstraint(err, fmt.Sprintf("failed to insert into %s", r.def.table))
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit insert into %s: %w", r.def.table, err)
	}

	r.def.setID(entity, int(id))
	return entity, nil
}

// Update overwrites the full row keyed by the entity's id.
func (r *repo[T]) Update(ctx context.Context, entity T) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	affected, err := r.def.update(ctx, tx, entity)
	if err != nil {
		_ = tx.Rollback()
		return mapConstraint(err, fmt.Sprintf("failed to update %s", r.def.table))
	}
	if affected == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s id %d", common.ErrNotFound, r.def.table, r.def.id(entity))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update of %s: %w", r.def.table, err)
	}
	return nil
}

// Delete removes the row keyed by the entity's id, after enforcing the
// entity's restrict and cascade rules in the same transaction. A refused
// delete leaves every row intact.
func (r *repo[T]) Delete(ctx context.Context, entity T) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if r.def.preDelete != nil {
		if err := r.def.preDelete(ctx, tx, entity); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM "+r.def.table+" WHERE id = ?", r.def.id(entity))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete from %s: %w", r.def.table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s id %d", common.ErrNotFound, r.def.table, r.def.id(entity))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete from %s: %w", r.def.table, err)
	}
	return nil
}

// Count returns the number of entities matching the predicate; nil counts all.
func (r *repo[T]) Count(ctx context.Context, match service.Predicate[T]) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	if match == nil {
		var count int
		err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.def.table).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("failed to count %s: %w", r.def.table, err)
		}
		return count, nil
	}

	entities, err := r.Find(ctx, match)
	if err != nil {
		return 0, err
	}
	return len(entities), nil
}

// Exists reports whether any entity matches the predicate.
func (r *repo[T]) Exists(ctx context.Context, match service.Predicate[T]) (bool, error) {
	count, err := r.Count(ctx, match)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// mapConstraint translates SQLite constraint violations into the conflict
// error so callers can distinguish them from I/O failures.
func mapConstraint(err error, msg string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", common.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// idOrNil lets INTEGER PRIMARY KEY assign a fresh id when the entity's id
// is unset, and preserves an explicit id otherwise.
func idOrNil(id int) any {
	if id == 0 {
		return nil
	}
	return id
}
