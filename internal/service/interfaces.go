// Package service defines the domain services and the contracts they
// require from the persistence layer.
package service

import (
	"context"

	"budgeteer/internal/model"
)

// Predicate is an arbitrary boolean test over an entity's fields.
type Predicate[T any] func(T) bool

// Repository is the generic persistence contract for one entity type.
// Find evaluates the predicate over all rows of the type; a nil predicate
// passed to Count matches everything.
type Repository[T any, ID comparable] interface {
	GetByID(ctx context.Context, id ID) (T, bool, error)
	GetAll(ctx context.Context) ([]T, error)
	Find(ctx context.Context, match Predicate[T]) ([]T, error)
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entity T) error
	Count(ctx context.Context, match Predicate[T]) (int, error)
	Exists(ctx context.Context, match Predicate[T]) (bool, error)
}

// Storage is the durable store shared process-wide. All entity collections
// live behind it; no component touches the database directly.
type Storage interface {
	Users() Repository[*model.User, int]
	Categories() Repository[model.Category, int]
	Transactions() Repository[model.Transaction, int]
	Budgets() Repository[*model.Budget, int]
	Reports() Repository[*model.MonthlyReport, int]
	Migrate(ctx context.Context) error
	Seed(ctx context.Context) error
	Close() error
}
