package main

import (
	"context"
	"fmt"

	"budgeteer/internal/config"
	"budgeteer/internal/model"
	"budgeteer/internal/service"
	"budgeteer/internal/session"
	"budgeteer/internal/storage"

	"github.com/spf13/viper"
)

// initStorage opens the shared database handle, migrates it, and seeds
// first-run data.
func initStorage(ctx context.Context) (*storage.Store, error) {
	store, err := storage.Open(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := store.Seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return store, nil
}

// currentUser returns the session user, logging in with --user/--password
// (or the auth.* config keys) if nobody is logged in yet.
func currentUser(ctx context.Context, store *storage.Store) (*model.User, error) {
	sess := session.Default()
	if user, ok := sess.Current(); ok {
		return user, nil
	}

	username := viper.GetString("auth.username")
	password := viper.GetString("auth.password")
	if username == "" {
		return nil, fmt.Errorf("no user logged in: pass --user and --password or set auth.username in the config")
	}

	auth := service.NewAuth(store, sess)
	return auth.Login(ctx, username, password)
}

// findCategory loads one category by id and checks it belongs to the user.
func findCategory(ctx context.Context, store *storage.Store, user *model.User, id int) (model.Category, error) {
	category, found, err := store.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found || category.Meta().UserID != user.ID {
		return nil, fmt.Errorf("category %d not found", id)
	}
	return category, nil
}
