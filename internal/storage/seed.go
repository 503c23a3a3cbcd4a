package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgeteer/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// seedAdminUsername is the administrator account created on first run.
const seedAdminUsername = "admin"

// Seed creates the administrator user and the starter category set on
// first run. It is a no-op when any categories already exist.
func (s *Store) Seed(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	count, err := s.Categories().Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		slog.Debug("seed skipped, categories already present", "count", count)
		return nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(seedAdminUsername), 12)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := s.Users().Add(ctx, &model.User{
		Username:     seedAdminUsername,
		PasswordHash: string(digest),
		FullName:     "Administrator",
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	for _, category := range starterCategories(admin.ID) {
		if _, err := s.Categories().Add(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Meta().Name, err)
		}
	}

	slog.Info("seeded starter data", "admin_id", admin.ID, "categories", 10)
	return nil
}

// starterCategories is the fixed first-run set: six expense and four
// income categories.
func starterCategories(userID int) []model.Category {
	expense := func(name, description, color string, essential bool) model.Category {
		return &model.ExpenseCategory{
			CategoryMeta: model.CategoryMeta{
				Name:        name,
				Description: description,
				Color:       color,
				UserID:      userID,
				CreatedAt:   time.Now(),
			},
			IsEssential:      essential,
			MaxMonthlyBudget: model.MustAmount("0"),
		}
	}
	income := func(name, description, color string, recurring bool) model.Category {
		return &model.IncomeCategory{
			CategoryMeta: model.CategoryMeta{
				Name:        name,
				Description: description,
				Color:       color,
				UserID:      userID,
				CreatedAt:   time.Now(),
			},
			IsRecurring: recurring,
		}
	}

	return []model.Category{
		expense("Hrana", "Kupovina hrane i namirnica", "#FF6B6B", true),
		expense("Transport", "Gorivo, prevoz, parking", "#4ECDC4", true),
		expense("Računi", "Komunalije, internet, telefon", "#FFE66D", true),
		expense("Zabava", "Izlasci, bioskop, restorani", "#95E1D3", false),
		expense("Odeca", "Kupovina garderobe i obuće", "#F38181", false),
		expense("Zdravlje", "Lekovi, lekarske usluge", "#AA96DA", true),
		income("Plata", "Mesečna plata", "#51CF66", true),
		income("Honorar", "Freelance i dodatni poslovi", "#74C0FC", false),
		income("Poklon", "Novčani pokloni", "#FFD43B", false),
		income("Investicije", "Prihod od investicija", "#63E6BE", false),
	}
}
