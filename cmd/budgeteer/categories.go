package main

import (
	"fmt"
	"strconv"
	"time"

	"budgeteer/internal/cli"
	"budgeteer/internal/model"
	"budgeteer/internal/service"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, and delete the categories that transactions are booked against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			categories, err := service.NewCategories(store).ForUser(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			fmt.Println(cli.RenderCategoriesTable(categories))
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		kind        string
		description string
		color       string
		maxBudget   string
		recurring   bool
		essential   bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long:  `Create an income or expense category. The --kind flag selects the variant.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			meta := model.CategoryMeta{
				Name:        args[0],
				Description: description,
				Color:       color,
				UserID:      user.ID,
				CreatedAt:   time.Now(),
			}

			var category model.Category
			switch model.CategoryKind(kind) {
			case model.CategoryIncome:
				category = &model.IncomeCategory{CategoryMeta: meta, IsRecurring: recurring}
			case model.CategoryExpense:
				budget := model.MustAmount("0")
				if maxBudget != "" {
					budget, err = model.NewAmount(maxBudget)
					if err != nil {
						return fmt.Errorf("invalid --max-budget: %w", err)
					}
				}
				category = &model.ExpenseCategory{
					CategoryMeta:     meta,
					IsEssential:      essential,
					MaxMonthlyBudget: budget,
				}
			default:
				return fmt.Errorf("invalid --kind %q: must be Income or Expense", kind)
			}

			saved, err := service.NewCategories(store).Create(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q (ID: %d)",
				saved.Kind(), saved.Meta().Name, saved.Meta().ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "Expense", "Category kind (Income or Expense)")
	cmd.Flags().StringVar(&description, "description", "", "Category description")
	cmd.Flags().StringVar(&color, "color", "", "Display color, #RRGGBB (defaults to gray)")
	cmd.Flags().StringVar(&maxBudget, "max-budget", "", "Soft monthly cap for expense categories")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Mark an income category as recurring")
	cmd.Flags().BoolVar(&essential, "essential", false, "Mark an expense category as essential")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. This fails if any transactions or budgets still reference it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			category, err := findCategory(ctx, store, user, id)
			if err != nil {
				return err
			}

			if err := service.NewCategories(store).Delete(ctx, category); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %d", id)))
			return nil
		},
	}
}
