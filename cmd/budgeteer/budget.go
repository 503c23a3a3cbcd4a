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

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budgets",
		Long:  `Set and list planned spending per category and month.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "set <category-id> <planned-amount>",
		Short: "Set a planned amount for a category and month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			categoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}
			planned, err := model.NewAmount(args[1])
			if err != nil {
				return fmt.Errorf("invalid planned amount: %w", err)
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

			budget, err := service.NewBudgets(store).Set(ctx, &model.Budget{
				CategoryID:    categoryID,
				UserID:        user.ID,
				PlannedAmount: planned,
				Month:         month,
				Year:          year,
				CreatedAt:     time.Now(),
			})
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget %s for category %d: %s",
				budget.Period(), budget.CategoryID, budget.PlannedAmount.StringFixed(2))))
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets for a month",
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

			budgets, err := service.NewBudgets(store).ForPeriod(ctx, user.ID, month, year)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			names := map[int]string{}
			categories, err := store.Categories().GetAll(ctx)
			if err != nil {
				return err
			}
			for _, category := range categories {
				names[category.Meta().ID] = category.Meta().Name
			}

			fmt.Println(cli.RenderBudgetsTable(budgets, func(id int) string {
				if name, ok := names[id]; ok {
					return name
				}
				return fmt.Sprintf("category %d", id)
			}))
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}
