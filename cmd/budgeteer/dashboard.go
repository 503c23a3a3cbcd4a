package main

import (
	"fmt"
	"time"

	"budgeteer/internal/cli"
	"budgeteer/internal/service"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and transactions for a month",
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

			reports := service.NewReports(store)
			summary, err := reports.Totals(ctx, user.ID, month, year)
			if err != nil {
				return fmt.Errorf("failed to compute totals: %w", err)
			}

			title := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
			fmt.Println(cli.RenderSummary(title, summary))

			transactions := service.NewTransactions(store, service.NewBus())
			listed, err := transactions.ForPeriod(ctx, user.ID, month, year)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			fmt.Println(cli.RenderTransactionsTable(listed))

			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}
