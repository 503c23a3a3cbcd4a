package main

import (
	"fmt"
	"time"

	"budgeteer/internal/cli"
	"budgeteer/internal/service"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate monthly report snapshots",
	}

	cmd.AddCommand(generateReportCmd())

	return cmd
}

func generateReportCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute and persist a monthly report snapshot",
		Long:  `Compute income, expense and balance totals for the month and store them as an immutable snapshot.`,
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

			report, err := service.NewReports(store).Generate(ctx, user.ID, month, year)
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}

			fmt.Println(cli.RenderSummary(report.MonthName(), service.Summary{
				TotalIncome:   report.TotalIncome,
				TotalExpenses: report.TotalExpenses,
				Balance:       report.Balance,
			}))
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved report snapshot (ID: %d)", report.ID)))
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}
