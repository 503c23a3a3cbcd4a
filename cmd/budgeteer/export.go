package main

import (
	"fmt"
	"io"
	"time"

	"budgeteer/internal/cli"
	"budgeteer/internal/export"
	"budgeteer/internal/model"
	"budgeteer/internal/service"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to JSON or XML files",
	}

	cmd.AddCommand(exportTransactionsCmd())
	cmd.AddCommand(exportCategoriesCmd())

	return cmd
}

func exportTransactionsCmd() *cobra.Command {
	var (
		output string
		format string
		month  int
		year   int
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Export one month of transactions",
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

			transactions := service.NewTransactions(store, service.NewBus())
			listed, err := transactions.ForPeriod(ctx, user.ID, month, year)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			write, err := transactionWriter(format, listed)
			if err != nil {
				return err
			}
			if err := export.ToFile(output, write); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(listed), output)))
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().StringVar(&output, "output", "transactions.json", "Output file path")
	cmd.Flags().StringVar(&format, "format", "json", "Export format (json or xml)")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	return cmd
}

func exportCategoriesCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Export your categories",
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
				return fmt.Errorf("failed to load categories: %w", err)
			}

			write, err := categoryWriter(format, categories)
			if err != nil {
				return err
			}
			if err := export.ToFile(output, write); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d categories to %s", len(categories), output)))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "categories.json", "Output file path")
	cmd.Flags().StringVar(&format, "format", "json", "Export format (json or xml)")

	return cmd
}

func transactionWriter(format string, transactions []model.Transaction) (func(io.Writer) error, error) {
	switch format {
	case "json":
		return func(w io.Writer) error { return export.TransactionsJSON(w, transactions) }, nil
	case "xml":
		return func(w io.Writer) error { return export.TransactionsXML(w, transactions) }, nil
	default:
		return nil, fmt.Errorf("invalid --format %q: must be json or xml", format)
	}
}

func categoryWriter(format string, categories []model.Category) (func(io.Writer) error, error) {
	switch format {
	case "json":
		return func(w io.Writer) error { return export.CategoriesJSON(w, categories) }, nil
	case "xml":
		return func(w io.Writer) error { return export.CategoriesXML(w, categories) }, nil
	default:
		return nil, fmt.Errorf("invalid --format %q: must be json or xml", format)
	}
}
