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

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		description   string
		date          string
		source        string
		paymentMethod string
		taxable       bool
		planned       bool
	)

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount> <category-id>",
		Short: "Record a transaction",
		Long:  `Record an income or expense. The amount is an exact decimal, e.g. 49.90.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := model.NewAmount(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			categoryID, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date, want YYYY-MM-DD: %w", err)
				}
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

			txn, err := service.NewTransaction(args[0], amount, description, when, categoryID, user.ID)
			if err != nil {
				return err
			}
			switch v := txn.(type) {
			case *model.Income:
				v.Source = source
				v.IsTaxable = taxable
			case *model.Expense:
				if paymentMethod != "" {
					v.PaymentMethod = paymentMethod
				}
				v.IsPlanned = planned
			}

			transactions := service.NewTransactions(store, service.NewBus())
			saved, err := transactions.Add(ctx, txn)
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (ID: %d)",
				saved.Kind(), saved.FormatAmount(), saved.Meta().ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&source, "source", "", "Income source")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "Expense payment method (defaults to Cash)")
	cmd.Flags().BoolVar(&taxable, "taxable", true, "Income counts toward taxable income")
	cmd.Flags().BoolVar(&planned, "planned", false, "Expense was planned in advance")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a month",
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

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction ID: %w", err)
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

			txn, found, err := store.Transactions().GetByID(ctx, id)
			if err != nil {
				return err
			}
			if !found || txn.Meta().UserID != user.ID {
				return fmt.Errorf("transaction %d not found", id)
			}

			transactions := service.NewTransactions(store, service.NewBus())
			if err := transactions.Delete(ctx, txn); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}
