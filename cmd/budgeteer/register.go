package main

import (
	"fmt"

	"budgeteer/internal/cli"
	"budgeteer/internal/service"
	"budgeteer/internal/session"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	var (
		email    string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a new user account",
		Long:  `Register a new user. The password is stored as a bcrypt digest.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			auth := service.NewAuth(store, session.Default())
			user, err := auth.Register(ctx, args[0], args[1], email, fullName)
			if err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Registered %q (ID: %d)", user.Username, user.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")

	return cmd
}
