package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flamtime/SomeNerts/internal/repository"
)

func newOwnerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage the owner account",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create the owner account on a fresh database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.svcs.Auth.Setup(cmd.Context(), &repository.SetupRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created owner %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "Owner email")
	create.Flags().StringVar(&password, "password", "", "Owner password, at least 8 characters")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
