package main

import (
	"errors"
	"fmt"

	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Prompt for the ads dashboard password and print its hash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var password, confirm string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(validatePassword),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != password {
						return errors.New("passwords do not match")
					}
					return nil
				}),
		))
		if err := form.Run(); err != nil {
			return err
		}

		hash, err := service.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_PASSWORD_HASH=%s\n", hash)
		return nil
	},
}

func validatePassword(s string) error {
	if msg := validation.ValidatePasswordField(s); msg != "" {
		return errors.New(msg)
	}
	return nil
}
