package main

import (
	"fmt"

	"github.com/admin-dashboard/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Open the user-management dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d := tui.NewDispatcher()
		svc, closeAll, err := openServices(ctx, d.Dispatch)
		if err != nil {
			return err
		}
		defer closeAll()

		m := tui.NewUsersModel(ctx, svc.Users, d, cfg.Dashboard, log)
		return runProgram(m)
	},
}

var adsCmd = &cobra.Command{
	Use:   "ads",
	Short: "Open the ads-management dashboard",
	Long: `Open the ads-management dashboard.

When ADMIN_PASSWORD_HASH is set the dashboard asks for ADMIN_EMAIL and the
password first. Use "dashboard hash-password" to produce the hash.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d := tui.NewDispatcher()
		svc, closeAll, err := openServices(ctx, d.Dispatch)
		if err != nil {
			return err
		}
		defer closeAll()

		m := tui.NewAdsModel(ctx, svc.Ads, svc.Auth, d, cfg.Dashboard, log)
		return runProgram(m)
	},
}

func runProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
