package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// AccountCmd returns the account command.
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Login, session and profile management",
		Long: `Manage the local account session.

Login is login-or-create: an unknown (role, name) pair creates a fresh
account, a known pair requires the matching password. Auto login skips
the password when an account of the role is bound to this device.`,
	}

	cmd.AddCommand(accountLoginCmd())
	cmd.AddCommand(accountAutoCmd())
	cmd.AddCommand(accountSignOutCmd())
	cmd.AddCommand(accountShowCmd())
	cmd.AddCommand(accountListCmd())

	return cmd
}

func accountLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <role> <name>",
		Short: "Log in, creating the account if it does not exist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			role, err := parseRole(args[0])
			if err != nil {
				return err
			}

			acc, err := wire.Engine().LoginOrCreateAccount(ctx, primary.LoginParams{
				Role: role, Name: args[1], Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s Logged in as %s (%s)\n", okMark, acc.Name, acc.Role)
			fmt.Printf("  Progress: %d points\n", acc.Progress)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func accountAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto <role>",
		Short: "Auto login for a role bound to this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[0])
			if err != nil {
				return err
			}
			acc, err := wire.Engine().AutoLoginForRole(context.Background(), role)
			if err != nil {
				return err
			}
			fmt.Printf("%s Logged in as %s (%s)\n", okMark, acc.Name, acc.Role)
			return nil
		},
	}
}

func accountSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Clear the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().SignOut(context.Background()); err != nil {
				return err
			}
			fmt.Printf("%s Signed out\n", okMark)
			return nil
		},
	}
}

func accountShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := wire.Engine().CurrentAccount()
			if acc == nil {
				fmt.Println("No active session")
				return nil
			}
			fmt.Printf("Account: %s\n", acc.Name)
			fmt.Printf("  Role: %s\n", acc.Role)
			fmt.Printf("  Status: %s\n", fmtStatus(*acc))
			fmt.Printf("  Progress: %d points\n", acc.Progress)
			fmt.Printf("  Favorites: %v\n", acc.FavoriteTabs)
			fmt.Printf("  Device: %s\n", acc.DeviceID)
			return nil
		},
	}
}

func accountListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := wire.Engine().Accounts()
			if len(accounts) == 0 {
				fmt.Println("No accounts")
				return nil
			}
			for _, acc := range accounts {
				fmt.Printf("%s  %-20s %-18s %4d pts  %s\n",
					acc.ID, acc.Name, acc.Role, acc.Progress, fmtStatus(acc))
			}
			return nil
		},
	}
}
