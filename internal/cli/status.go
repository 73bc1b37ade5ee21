package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/wire"
)

// StatusCmd returns the status command.
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Break, lunch and shift status",
		Long: `Manage the current account's working status.

Breaks and lunches expire automatically after their duration; end
returns to the shift early.`,
	}

	cmd.AddCommand(statusBreakCmd())
	cmd.AddCommand(statusLunchCmd())
	cmd.AddCommand(statusEndCmd())

	return cmd
}

func statusBreakCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "break",
		Short: "Start a break (0 minutes = account default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().StartBreak(context.Background(), minutes); err != nil {
				return err
			}
			acc := wire.Engine().CurrentAccount()
			fmt.Printf("%s On break until %s\n", okMark, fmtMillis(acc.StatusUntil))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Break length in minutes")

	return cmd
}

func statusLunchCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "lunch",
		Short: "Start lunch (0 minutes = account default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().StartLunch(context.Background(), minutes); err != nil {
				return err
			}
			acc := wire.Engine().CurrentAccount()
			fmt.Printf("%s At lunch until %s\n", okMark, fmtMillis(acc.StatusUntil))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Lunch length in minutes")

	return cmd
}

func statusEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Return to shift early",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().EndStatus(context.Background()); err != nil {
				return err
			}
			fmt.Printf("%s Back on shift\n", okMark)
			return nil
		},
	}
}
