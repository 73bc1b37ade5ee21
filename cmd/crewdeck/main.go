package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/cli"
	"github.com/example/crewdeck/internal/version"
	"github.com/example/crewdeck/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "crewdeck",
		Short:   "CrewDeck - workshop crew coordination",
		Version: version.String(),
		Long: `CrewDeck tracks a workshop crew's day: inventory and restock
requests, chores and objectives with point awards, prizes and gifting,
safety verifications, schedules, messages and the notification feed.`,
	}

	rootCmd.AddCommand(cli.AccountCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.RequestCmd())
	rootCmd.AddCommand(cli.ChoreCmd())
	rootCmd.AddCommand(cli.ObjectiveCmd())
	rootCmd.AddCommand(cli.PrizeCmd())
	rootCmd.AddCommand(cli.SafetyCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.MailCmd())
	rootCmd.AddCommand(cli.NotificationCmd())
	rootCmd.AddCommand(cli.SweepCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.ResetCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
