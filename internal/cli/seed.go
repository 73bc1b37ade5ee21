package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/wire"
)

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the state with a demo or YAML fixture",
		Long: `Replace the whole state with fixture data.

Without flags the built-in demo fixture is loaded: one account per
role, a stocked inventory, starter chores and a small prize ladder.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if file != "" {
				if err := wire.Engine().SeedFromFile(ctx, file); err != nil {
					return err
				}
				fmt.Printf("%s Seeded from %s\n", okMark, file)
				return nil
			}
			if err := wire.Engine().SeedDemo(ctx); err != nil {
				return err
			}
			fmt.Printf("%s Demo data seeded\n", okMark)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML fixture file")

	return cmd
}

// ResetCmd returns the reset command.
func ResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every collection and storage key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset wipes all data; re-run with --force")
			}
			if err := wire.Engine().Reset(context.Background()); err != nil {
				return err
			}
			fmt.Printf("%s State reset (device identity kept)\n", okMark)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the wipe")

	return cmd
}
