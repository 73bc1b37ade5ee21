package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// ChoreCmd returns the chore command.
func ChoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chore",
		Short: "Shared chores and point awards",
		Long: `Create and complete chores.

Completing a chore awards its points to the current account and may
unlock prizes. Un-completing never takes points back.`,
	}

	cmd.AddCommand(choreAddCmd())
	cmd.AddCommand(choreListCmd())
	cmd.AddCommand(choreToggleCmd())

	return cmd
}

func choreAddCmd() *cobra.Command {
	var description, audience string
	var points int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chore, err := wire.Engine().CreateChore(context.Background(), primary.CreateChoreParams{
				Title:       args[0],
				Description: description,
				Audience:    models.ChoreAudience(audience),
				Points:      points,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Chore created: %s (%s)\n", okMark, chore.Title, chore.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Chore description")
	cmd.Flags().StringVar(&audience, "audience", string(models.AudienceCrew), "Audience (Crew or Management)")
	cmd.Flags().IntVar(&points, "points", 1, "Points awarded on completion")

	return cmd
}

func choreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chores := wire.Engine().Chores()
			if len(chores) == 0 {
				fmt.Println("No chores")
				return nil
			}
			acc := wire.Engine().CurrentAccount()
			for _, chore := range chores {
				mark := " "
				if acc != nil && chore.CompletedBy(acc.ID) {
					mark = okMark
				}
				fmt.Printf("%s %s  %-32s %-10s %2d pts  done by %d\n",
					mark, chore.ID, truncate(chore.Title, 32), chore.Audience,
					chore.Points, len(chore.CompletedByAccountIDs))
			}
			return nil
		},
	}
}

func choreToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <chore-id>",
		Short: "Toggle your completion of a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().ToggleChoreComplete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Chore toggled\n", okMark)
			return nil
		},
	}
}
