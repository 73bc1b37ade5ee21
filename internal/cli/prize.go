package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// PrizeCmd returns the prize command.
func PrizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prize",
		Short: "Prize definitions, awards and gifting",
		Long: `Manage the prize ladder.

Definitions unlock at a progress threshold; awards are created
automatically when an account crosses it. An award can be gifted to
another account with a delivery delay.`,
	}

	cmd.AddCommand(prizeAddCmd())
	cmd.AddCommand(prizeListCmd())
	cmd.AddCommand(prizeAwardsCmd())
	cmd.AddCommand(prizeGiftCmd())

	return cmd
}

func prizeAddCmd() *cobra.Command {
	var description, category string
	var unlock int
	var hidden bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a prize definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := wire.Engine().CreatePrizeDef(context.Background(), primary.CreatePrizeDefParams{
				Name:         args[0],
				Description:  description,
				Category:     category,
				UnlockAmount: unlock,
				IsHidden:     hidden,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Prize created: %s (unlocks at %d points)\n", okMark, def.Name, def.UnlockAmount)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Prize description")
	cmd.Flags().StringVar(&category, "category", "", "Prize category")
	cmd.Flags().IntVar(&unlock, "unlock", 0, "Progress threshold")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Hide the threshold from employees")

	return cmd
}

func prizeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List prize definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := wire.Engine().PrizeDefs()
			if len(defs) == 0 {
				fmt.Println("No prizes")
				return nil
			}
			for _, def := range defs {
				line := fmt.Sprintf("%s  %-24s unlocks at %3d", def.ID, def.Name, def.UnlockAmount)
				if def.IsHidden {
					line += "  (hidden)"
				}
				if !def.Active {
					line += "  (inactive)"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func prizeAwardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "awards",
		Short: "List awarded prizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			awards := wire.Engine().EmployeePrizes()
			if len(awards) == 0 {
				fmt.Println("No awards")
				return nil
			}
			for _, a := range awards {
				line := fmt.Sprintf("%s  prize=%s owner=%s unlocked %s",
					a.ID, a.PrizeID, a.OwnerAccountID, fmtMillis(a.UnlockedAt))
				if a.GiftedToAccountID != "" {
					line += fmt.Sprintf("  %s gift to %s at %s", warnMark, a.GiftedToAccountID, fmtMillis(a.DeliveryAt))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func prizeGiftCmd() *cobra.Command {
	var inHours int

	cmd := &cobra.Command{
		Use:   "gift <award-id> <to-account-id>",
		Short: "Gift an awarded prize to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deliveryAt := time.Now().Add(time.Duration(inHours) * time.Hour).UnixMilli()
			if err := wire.Engine().GiftPrize(context.Background(), args[0], args[1], deliveryAt); err != nil {
				return err
			}
			fmt.Printf("%s Gift scheduled for %s\n", okMark, fmtMillis(deliveryAt))
			return nil
		},
	}

	cmd.Flags().IntVar(&inHours, "in-hours", 0, "Deliver after this many hours (0 = now)")

	return cmd
}
