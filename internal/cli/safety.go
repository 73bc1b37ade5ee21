package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// SafetyCmd returns the safety command.
func SafetyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safety",
		Short: "Safety requirements and verifications",
		Long: `Manage safety requirements.

Creating, verifying and toggling requirements is restricted to the
Safety Personal role. Verification history is append-only.`,
	}

	cmd.AddCommand(safetyAddCmd())
	cmd.AddCommand(safetyListCmd())
	cmd.AddCommand(safetyVerifyCmd())
	cmd.AddCommand(safetyToggleCmd())

	return cmd
}

func safetyAddCmd() *cobra.Command {
	var description, role string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a safety requirement for a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseRole(role)
			if err != nil {
				return err
			}
			req, err := wire.Engine().CreateSafetyRequirement(context.Background(), primary.CreateSafetyRequirementParams{
				Title: args[0], Description: description, TargetRole: target,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Requirement created: %s (%s)\n", okMark, req.Title, req.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Requirement description")
	cmd.Flags().StringVar(&role, "role", "", "Target role")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func safetyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List safety requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := wire.Engine().SafetyRequirements()
			if len(reqs) == 0 {
				fmt.Println("No safety requirements")
				return nil
			}
			for _, req := range reqs {
				line := fmt.Sprintf("%s  %-32s %-18s %d verifications",
					req.ID, truncate(req.Title, 32), req.TargetRole, len(req.Verifications))
				if !req.Active {
					line += "  (inactive)"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func safetyVerifyCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "verify <requirement-id> <account-id>",
		Short: "Record a verification for an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().VerifySafety(context.Background(), args[0], args[1], note); err != nil {
				return err
			}
			fmt.Printf("%s Verification recorded\n", okMark)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Verification note")

	return cmd
}

func safetyToggleCmd() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "toggle <requirement-id>",
		Short: "Set a requirement active or inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().SetSafetyRequirementActive(context.Background(), args[0], active); err != nil {
				return err
			}
			fmt.Printf("%s Requirement updated\n", okMark)
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "Desired active state")

	return cmd
}
