package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// ObjectiveCmd returns the objective command.
func ObjectiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Role-assigned objectives with optional approval",
		Long: `Create, complete and approve objectives.

Objectives move open -> completed -> approved. Completion awards points
to the completer; approval is Management-only and awards the approver.`,
	}

	cmd.AddCommand(objectiveAddCmd())
	cmd.AddCommand(objectiveListCmd())
	cmd.AddCommand(objectiveToggleCmd())
	cmd.AddCommand(objectiveApproveCmd())

	return cmd
}

func objectiveAddCmd() *cobra.Command {
	var description, role string
	var points int
	var requiresApproval bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create an objective for a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assigned, err := parseRole(role)
			if err != nil {
				return err
			}
			obj, err := wire.Engine().CreateObjective(context.Background(), primary.CreateObjectiveParams{
				Title:            args[0],
				Description:      description,
				Points:           points,
				AssignedToRole:   assigned,
				RequiresApproval: requiresApproval,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Objective created: %s (%s)\n", okMark, obj.Title, obj.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Objective description")
	cmd.Flags().StringVar(&role, "role", "", "Assigned role")
	cmd.Flags().IntVar(&points, "points", 1, "Points awarded on completion")
	cmd.Flags().BoolVar(&requiresApproval, "requires-approval", false, "Require Management approval")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func objectiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			objectives := wire.Engine().Objectives()
			if len(objectives) == 0 {
				fmt.Println("No objectives")
				return nil
			}
			for _, obj := range objectives {
				fmt.Printf("%s  %-32s %-18s %2d pts  %s\n",
					obj.ID, truncate(obj.Title, 32), obj.AssignedToRole, obj.Points, obj.Status)
			}
			return nil
		},
	}
}

func objectiveToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <objective-id>",
		Short: "Toggle your completion of an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().ToggleObjectiveComplete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Objective toggled\n", okMark)
			return nil
		},
	}
}

func objectiveApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <objective-id>",
		Short: "Approve a completed objective (Management only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().ApproveObjective(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Objective approved\n", okMark)
			return nil
		},
	}
}
