package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// ScheduleCmd returns the schedule command.
func ScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Weekly schedules and switch requests",
		Long: `View and edit weekly schedules, and propose day switches.

Switch requests go to Management for approval. Completing an approved
switch marks the exchange done; the schedules themselves are edited
separately.`,
	}

	cmd.AddCommand(scheduleShowCmd())
	cmd.AddCommand(scheduleSetDayCmd())
	cmd.AddCommand(scheduleSwitchCmd())

	return cmd
}

func scheduleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current account's weekly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := wire.Engine().CurrentAccount()
			if acc == nil {
				return fmt.Errorf("no active session")
			}
			fmt.Printf("Schedule for %s\n", acc.Name)
			for _, day := range models.DayKeys() {
				hours := acc.Schedule[day]
				if hours.Off {
					fmt.Printf("  %s  off\n", day)
				} else {
					fmt.Printf("  %s  %s-%s\n", day, hours.Start, hours.End)
				}
			}
			return nil
		},
	}
}

func scheduleSetDayCmd() *cobra.Command {
	var start, end string
	var off bool

	cmd := &cobra.Command{
		Use:   "set-day <day>",
		Short: "Edit one weekday of the current account's schedule",
		Long: `Edit a single weekday. Days are Mon..Sun.

Examples:
  crewdeck schedule set-day Sat --start 10:00 --end 14:00
  crewdeck schedule set-day Wed --off`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := wire.Engine().CurrentAccount()
			if acc == nil {
				return fmt.Errorf("no active session")
			}

			day := models.DayKey(args[0])
			schedule := models.DefaultSchedule()
			for k, v := range acc.Schedule {
				schedule[k] = v
			}
			current, ok := schedule[day]
			if !ok {
				return fmt.Errorf("unknown day %q (use Mon..Sun)", args[0])
			}

			if start != "" {
				current.Start = start
			}
			if end != "" {
				current.End = end
			}
			current.Off = off
			schedule[day] = current

			if err := wire.Engine().SetSchedule(context.Background(), acc.ID, schedule); err != nil {
				return err
			}
			fmt.Printf("%s Schedule updated\n", okMark)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Shift start (HH:mm)")
	cmd.Flags().StringVar(&end, "end", "", "Shift end (HH:mm)")
	cmd.Flags().BoolVar(&off, "off", false, "Mark the day off")

	return cmd
}

func scheduleSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Schedule switch requests",
	}

	cmd.AddCommand(switchCreateCmd())
	cmd.AddCommand(switchListCmd())
	cmd.AddCommand(switchStatusCmd("approve", "Approve a switch request", func(ctx context.Context, id string) error {
		return wire.Engine().ApproveSwitch(ctx, id)
	}))
	cmd.AddCommand(switchStatusCmd("deny", "Deny a switch request", func(ctx context.Context, id string) error {
		return wire.Engine().DenySwitch(ctx, id)
	}))
	cmd.AddCommand(switchStatusCmd("cancel", "Cancel a switch request", func(ctx context.Context, id string) error {
		return wire.Engine().CancelSwitch(ctx, id)
	}))
	cmd.AddCommand(switchStatusCmd("complete", "Mark a switch request completed", func(ctx context.Context, id string) error {
		return wire.Engine().CompleteSwitch(ctx, id)
	}))

	return cmd
}

func switchCreateCmd() *cobra.Command {
	var partner, note, kind string

	cmd := &cobra.Command{
		Use:   "create <date>",
		Short: "Propose a switch for an ISO date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := wire.Engine().CreateSwitchRequest(context.Background(), primary.CreateSwitchRequestParams{
				PartnerID: partner,
				Date:      args[0],
				Type:      models.SwitchType(kind),
				Note:      note,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Switch proposed: %s\n", okMark, req.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&partner, "partner", "", "Partner account id")
	cmd.Flags().StringVar(&note, "note", "", "Reason for the switch")
	cmd.Flags().StringVar(&kind, "type", string(models.SwitchOff), "Switch type (work or off)")

	return cmd
}

func switchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List switch requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := wire.Engine().SwitchRequests()
			if len(reqs) == 0 {
				fmt.Println("No switch requests")
				return nil
			}
			for _, req := range reqs {
				fmt.Printf("%s  %s %s by %s  %s\n",
					req.ID, req.Date, req.Type, req.RequesterID, req.Status)
			}
			return nil
		},
	}
}

func switchStatusCmd(verb, short string, run func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <switch-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Done\n", okMark)
			return nil
		},
	}
}
