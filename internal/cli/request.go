package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// RequestCmd returns the request command.
func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Restock requests",
		Long: `File and manage restock requests.

New requests notify Management; approvals and denials notify the crew.
Approving with --days/--hours records the expected delivery time.`,
	}

	cmd.AddCommand(requestCreateCmd())
	cmd.AddCommand(requestListCmd())
	cmd.AddCommand(requestApproveCmd())
	cmd.AddCommand(requestDenyCmd())
	cmd.AddCommand(requestCancelCmd())
	cmd.AddCommand(requestDeleteCmd())

	return cmd
}

func requestCreateCmd() *cobra.Command {
	var immediate bool

	cmd := &cobra.Command{
		Use:   "create <item-id> <quantity>",
		Short: "File a restock request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			req, err := wire.Engine().CreateRequest(context.Background(), primary.CreateRequestParams{
				ItemID: args[0], Quantity: qty, Immediate: immediate,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Request filed: %s\n", okMark, req.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&immediate, "immediate", false, "Mark the request immediate")

	return cmd
}

func requestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List restock requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := wire.Engine().Requests()
			if len(reqs) == 0 {
				fmt.Println("No requests")
				return nil
			}
			for _, req := range reqs {
				line := fmt.Sprintf("%s  item=%s qty=%d %s", req.ID, req.ItemID, req.Quantity, req.Status)
				if req.Immediate {
					line += " " + warnMark + " immediate"
				}
				if req.ExpectedDeliveryAt != 0 {
					line += "  eta " + fmtMillis(req.ExpectedDeliveryAt)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func requestApproveCmd() *cobra.Command {
	var days, hours int

	cmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a request with an optional delivery ETA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Engine().ApproveRequest(context.Background(), args[0], primary.ETA{Days: days, Hours: hours})
			if err != nil {
				return err
			}
			fmt.Printf("%s Request approved\n", okMark)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Delivery ETA days")
	cmd.Flags().IntVar(&hours, "hours", 0, "Delivery ETA hours")

	return cmd
}

func requestDenyCmd() *cobra.Command {
	return requestStatusCmd("deny", "Deny a request", func(ctx context.Context, id string) error {
		return wire.Engine().DenyRequest(ctx, id)
	})
}

func requestCancelCmd() *cobra.Command {
	return requestStatusCmd("cancel", "Cancel a request", func(ctx context.Context, id string) error {
		return wire.Engine().CancelRequest(ctx, id)
	})
}

func requestDeleteCmd() *cobra.Command {
	return requestStatusCmd("delete", "Delete a request", func(ctx context.Context, id string) error {
		return wire.Engine().DeleteRequest(ctx, id)
	})
}

func requestStatusCmd(verb, short string, run func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <request-id>",
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
