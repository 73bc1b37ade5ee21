package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/app"
	"github.com/example/crewdeck/internal/wire"
)

// SweepCmd returns the sweep command.
func SweepCmd() *cobra.Command {
	var daemon bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the time-driven transitions",
		Long: `Expire elapsed break and lunch statuses and deliver due gifts.

One pass by default; --daemon keeps sweeping on the configured
interval until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if daemon {
				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				fmt.Printf("Sweeping every %s, Ctrl-C to stop\n", wire.Cfg().SweepInterval())
				app.NewSweeper(wire.Engine(), wire.Cfg().SweepInterval()).Run(ctx)
				return nil
			}

			expired := wire.Engine().ExpireStatuses(ctx)
			delivered := wire.Engine().DeliverDueGifts(ctx)
			fmt.Printf("%s Sweep done: %d statuses expired, %d gifts delivered\n", okMark, expired, delivered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "Keep sweeping until interrupted")

	return cmd
}
