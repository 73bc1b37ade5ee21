package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/wire"
)

// NotificationCmd returns the notification command.
func NotificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notification",
		Aliases: []string{"notif"},
		Short:   "The role-targeted notification feed",
		Long: `View the derived notification feed.

Notifications fan out to roles, and read state is role-scoped: once
any account of a role reads one, the whole role sees it as read.`,
	}

	cmd.AddCommand(notificationListCmd())
	cmd.AddCommand(notificationReadCmd())

	return cmd
}

func notificationListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications for your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := wire.Engine().ActiveRole()
			if role == "" {
				role = models.RoleGeneralService
			}

			var notifs []models.AppNotification
			if all {
				notifs = wire.Engine().Notifications()
			} else {
				notifs = wire.Engine().NotificationsFor(role)
			}
			if len(notifs) == 0 {
				fmt.Println("No notifications")
				return nil
			}

			unread := 0
			for _, n := range notifs {
				marker := "•"
				if n.ReadByRole(role) {
					marker = " "
				} else {
					unread++
				}
				fmt.Printf("%s %s  [%s] %s  %s\n", marker, n.ID, n.Type, n.Title, fmtMillis(n.CreatedAt))
				if n.Body != "" {
					fmt.Printf("    %s\n", truncate(n.Body, 72))
				}
			}
			fmt.Printf("\nTotal: %d (%d unread for %s)\n", len(notifs), unread, role)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show the whole feed, not just your role")

	return cmd
}

func notificationReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification read for your role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().MarkNotificationRead(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Marked read\n", okMark)
			return nil
		},
	}
}
