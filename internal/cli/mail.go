package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/wire"
)

// MailCmd returns the mail command.
func MailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Account-to-account messages",
		Long: `Send and read messages between accounts.

Sending notifies the recipient's role. A message is marked read the
first time it is opened; the timestamp never changes afterwards.`,
	}

	cmd.AddCommand(mailSendCmd())
	cmd.AddCommand(mailListCmd())
	cmd.AddCommand(mailReadCmd())

	return cmd
}

func mailSendCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "send <body>",
		Short: "Send a message to another account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := wire.Engine().SendMessage(context.Background(), to, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s Message sent: %s\n", okMark, msg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient account id")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func mailListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := wire.Engine().CurrentAccount()
			if acc == nil {
				return fmt.Errorf("no active session")
			}

			shown := 0
			for _, msg := range wire.Engine().Messages() {
				if !all && msg.ToAccountID != acc.ID {
					continue
				}
				marker := "✉"
				if msg.ReadAt != 0 {
					marker = okMark
				}
				fmt.Printf("%s %s  from=%s to=%s  %s\n",
					marker, msg.ID, msg.FromAccountID, msg.ToAccountID, truncate(msg.Content, 48))
				shown++
			}
			if shown == 0 {
				fmt.Println("No messages")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every message, not just your inbox")

	return cmd
}

func mailReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-id>",
		Short: "Display a message and mark it read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			for _, msg := range wire.Engine().Messages() {
				if msg.ID != args[0] {
					continue
				}
				fmt.Printf("Message: %s\n", msg.ID)
				fmt.Printf("From: %s\n", msg.FromAccountID)
				fmt.Printf("To: %s\n", msg.ToAccountID)
				fmt.Printf("Date: %s\n", fmtMillis(msg.CreatedAt))
				fmt.Printf("\n%s\n", msg.Content)
				return wire.Engine().MarkMessageRead(ctx, msg.ID)
			}
			return fmt.Errorf("message %s not found", args[0])
		},
	}
}
