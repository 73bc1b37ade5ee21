package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/wire"
)

// ItemCmd returns the item command.
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Inventory items and stock levels",
		Long: `Manage inventory items.

Stock updates derive a band from current vs initial stock. Crossing
into the low band alerts the crew; hitting empty alerts Management too.`,
	}

	cmd.AddCommand(itemAddCmd())
	cmd.AddCommand(itemListCmd())
	cmd.AddCommand(itemStockCmd())
	cmd.AddCommand(itemDeleteCmd())

	return cmd
}

func itemAddCmd() *cobra.Command {
	var description, category string
	var initial, current int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := wire.Engine().AddItem(context.Background(), primary.CreateItemParams{
				Name:         args[0],
				Description:  description,
				Category:     models.ItemCategory(category),
				InitialStock: initial,
				CurrentStock: current,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s Item added: %s (%s)\n", okMark, item.Name, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&category, "category", string(models.CategoryStore), "Item category")
	cmd.Flags().IntVar(&initial, "initial", 0, "Initial (max) stock")
	cmd.Flags().IntVar(&current, "current", 0, "Current stock")

	return cmd
}

func itemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inventory items with their stock bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := wire.Engine().Items()
			if len(items) == 0 {
				fmt.Println("No items")
				return nil
			}
			for _, item := range items {
				fmt.Printf("%s  %-24s %-16s %3d/%-3d %s\n",
					item.ID, item.Name, item.Category,
					item.CurrentStock, item.InitialStock, fmtBand(item))
			}
			return nil
		},
	}
}

func itemStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock <item-id> <current>",
		Short: "Set an item's current stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var current int
			if _, err := fmt.Sscanf(args[1], "%d", &current); err != nil {
				return fmt.Errorf("invalid stock %q", args[1])
			}
			if err := wire.Engine().UpdateStock(context.Background(), args[0], current); err != nil {
				return err
			}
			fmt.Printf("%s Stock updated\n", okMark)
			return nil
		},
	}
}

func itemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Engine().DeleteItem(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Item deleted\n", okMark)
			return nil
		},
	}
}
