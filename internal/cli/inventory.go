package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/model"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the full inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			items, err := a.inventory.Fetch(cmd.Context(), playerID)
			if err != nil {
				return err
			}

			a.out.Print(items)
			return nil
		},
	})

	cmd.AddCommand(newInventoryMutationCmd("equip", "Equip an item"))
	cmd.AddCommand(newInventoryMutationCmd("unequip", "Unequip an item"))

	return cmd
}

func newInventoryMutationCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <item-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			itemID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id: %w", err)
			}

			var items []model.InventoryItem
			if op == "equip" {
				items, err = a.inventory.Equip(cmd.Context(), playerID, itemID)
			} else {
				items, err = a.inventory.Unequip(cmd.Context(), playerID, itemID)
			}
			if err != nil {
				return err
			}

			a.out.Print(items)
			return nil
		},
	}
}
