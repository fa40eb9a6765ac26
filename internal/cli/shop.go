package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/client"
)

// msgNotEnoughGold is the exact message shown for insufficient-funds
// purchases, whatever the raw backend body said.
const msgNotEnoughGold = "Not enough gold to complete this purchase. Earn more gold and try again."

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Shop commands",
	}

	cmd.AddCommand(newShopListCmd())
	cmd.AddCommand(newShopBuyCmd())

	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show wallet and current offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			snapshot, err := a.shop.Fetch(cmd.Context(), playerID)
			if err != nil {
				return err
			}

			a.out.Print(snapshot)
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <offer-id>",
		Short: "Purchase a shop offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			offerID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid offer id: %w", err)
			}

			if _, err := a.shop.Buy(cmd.Context(), playerID, offerID); err != nil {
				if client.IsInsufficientFunds(err) {
					return fmt.Errorf("%s", msgNotEnoughGold)
				}
				return err
			}

			a.out.PrintMessage("Purchase complete.")

			// Refetch so ownership flags and the offer list stay current
			snapshot, err := a.shop.Fetch(cmd.Context(), playerID)
			if err != nil {
				return err
			}
			a.out.Print(snapshot)
			return nil
		},
	}
}
