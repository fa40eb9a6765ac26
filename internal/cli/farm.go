package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Farm commands",
	}

	cmd.AddCommand(newFarmShowCmd())
	cmd.AddCommand(newFarmPlantCmd())
	cmd.AddCommand(newFarmHarvestCmd())
	cmd.AddCommand(newFarmUnlockCmd())
	cmd.AddCommand(newFarmUpgradeCmd())
	cmd.AddCommand(newFarmRefillCmd())

	return cmd
}

func newFarmShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the farm: plots, plants, stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			farm, err := a.farm.FetchFarm(cmd.Context(), playerID)
			if err != nil {
				return err
			}

			a.out.Print(farm)
			return nil
		},
	}
}

func newFarmPlantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plant <plot-id> <plant-type-id>",
		Short: "Plant a crop into a plot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot id: %w", err)
			}
			plantTypeID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid plant type id: %w", err)
			}

			resp, err := a.farm.PlantCrop(cmd.Context(), playerID, plotID, plantTypeID)
			if err != nil {
				return err
			}

			a.out.Print(resp)
			return nil
		},
	}
}

func newFarmHarvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest <plot-id>",
		Short: "Harvest the crop in a plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot id: %w", err)
			}

			resp, err := a.farm.HarvestCrop(cmd.Context(), playerID, plotID)
			if err != nil {
				return err
			}

			a.out.Print(resp)
			return nil
		},
	}
}

func newFarmUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <plot-id>",
		Short: "Unlock a locked plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			plotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plot id: %w", err)
			}

			resp, err := a.farm.UnlockPlot(cmd.Context(), playerID, plotID)
			if err != nil {
				return err
			}

			a.out.Print(resp)
			return nil
		},
	}
}

func newFarmUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the farming tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			resp, err := a.farm.UpgradeTool(cmd.Context(), playerID)
			if err != nil {
				return err
			}

			a.out.Print(resp)
			return nil
		},
	}
}

func newFarmRefillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refill <amount>",
		Short: "Refill farm energy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			resp, err := a.farm.RefillEnergy(cmd.Context(), playerID, amount)
			if err != nil {
				return err
			}

			a.out.Print(resp)
			return nil
		},
	}
}
