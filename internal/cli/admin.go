package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/model"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Content editor commands (admin accounts only)",
	}

	cmd.AddCommand(newAdminEquipmentCmd())
	cmd.AddCommand(newAdminPlantsCmd())
	cmd.AddCommand(newAdminQuestsCmd())

	return cmd
}

func equipmentFlags(cmd *cobra.Command, in *model.EquipmentItemInput, description, icon *string) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&in.Slot, "slot", "misc", "Slot: head, chest, legs, weapon, trinket, misc")
	cmd.Flags().StringVar(&in.Rarity, "rarity", "common", "Rarity: common, uncommon, rare, epic, legendary, seasonal")
	cmd.Flags().BoolVar(&in.Cosmetic, "cosmetic", false, "Cosmetic item")
	cmd.Flags().StringVar(description, "description", "", "Description")
	cmd.Flags().StringVar(icon, "icon", "", "Icon")
	_ = cmd.MarkFlagRequired("name")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newAdminEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Equipment catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.admin.ListEquipment(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Print(items)
			return nil
		},
	})

	var createIn model.EquipmentItemInput
	var createDesc, createIcon string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an equipment item",
		RunE: func(cmd *cobra.Command, args []string) error {
			createIn.Description = optional(createDesc)
			createIn.Icon = optional(createIcon)
			item, err := a.admin.CreateEquipment(cmd.Context(), createIn)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Created equipment #%d.", item.ID))
			return nil
		},
	}
	equipmentFlags(createCmd, &createIn, &createDesc, &createIcon)
	cmd.AddCommand(createCmd)

	var updateIn model.EquipmentItemInput
	var updateDesc, updateIcon string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an equipment item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid equipment id: %w", err)
			}
			updateIn.Description = optional(updateDesc)
			updateIn.Icon = optional(updateIcon)
			item, err := a.admin.UpdateEquipment(cmd.Context(), id, updateIn)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Updated equipment #%d.", item.ID))
			return nil
		},
	}
	equipmentFlags(updateCmd, &updateIn, &updateDesc, &updateIcon)
	cmd.AddCommand(updateCmd)

	return cmd
}

func plantFlags(cmd *cobra.Command, in *model.PlantTypeInput, description, icon *string) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Plant name (required)")
	cmd.Flags().StringVar(description, "description", "", "Description")
	cmd.Flags().IntVar(&in.GrowthSeconds, "growth-seconds", 600, "Seconds until harvestable")
	cmd.Flags().IntVar(&in.XPReward, "xp-reward", 15, "Farming XP granted on harvest")
	cmd.Flags().IntVar(&in.EnergyCost, "energy-cost", 2, "Energy cost to plant")
	cmd.Flags().IntVar(&in.SeedCost, "seed-cost", 0, "Gold cost of the seed")
	cmd.Flags().IntVar(&in.SellPrice, "sell-price", 0, "Gold granted on harvest")
	cmd.Flags().IntVar(&in.UnlockLevel, "unlock-level", 1, "Player level requirement")
	cmd.Flags().IntVar(&in.UnlockFarmingLevel, "unlock-farming-level", 1, "Farming level requirement")
	cmd.Flags().StringVar(icon, "icon", "", "Icon")
	_ = cmd.MarkFlagRequired("name")
}

func newAdminPlantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plants",
		Short: "Plant catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plant types",
		RunE: func(cmd *cobra.Command, args []string) error {
			plants, err := a.admin.ListPlants(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Print(plants)
			return nil
		},
	})

	var createIn model.PlantTypeInput
	var createDesc, createIcon string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plant type",
		RunE: func(cmd *cobra.Command, args []string) error {
			createIn.Description = optional(createDesc)
			createIn.Icon = optional(createIcon)
			plant, err := a.admin.CreatePlant(cmd.Context(), createIn)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Created plant #%d.", plant.ID))
			return nil
		},
	}
	plantFlags(createCmd, &createIn, &createDesc, &createIcon)
	cmd.AddCommand(createCmd)

	var updateIn model.PlantTypeInput
	var updateDesc, updateIcon string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a plant type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plant id: %w", err)
			}
			updateIn.Description = optional(updateDesc)
			updateIn.Icon = optional(updateIcon)
			plant, err := a.admin.UpdatePlant(cmd.Context(), id, updateIn)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Updated plant #%d.", plant.ID))
			return nil
		},
	}
	plantFlags(updateCmd, &updateIn, &updateDesc, &updateIcon)
	cmd.AddCommand(updateCmd)

	return cmd
}

// readQuestFile loads a quest node graph from a JSON file; the graph is too
// nested to express as flags.
func readQuestFile(path string) (model.QuestInput, error) {
	var in model.QuestInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, err
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("invalid quest file: %w", err)
	}
	return in, nil
}

func newAdminQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Quest catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			quests, err := a.admin.ListQuests(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Print(quests)
			return nil
		},
	})

	var createFile string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a quest from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readQuestFile(createFile)
			if err != nil {
				return err
			}
			quest, err := a.admin.CreateQuest(cmd.Context(), in)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Created quest #%d.", quest.ID))
			return nil
		},
	}
	createCmd.Flags().StringVar(&createFile, "file", "", "Quest JSON file (required)")
	_ = createCmd.MarkFlagRequired("file")
	cmd.AddCommand(createCmd)

	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a quest from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid quest id: %w", err)
			}
			in, err := readQuestFile(updateFile)
			if err != nil {
				return err
			}
			quest, err := a.admin.UpdateQuest(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			a.out.PrintMessage(fmt.Sprintf("Updated quest #%d.", quest.ID))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updateFile, "file", "", "Quest JSON file (required)")
	_ = updateCmd.MarkFlagRequired("file")
	cmd.AddCommand(updateCmd)

	return cmd
}
