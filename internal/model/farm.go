package model

import "time"

// PlantType is one entry of the plant catalog
type PlantType struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	GrowthSeconds      int     `json:"growth_seconds"`
	XPReward           int     `json:"xp_reward"`
	EnergyCost         int     `json:"energy_cost"`
	SeedCost           int     `json:"seed_cost"`
	SellPrice          int     `json:"sell_price"`
	UnlockLevel        int     `json:"unlock_level"`
	UnlockFarmingLevel int     `json:"unlock_farming_level"`
	Icon               *string `json:"icon"`
	IsUnlocked         bool    `json:"is_unlocked"`
}

// PlantedCrop is a crop occupying a plot
type PlantedCrop struct {
	ID        int       `json:"id"`
	PlantType PlantType `json:"plant_type"`
	PlantedAt time.Time `json:"planted_at"`
	ReadyAt   time.Time `json:"ready_at"`
	State     string    `json:"state"`
}

// Ready derives harvest readiness from the server-supplied ready timestamp.
// The client never asserts readiness on its own.
func (c *PlantedCrop) Ready(now time.Time) bool {
	return !now.Before(c.ReadyAt)
}

// FarmPlot is a fixed farm slot, either locked or holding at most one crop
type FarmPlot struct {
	ID                            int          `json:"id"`
	SlotIndex                     int          `json:"slot_index"`
	Unlocked                      bool         `json:"unlocked"`
	UnlockCost                    int          `json:"unlock_cost"`
	UnlockLevelRequirement        int          `json:"unlock_level_requirement"`
	UnlockFarmingLevelRequirement int          `json:"unlock_farming_level_requirement"`
	Crop                          *PlantedCrop `json:"crop"`
}

// FarmingTool is the player's current tool state
type FarmingTool struct {
	Level        int    `json:"level"`
	Name         string `json:"name"`
	BonusPercent int    `json:"bonus_percent"`
}

// FarmingStats holds farm-scoped progression and energy
type FarmingStats struct {
	Level              int         `json:"level"`
	XP                 int         `json:"xp"`
	XPToNextLevel      int         `json:"xp_to_next_level"`
	Energy             int         `json:"energy"`
	MaxEnergy          int         `json:"max_energy"`
	Tool               FarmingTool `json:"tool"`
	StarterSeedCharges int         `json:"starter_seed_charges"`
}

// FarmSnapshot is the wholesale farm state returned by the backend
type FarmSnapshot struct {
	PlayerID        int          `json:"player_id"`
	Stats           FarmingStats `json:"stats"`
	Plots           []FarmPlot   `json:"plots"`
	AvailablePlants []PlantType  `json:"available_plants"`
	WalletGold      int          `json:"wallet_gold"`
}

// PlantCropRequest is the payload for POST /farm/{id}/plant
type PlantCropRequest struct {
	PlotID      int `json:"plot_id"`
	PlantTypeID int `json:"plant_type_id"`
}

// HarvestCropRequest is the payload for POST /farm/{id}/harvest
type HarvestCropRequest struct {
	PlotID int `json:"plot_id"`
}

// RefillEnergyRequest is the payload for POST /farm/{id}/energy/refill
type RefillEnergyRequest struct {
	Amount int `json:"amount"`
}

// FarmActionResponse wraps the new farm state every farm action returns
type FarmActionResponse struct {
	State   FarmSnapshot `json:"state"`
	Message string       `json:"message"`
}
