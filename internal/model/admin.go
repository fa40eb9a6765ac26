package model

// Admin catalog records. The write payloads carry validation tags so the
// client can reject bad form input before any request is issued.

// EquipmentItem is one equipment catalog record
type EquipmentItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slot        string  `json:"slot"`
	Rarity      string  `json:"rarity"`
	Cosmetic    bool    `json:"cosmetic"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// EquipmentItemInput is the create/update payload for equipment
type EquipmentItemInput struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Slot        string  `json:"slot" validate:"required,oneof=head chest legs weapon trinket misc"`
	Rarity      string  `json:"rarity" validate:"required,oneof=common uncommon rare epic legendary seasonal"`
	Cosmetic    bool    `json:"cosmetic"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// PlantTypeInput is the create/update payload for plant types
type PlantTypeInput struct {
	Name               string  `json:"name" validate:"required,max=128"`
	Description        *string `json:"description,omitempty"`
	GrowthSeconds      int     `json:"growth_seconds" validate:"gte=1"`
	XPReward           int     `json:"xp_reward" validate:"gte=0"`
	EnergyCost         int     `json:"energy_cost" validate:"gte=0"`
	SeedCost           int     `json:"seed_cost" validate:"gte=0"`
	SellPrice          int     `json:"sell_price" validate:"gte=0"`
	UnlockLevel        int     `json:"unlock_level" validate:"gte=1"`
	UnlockFarmingLevel int     `json:"unlock_farming_level" validate:"gte=1"`
	Icon               *string `json:"icon,omitempty"`
}

// QuestChoiceInput is one choice of a quest node payload
type QuestChoiceInput struct {
	ID           string  `json:"id" validate:"required"`
	Label        string  `json:"label" validate:"required"`
	NextNodeID   *string `json:"next_node_id,omitempty"`
	RewardXP     int     `json:"reward_xp" validate:"gte=0"`
	RewardItemID *int    `json:"reward_item_id,omitempty"`
}

// QuestNodeInput is one node of a quest payload
type QuestNodeInput struct {
	ID      string             `json:"id" validate:"required"`
	Title   string             `json:"title" validate:"required"`
	Body    string             `json:"body" validate:"required"`
	IsStart bool               `json:"is_start"`
	IsFinal bool               `json:"is_final"`
	Choices []QuestChoiceInput `json:"choices" validate:"dive"`
}

// QuestInput is the full create/replace payload for a quest
type QuestInput struct {
	Title        string           `json:"title" validate:"required,max=256"`
	Description  *string          `json:"description,omitempty"`
	IsRepeatable bool             `json:"is_repeatable"`
	Nodes        []QuestNodeInput `json:"nodes" validate:"min=1,dive"`
}

// AdminQuestChoice is a stored quest choice as the backend returns it
type AdminQuestChoice struct {
	ID           string  `json:"id"`
	NodeID       string  `json:"node_id"`
	Label        string  `json:"label"`
	NextNodeID   *string `json:"next_node_id"`
	RewardXP     int     `json:"reward_xp"`
	RewardItemID *int    `json:"reward_item_id"`
}

// AdminQuestNode is a stored quest node as the backend returns it
type AdminQuestNode struct {
	ID      string             `json:"id"`
	QuestID int                `json:"quest_id"`
	Title   string             `json:"title"`
	Body    string             `json:"body"`
	IsStart bool               `json:"is_start"`
	IsFinal bool               `json:"is_final"`
	Choices []AdminQuestChoice `json:"choices"`
}

// Quest is a stored quest with its node graph
type Quest struct {
	ID           int              `json:"id"`
	Title        string           `json:"title"`
	Description  *string          `json:"description"`
	IsRepeatable bool             `json:"is_repeatable"`
	Nodes        []AdminQuestNode `json:"nodes"`
}
