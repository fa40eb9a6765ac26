package model

import "time"

// PlayerProfile is the identity-bound player record attached to a session
type PlayerProfile struct {
	PlayerID         int             `json:"player_id"`
	Username         *string         `json:"username"`
	Level            int             `json:"level"`
	XP               int             `json:"xp"`
	Energy           int             `json:"energy"`
	MaxEnergy        int             `json:"max_energy"`
	Gold             int             `json:"gold"`
	LastDailyClaimAt *time.Time      `json:"last_daily_claim_at"`
	Inventory        []InventoryItem `json:"inventory"`
}

// DashboardPlayer is the stats block of a dashboard snapshot
type DashboardPlayer struct {
	ID            int     `json:"id"`
	Username      *string `json:"username"`
	Level         int     `json:"level"`
	XP            int     `json:"xp"`
	XPToNextLevel int     `json:"xp_to_next_level"`
	Energy        int     `json:"energy"`
	MaxEnergy     int     `json:"max_energy"`
}

// DailyReward describes daily-reward eligibility
type DailyReward struct {
	CanClaim            bool           `json:"can_claim"`
	CooldownSecondsLeft int            `json:"cooldown_seconds_left"`
	PreviewReward       map[string]int `json:"preview_reward"`
}

// RewardPreview summarizes what a quest choice grants
type RewardPreview struct {
	XP       *int    `json:"xp,omitempty"`
	ItemName *string `json:"item_name,omitempty"`
}

// QuestChoice is one selectable option on the current quest node
type QuestChoice struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	NextNodeID    *string        `json:"next_node_id"`
	RewardXP      int            `json:"reward_xp"`
	RewardItemID  *int           `json:"reward_item_id"`
	RewardPreview *RewardPreview `json:"reward_preview,omitempty"`
}

// QuestNode is the current node of the active quest.
// NodeID is nil when no quest is configured for the player.
type QuestNode struct {
	NodeID  *string       `json:"node_id"`
	Title   string        `json:"title"`
	Body    string        `json:"body"`
	IsFinal bool          `json:"is_final"`
	Choices []QuestChoice `json:"choices"`
}

// Milestone is the dashboard's progress-toward-title block
type Milestone struct {
	Label   string `json:"label"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
}

// DashboardSnapshot is the aggregated read-only view of a player.
// It is replaced wholesale on every fetch, never partially patched.
type DashboardSnapshot struct {
	Player           DashboardPlayer `json:"player"`
	Daily            DailyReward     `json:"daily"`
	Quest            QuestNode       `json:"quest"`
	Inventory        []InventoryItem `json:"inventory"`
	InventoryPreview []InventoryItem `json:"inventory_preview"`
	Milestone        Milestone       `json:"milestone"`
}

// ChooseRequest is the payload for POST /player/{id}/quest/choose
type ChooseRequest struct {
	ChoiceID string `json:"choiceId"`
}
