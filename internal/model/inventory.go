package model

// InventoryItem is one item record as the backend presents it to the UI
type InventoryItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slot       string `json:"slot,omitempty"`
	Rarity     string `json:"rarity"`
	Cosmetic   bool   `json:"cosmetic"`
	IsEquipped bool   `json:"is_equipped"`
}

// EquipRequest is the payload for inventory equip and unequip
type EquipRequest struct {
	ItemID int `json:"item_id"`
}

// InventoryMutationResponse is the backend's response to equip/unequip;
// only the returned inventory matters to the client
type InventoryMutationResponse struct {
	Status    string          `json:"status"`
	Inventory []InventoryItem `json:"inventory"`
}
