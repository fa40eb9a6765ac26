package model

// Wallet is the player's shop currency balance
type Wallet struct {
	Gold int `json:"gold"`
	Gems int `json:"gems"`
}

// ShopOffer is one purchasable entry in the shop
type ShopOffer struct {
	OfferID     int     `json:"offer_id"`
	ItemName    string  `json:"item_name"`
	Rarity      string  `json:"rarity"`
	PriceGold   int     `json:"price_gold"`
	ExpiresAt   *string `json:"expires_at"`
	Owned       bool    `json:"owned"`
	IsLimited   bool    `json:"is_limited"`
	Slot        string  `json:"slot"`
	Cosmetic    bool    `json:"cosmetic"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// ShopSnapshot is the response of GET /player/{id}/shop
type ShopSnapshot struct {
	Wallet Wallet      `json:"wallet"`
	Offers []ShopOffer `json:"offers"`
}

// PurchaseRequest is the payload for POST /player/{id}/shop/buy
type PurchaseRequest struct {
	OfferID int `json:"offer_id"`
}

// GrantedItem identifies what a purchase added to the inventory
type GrantedItem struct {
	InventoryItemID int `json:"inventory_item_id"`
	CatalogItemID   int `json:"catalog_item_id"`
}

// PurchaseResponse is the backend's response to a shop purchase
type PurchaseResponse struct {
	Status  string      `json:"status"`
	Wallet  Wallet      `json:"wallet"`
	Granted GrantedItem `json:"granted"`
}
