package domain

import "time"

// ItemType classifies a catalog item
type ItemType string

const (
	ItemTypeWeapon   ItemType = "weapon"
	ItemTypeFood     ItemType = "food"
	ItemTypeClothing ItemType = "clothing"
)

// Valid reports whether the item type is one of the known values
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeFood, ItemTypeClothing:
		return true
	}
	return false
}

// Rarity represents how rare a catalog item is
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether the rarity is one of the known values
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Item represents a catalog item definition, independent of any player.
// Items are immutable after creation.
type Item struct {
	ID        int       `json:"item_id"`
	Name      string    `json:"name"`
	Type      ItemType  `json:"item_type"`
	Rarity    Rarity    `json:"rarity"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemFilter restricts ListItems results. Empty fields mean no restriction
// on that column; both filters are conjunctive when supplied.
type ItemFilter struct {
	Type   ItemType
	Rarity Rarity
}
