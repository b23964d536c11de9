package domain

// InventoryEntry is the record of a player owning some quantity of a
// specific item. Quantity is strictly positive; at most one entry exists
// per (player, item) pair. An entry that would reach zero is deleted.
type InventoryEntry struct {
	ID       int `json:"inventory_entry_id"`
	PlayerID int `json:"player_id"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// InventoryRow is one line of a player's inventory listing: the item,
// the owned quantity, and the names of enchantments on that entry.
// Enchantments is always non-nil; empty when the entry carries none.
type InventoryRow struct {
	ItemID       int      `json:"item_id"`
	Name         string   `json:"name"`
	Type         ItemType `json:"item_type"`
	Rarity       Rarity   `json:"rarity"`
	Quantity     int      `json:"quantity"`
	Enchantments []string `json:"enchantments"`
}
