package repository

import (
	"context"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	// GetInventory lists a player's inventory with enchantment names
	// aggregated per entry, ordered by descending quantity then ascending
	// item name.
	GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error)

	// GetEntry retrieves the entry for (player, item), or domain.ErrNotInInventory
	GetEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error)

	// BeginTx starts a transaction at the requested isolation level
	BeginTx(ctx context.Context, iso Isolation) (InventoryTx, error)
}

// InventoryTx defines the interface for transactional inventory mutations.
// Implementations translate storage-level write-write conflicts into
// domain.ErrTxConflict so callers can retry.
type InventoryTx interface {
	Tx

	// UpsertEntryAdd increments the entry's quantity by the given amount,
	// inserting a fresh entry when none exists. Returns the new total.
	UpsertEntryAdd(ctx context.Context, playerID, itemID, quantity int) (int, error)

	// GetEntryForUpdate locks and returns the entry for (player, item),
	// or domain.ErrNotInInventory
	GetEntryForUpdate(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error)

	// DecrementEntry reduces the entry's quantity in place and returns the
	// remaining quantity
	DecrementEntry(ctx context.Context, entryID, quantity int) (int, error)

	// DeleteEntry removes the entry and its enchantment links
	DeleteEntry(ctx context.Context, entryID int) error

	// AttachEnchantment links an enchantment to an entry. Reports false
	// when the link already existed (idempotent no-op).
	AttachEnchantment(ctx context.Context, entryID, enchantmentID int) (bool, error)

	// DetachEnchantments removes every enchantment link on an entry and
	// returns how many were removed
	DetachEnchantments(ctx context.Context, entryID int) (int64, error)
}
