package repository

import (
	"context"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	// ListItems returns items matching the filter, ordered by ascending id
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)

	// GetItemByID retrieves an item, or domain.ErrItemNotFound
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)

	// InsertItem creates an item and returns its generated id.
	// Returns domain.ErrItemNameTaken on duplicate name.
	InsertItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (int, error)

	// DeleteItemCascade removes the item and, in the same transaction, all
	// inventory entries holding it and their enchantment links.
	// Returns domain.ErrItemNotFound if the item is absent.
	DeleteItemCascade(ctx context.Context, itemID int) error
}

// Enchantment defines the interface for enchantment catalog persistence
type Enchantment interface {
	// ListEnchantments returns all enchantments ordered by ascending id
	ListEnchantments(ctx context.Context) ([]domain.Enchantment, error)

	// GetEnchantmentByID retrieves an enchantment, or domain.ErrEnchantmentNotFound
	GetEnchantmentByID(ctx context.Context, enchantmentID int) (*domain.Enchantment, error)

	// InsertEnchantment creates an enchantment and returns its generated id.
	// Returns domain.ErrEnchantmentNameTaken on duplicate name.
	InsertEnchantment(ctx context.Context, name, effectDescription string) (int, error)

	// UpdateEffectDescription overwrites the description and refreshes the
	// modification timestamp. Returns domain.ErrEnchantmentNotFound if absent.
	UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) error

	// DeleteEnchantmentCascade removes the enchantment and, in the same
	// transaction, every enchantment link referencing it.
	// Returns domain.ErrEnchantmentNotFound if absent.
	DeleteEnchantmentCascade(ctx context.Context, enchantmentID int) error
}
