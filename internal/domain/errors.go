package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgUsernameTaken   = "username already exists"
	ErrMsgInvalidUsername = "username must not be empty"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgItemNameTaken   = "item name already exists"
	ErrMsgInvalidItemType = "invalid item type"
	ErrMsgInvalidRarity   = "invalid rarity"

	// Enchantment errors
	ErrMsgEnchantmentNotFound  = "enchantment not found"
	ErrMsgEnchantmentNameTaken = "enchantment name already exists"
	ErrMsgInvalidDescription   = "effect description must be 1-250 characters"

	// Inventory errors
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "quantity must be positive"

	// Database/System errors
	ErrMsgTxConflict = "transaction conflict"
	ErrMsgTxClosed   = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrUsernameTaken   = errors.New(ErrMsgUsernameTaken)
	ErrInvalidUsername = errors.New(ErrMsgInvalidUsername)

	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemNameTaken   = errors.New(ErrMsgItemNameTaken)
	ErrInvalidItemType = errors.New(ErrMsgInvalidItemType)
	ErrInvalidRarity   = errors.New(ErrMsgInvalidRarity)

	// Enchantment errors
	ErrEnchantmentNotFound  = errors.New(ErrMsgEnchantmentNotFound)
	ErrEnchantmentNameTaken = errors.New(ErrMsgEnchantmentNameTaken)
	ErrInvalidDescription   = errors.New(ErrMsgInvalidDescription)

	// Inventory errors
	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	// Transient write-write conflict surfaced after retries are exhausted
	ErrTxConflict = errors.New(ErrMsgTxConflict)
)
