package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/logger"
	"github.com/meganrobin/Item-Management-API/internal/metrics"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

// Service defines the interface for inventory operations
type Service interface {
	GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error)
	AddItem(ctx context.Context, playerID, itemID, quantity int) (int, error)
	RemoveItem(ctx context.Context, playerID, itemID, quantity int) (int, error)
	EnchantItem(ctx context.Context, playerID, itemID, enchantmentID int) (bool, error)
	RemoveEnchantments(ctx context.Context, playerID, itemID int) (int64, error)
}

// service implements the Service interface
type service struct {
	players      repository.Player
	items        repository.Item
	enchantments repository.Enchantment
	inventory    repository.Inventory
}

// NewService creates a new inventory service
func NewService(players repository.Player, items repository.Item, enchantments repository.Enchantment, inventory repository.Inventory) Service {
	return &service{
		players:      players,
		items:        items,
		enchantments: enchantments,
		inventory:    inventory,
	}
}

// GetInventory returns a player's inventory, most plentiful items first
func (s *service) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error) {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	return s.inventory.GetInventory(ctx, playerID)
}

// AddItem grants quantity units of an item to a player, creating the
// inventory entry or incrementing an existing one. Returns the resulting
// quantity.
func (s *service) AddItem(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return 0, err
	}
	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		return 0, err
	}

	var newQuantity int
	err := s.withTx(ctx, repository.IsolationDefault, "add_item", func(tx repository.InventoryTx) error {
		var err error
		newQuantity, err = tx.UpsertEntryAdd(ctx, playerID, itemID, quantity)
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.ItemsAdded.Add(float64(quantity))
	log.Info(logMsgItemAdded, "playerID", playerID, "itemID", itemID, "quantity", quantity, "newQuantity", newQuantity)
	return newQuantity, nil
}

// RemoveItem takes quantity units of an item from a player. Removing the
// final unit deletes the entry along with its enchantments. Returns the
// remaining quantity.
func (s *service) RemoveItem(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return 0, err
	}

	var remaining int
	err := s.withTx(ctx, repository.IsolationStrict, "remove_item", func(tx repository.InventoryTx) error {
		entry, err := tx.GetEntryForUpdate(ctx, playerID, itemID)
		if err != nil {
			return err
		}
		if entry.Quantity < quantity {
			return domain.ErrInsufficientQuantity
		}
		if entry.Quantity == quantity {
			remaining = 0
			return tx.DeleteEntry(ctx, entry.ID)
		}
		remaining, err = tx.DecrementEntry(ctx, entry.ID, quantity)
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.ItemsRemoved.Add(float64(quantity))
	log.Info(logMsgItemRemoved, "playerID", playerID, "itemID", itemID, "quantity", quantity, "remaining", remaining)
	return remaining, nil
}

// EnchantItem applies an enchantment to an item a player holds. Returns
// false when the item already carried that enchantment.
func (s *service) EnchantItem(ctx context.Context, playerID, itemID, enchantmentID int) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.requirePlayer(ctx, playerID); err != nil {
		return false, err
	}
	if _, err := s.enchantments.GetEnchantmentByID(ctx, enchantmentID); err != nil {
		return false, err
	}

	var applied bool
	err := s.withTx(ctx, repository.IsolationStrict, "enchant_item", func(tx repository.InventoryTx) error {
		entry, err := tx.GetEntryForUpdate(ctx, playerID, itemID)
		if err != nil {
			return err
		}
		applied, err = tx.AttachEnchantment(ctx, entry.ID, enchantmentID)
		return err
	})
	if err != nil {
		return false, err
	}

	if applied {
		metrics.EnchantsApplied.Inc()
	}
	log.Info(logMsgEnchantApplied, "playerID", playerID, "itemID", itemID, "enchantmentID", enchantmentID, "applied", applied)
	return applied, nil
}

// RemoveEnchantments strips every enchantment from an item a player holds
// and returns how many were removed
func (s *service) RemoveEnchantments(ctx context.Context, playerID, itemID int) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.requirePlayer(ctx, playerID); err != nil {
		return 0, err
	}

	var removed int64
	err := s.withTx(ctx, repository.IsolationStrict, "remove_enchantments", func(tx repository.InventoryTx) error {
		entry, err := tx.GetEntryForUpdate(ctx, playerID, itemID)
		if err != nil {
			return err
		}
		removed, err = tx.DetachEnchantments(ctx, entry.ID)
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.EnchantsCleared.Add(float64(removed))
	log.Info(logMsgEnchantsCleared, "playerID", playerID, "itemID", itemID, "removed", removed)
	return removed, nil
}

// requirePlayer verifies the player exists
func (s *service) requirePlayer(ctx context.Context, playerID int) error {
	exists, err := s.players.PlayerExists(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to check player existence: %w", err)
	}
	if !exists {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// withTx executes an operation within a transaction at the given isolation
// level, retrying a bounded number of times when Postgres reports a
// serialization failure or deadlock
func (s *service) withTx(ctx context.Context, iso repository.Isolation, operation string, fn func(tx repository.InventoryTx) error) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		lastErr = s.runTx(ctx, iso, fn)
		if lastErr == nil || !errors.Is(lastErr, domain.ErrTxConflict) {
			return lastErr
		}
		if attempt < maxTxAttempts {
			metrics.TxRetries.WithLabelValues(operation).Inc()
			log.Warn(logMsgTxRetry, "operation", operation, "attempt", attempt, "error", lastErr)
		}
	}

	return lastErr
}

func (s *service) runTx(ctx context.Context, iso repository.Isolation, fn func(tx repository.InventoryTx) error) error {
	tx, err := s.inventory.BeginTx(ctx, iso)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
