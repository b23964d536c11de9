package catalog

import (
	"context"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/logger"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

// Service defines the interface for item and enchantment catalog operations
type Service interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	CreateItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID int) error

	ListEnchantments(ctx context.Context) ([]domain.Enchantment, error)
	GetEnchantment(ctx context.Context, enchantmentID int) (*domain.Enchantment, error)
	CreateEnchantment(ctx context.Context, name, effectDescription string) (*domain.Enchantment, error)
	UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) (*domain.Enchantment, error)
	DeleteEnchantment(ctx context.Context, enchantmentID int) error
}

// service implements the Service interface
type service struct {
	items        repository.Item
	enchantments repository.Enchantment
}

// NewService creates a new catalog service
func NewService(items repository.Item, enchantments repository.Enchantment) Service {
	return &service{items: items, enchantments: enchantments}
}

// ListItems returns catalog items matching the filter, oldest first
func (s *service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.ErrInvalidItemType
	}
	if filter.Rarity != "" && !filter.Rarity.Valid() {
		return nil, domain.ErrInvalidRarity
	}

	return s.items.ListItems(ctx, filter)
}

// GetItem returns a single catalog item
func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	return s.items.GetItemByID(ctx, itemID)
}

// CreateItem adds an item to the catalog
func (s *service) CreateItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}
	if !rarity.Valid() {
		return nil, domain.ErrInvalidRarity
	}

	itemID, err := s.items.InsertItem(ctx, name, itemType, rarity)
	if err != nil {
		return nil, err
	}

	log.Info("Item created", "itemID", itemID, "name", name, "type", itemType, "rarity", rarity)
	return s.items.GetItemByID(ctx, itemID)
}

// DeleteItem removes an item from the catalog. Inventory entries holding the
// item and their enchantment links are removed with it.
func (s *service) DeleteItem(ctx context.Context, itemID int) error {
	log := logger.FromContext(ctx)

	if err := s.items.DeleteItemCascade(ctx, itemID); err != nil {
		return err
	}

	log.Info("Item deleted", "itemID", itemID)
	return nil
}

// ListEnchantments returns every enchantment, oldest first
func (s *service) ListEnchantments(ctx context.Context) ([]domain.Enchantment, error) {
	return s.enchantments.ListEnchantments(ctx)
}

// GetEnchantment returns a single enchantment
func (s *service) GetEnchantment(ctx context.Context, enchantmentID int) (*domain.Enchantment, error) {
	return s.enchantments.GetEnchantmentByID(ctx, enchantmentID)
}

// CreateEnchantment adds an enchantment to the catalog
func (s *service) CreateEnchantment(ctx context.Context, name, effectDescription string) (*domain.Enchantment, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidEffectDescription(effectDescription) {
		return nil, domain.ErrInvalidDescription
	}

	enchantmentID, err := s.enchantments.InsertEnchantment(ctx, name, effectDescription)
	if err != nil {
		return nil, err
	}

	log.Info("Enchantment created", "enchantmentID", enchantmentID, "name", name)
	return s.enchantments.GetEnchantmentByID(ctx, enchantmentID)
}

// UpdateEffectDescription replaces an enchantment's effect description and
// returns the refreshed enchantment
func (s *service) UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) (*domain.Enchantment, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidEffectDescription(effectDescription) {
		return nil, domain.ErrInvalidDescription
	}

	if err := s.enchantments.UpdateEffectDescription(ctx, enchantmentID, effectDescription); err != nil {
		return nil, err
	}

	log.Info("Enchantment effect description updated", "enchantmentID", enchantmentID)
	return s.enchantments.GetEnchantmentByID(ctx, enchantmentID)
}

// DeleteEnchantment removes an enchantment. Items carrying it simply lose it.
func (s *service) DeleteEnchantment(ctx context.Context, enchantmentID int) error {
	log := logger.FromContext(ctx)

	if err := s.enchantments.DeleteEnchantmentCascade(ctx, enchantmentID); err != nil {
		return err
	}

	log.Info("Enchantment deleted", "enchantmentID", enchantmentID)
	return nil
}
