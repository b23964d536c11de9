package handler

import (
	"context"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// stubInventoryService implements inventory.Service with overridable funcs
type stubInventoryService struct {
	getInventoryFn       func(ctx context.Context, playerID int) ([]domain.InventoryRow, error)
	addItemFn            func(ctx context.Context, playerID, itemID, quantity int) (int, error)
	removeItemFn         func(ctx context.Context, playerID, itemID, quantity int) (int, error)
	enchantItemFn        func(ctx context.Context, playerID, itemID, enchantmentID int) (bool, error)
	removeEnchantmentsFn func(ctx context.Context, playerID, itemID int) (int64, error)
}

func (s *stubInventoryService) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error) {
	return s.getInventoryFn(ctx, playerID)
}

func (s *stubInventoryService) AddItem(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	return s.addItemFn(ctx, playerID, itemID, quantity)
}

func (s *stubInventoryService) RemoveItem(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	return s.removeItemFn(ctx, playerID, itemID, quantity)
}

func (s *stubInventoryService) EnchantItem(ctx context.Context, playerID, itemID, enchantmentID int) (bool, error) {
	return s.enchantItemFn(ctx, playerID, itemID, enchantmentID)
}

func (s *stubInventoryService) RemoveEnchantments(ctx context.Context, playerID, itemID int) (int64, error) {
	return s.removeEnchantmentsFn(ctx, playerID, itemID)
}

// stubCatalogService implements catalog.Service with overridable funcs
type stubCatalogService struct {
	listItemsFn        func(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	getItemFn          func(ctx context.Context, itemID int) (*domain.Item, error)
	createItemFn       func(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (*domain.Item, error)
	deleteItemFn       func(ctx context.Context, itemID int) error
	listEnchFn         func(ctx context.Context) ([]domain.Enchantment, error)
	getEnchFn          func(ctx context.Context, enchantmentID int) (*domain.Enchantment, error)
	createEnchFn       func(ctx context.Context, name, effectDescription string) (*domain.Enchantment, error)
	updateEffectFn     func(ctx context.Context, enchantmentID int, effectDescription string) (*domain.Enchantment, error)
	deleteEnchFn       func(ctx context.Context, enchantmentID int) error
}

func (s *stubCatalogService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	return s.listItemsFn(ctx, filter)
}

func (s *stubCatalogService) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	return s.getItemFn(ctx, itemID)
}

func (s *stubCatalogService) CreateItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (*domain.Item, error) {
	return s.createItemFn(ctx, name, itemType, rarity)
}

func (s *stubCatalogService) DeleteItem(ctx context.Context, itemID int) error {
	return s.deleteItemFn(ctx, itemID)
}

func (s *stubCatalogService) ListEnchantments(ctx context.Context) ([]domain.Enchantment, error) {
	return s.listEnchFn(ctx)
}

func (s *stubCatalogService) GetEnchantment(ctx context.Context, enchantmentID int) (*domain.Enchantment, error) {
	return s.getEnchFn(ctx, enchantmentID)
}

func (s *stubCatalogService) CreateEnchantment(ctx context.Context, name, effectDescription string) (*domain.Enchantment, error) {
	return s.createEnchFn(ctx, name, effectDescription)
}

func (s *stubCatalogService) UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) (*domain.Enchantment, error) {
	return s.updateEffectFn(ctx, enchantmentID, effectDescription)
}

func (s *stubCatalogService) DeleteEnchantment(ctx context.Context, enchantmentID int) error {
	return s.deleteEnchFn(ctx, enchantmentID)
}

// stubPlayerService implements player.Service with overridable funcs
type stubPlayerService struct {
	createPlayerFn func(ctx context.Context, username string) (*domain.Player, error)
	getPlayerFn    func(ctx context.Context, playerID int) (*domain.Player, error)
}

func (s *stubPlayerService) CreatePlayer(ctx context.Context, username string) (*domain.Player, error) {
	return s.createPlayerFn(ctx, username)
}

func (s *stubPlayerService) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	return s.getPlayerFn(ctx, playerID)
}
