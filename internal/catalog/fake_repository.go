package catalog

import (
	"context"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the item and
// enchantment repositories for testing
type FakeRepository struct {
	items        map[int]*domain.Item
	enchantments map[int]*domain.Enchantment

	nextItemID        int
	nextEnchantmentID int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:        make(map[int]*domain.Item),
		enchantments: make(map[int]*domain.Enchantment),
	}
}

func (f *FakeRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	for id := 1; id <= f.nextItemID; id++ {
		item, ok := f.items[id]
		if !ok {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.Rarity != "" && item.Rarity != filter.Rarity {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (f *FakeRepository) InsertItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (int, error) {
	for _, item := range f.items {
		if item.Name == name {
			return 0, domain.ErrItemNameTaken
		}
	}
	f.nextItemID++
	f.items[f.nextItemID] = &domain.Item{ID: f.nextItemID, Name: name, Type: itemType, Rarity: rarity, CreatedAt: time.Now()}
	return f.nextItemID, nil
}

func (f *FakeRepository) DeleteItemCascade(ctx context.Context, itemID int) error {
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *FakeRepository) ListEnchantments(ctx context.Context) ([]domain.Enchantment, error) {
	enchantments := make([]domain.Enchantment, 0)
	for id := 1; id <= f.nextEnchantmentID; id++ {
		if e, ok := f.enchantments[id]; ok {
			enchantments = append(enchantments, *e)
		}
	}
	return enchantments, nil
}

func (f *FakeRepository) GetEnchantmentByID(ctx context.Context, enchantmentID int) (*domain.Enchantment, error) {
	e, ok := f.enchantments[enchantmentID]
	if !ok {
		return nil, domain.ErrEnchantmentNotFound
	}
	return e, nil
}

func (f *FakeRepository) InsertEnchantment(ctx context.Context, name, effectDescription string) (int, error) {
	for _, e := range f.enchantments {
		if e.Name == name {
			return 0, domain.ErrEnchantmentNameTaken
		}
	}
	f.nextEnchantmentID++
	f.enchantments[f.nextEnchantmentID] = &domain.Enchantment{
		ID:                f.nextEnchantmentID,
		Name:              name,
		EffectDescription: effectDescription,
		UpdatedAt:         time.Now(),
	}
	return f.nextEnchantmentID, nil
}

func (f *FakeRepository) UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) error {
	e, ok := f.enchantments[enchantmentID]
	if !ok {
		return domain.ErrEnchantmentNotFound
	}
	e.EffectDescription = effectDescription
	e.UpdatedAt = time.Now()
	return nil
}

func (f *FakeRepository) DeleteEnchantmentCascade(ctx context.Context, enchantmentID int) error {
	if _, ok := f.enchantments[enchantmentID]; !ok {
		return domain.ErrEnchantmentNotFound
	}
	delete(f.enchantments, enchantmentID)
	return nil
}
