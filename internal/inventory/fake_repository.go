package inventory

import (
	"context"
	"time"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of the player, item,
// enchantment and inventory repositories for testing. It keeps state in maps
// to enable integration-style unit tests without a database.
type FakeRepository struct {
	players      map[int]*domain.Player
	items        map[int]*domain.Item
	enchantments map[int]*domain.Enchantment
	entries      map[int]*domain.InventoryEntry
	links        map[int][]int // entry ID -> enchantment IDs in attach order

	nextPlayerID      int
	nextItemID        int
	nextEnchantmentID int
	nextEntryID       int

	// conflictsRemaining makes the next N commits fail with ErrTxConflict
	conflictsRemaining int
	beginTxCalls       int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		players:      make(map[int]*domain.Player),
		items:        make(map[int]*domain.Item),
		enchantments: make(map[int]*domain.Enchantment),
		entries:      make(map[int]*domain.InventoryEntry),
		links:        make(map[int][]int),
	}
}

func (f *FakeRepository) InsertPlayer(ctx context.Context, username string) (int, error) {
	for _, p := range f.players {
		if p.Username == username {
			return 0, domain.ErrUsernameTaken
		}
	}
	f.nextPlayerID++
	f.players[f.nextPlayerID] = &domain.Player{ID: f.nextPlayerID, Username: username, CreatedAt: time.Now()}
	return f.nextPlayerID, nil
}

func (f *FakeRepository) GetPlayerByID(ctx context.Context, playerID int) (*domain.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (f *FakeRepository) PlayerExists(ctx context.Context, playerID int) (bool, error) {
	_, ok := f.players[playerID]
	return ok, nil
}

func (f *FakeRepository) AddPlayer(username string) int {
	id, _ := f.InsertPlayer(context.Background(), username)
	return id
}

func (f *FakeRepository) AddItem(name string, itemType domain.ItemType, rarity domain.Rarity) int {
	f.nextItemID++
	f.items[f.nextItemID] = &domain.Item{ID: f.nextItemID, Name: name, Type: itemType, Rarity: rarity, CreatedAt: time.Now()}
	return f.nextItemID
}

func (f *FakeRepository) AddEnchantment(name, effectDescription string) int {
	f.nextEnchantmentID++
	f.enchantments[f.nextEnchantmentID] = &domain.Enchantment{
		ID:                f.nextEnchantmentID,
		Name:              name,
		EffectDescription: effectDescription,
		UpdatedAt:         time.Now(),
	}
	return f.nextEnchantmentID
}

// FailNextCommits makes the next n transaction commits report a conflict
func (f *FakeRepository) FailNextCommits(n int) {
	f.conflictsRemaining = n
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
	return f.AddItem(name, itemType, rarity), nil
}

func (f *FakeRepository) DeleteItemCascade(ctx context.Context, itemID int) error {
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	for entryID, entry := range f.entries {
		if entry.ItemID == itemID {
			delete(f.links, entryID)
			delete(f.entries, entryID)
		}
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
	return f.AddEnchantment(name, effectDescription), nil
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
	for entryID, ids := range f.links {
		kept := ids[:0]
		for _, id := range ids {
			if id != enchantmentID {
				kept = append(kept, id)
			}
		}
		f.links[entryID] = kept
	}
	delete(f.enchantments, enchantmentID)
	return nil
}

func (f *FakeRepository) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error) {
	rows := make([]domain.InventoryRow, 0)
	for _, entry := range f.entries {
		if entry.PlayerID != playerID {
			continue
		}
		item := f.items[entry.ItemID]
		names := make([]string, 0)
		for _, eid := range f.links[entry.ID] {
			names = append(names, f.enchantments[eid].Name)
		}
		rows = append(rows, domain.InventoryRow{
			ItemID:       item.ID,
			Name:         item.Name,
			Type:         item.Type,
			Rarity:       item.Rarity,
			Quantity:     entry.Quantity,
			Enchantments: names,
		})
	}
	// Mirror the database ordering
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0; j-- {
			a, b := rows[j-1], rows[j]
			if b.Quantity > a.Quantity || (b.Quantity == a.Quantity && b.Name < a.Name) {
				rows[j-1], rows[j] = b, a
			}
		}
	}
	return rows, nil
}

func (f *FakeRepository) GetEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	for _, entry := range f.entries {
		if entry.PlayerID == playerID && entry.ItemID == itemID {
			return entry, nil
		}
	}
	return nil, domain.ErrNotInInventory
}

func (f *FakeRepository) BeginTx(ctx context.Context, iso repository.Isolation) (repository.InventoryTx, error) {
	f.beginTxCalls++
	return &fakeTx{repo: f}, nil
}

// BeginTxCalls reports how many transactions were started
func (f *FakeRepository) BeginTxCalls() int {
	return f.beginTxCalls
}

// fakeTx mutates the fake's state directly. Rollback is a no-op, which is
// fine for tests that assert on outcomes rather than isolation.
type fakeTx struct {
	repo   *FakeRepository
	closed bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.closed = true
	if t.repo.conflictsRemaining > 0 {
		t.repo.conflictsRemaining--
		return domain.ErrTxConflict
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed{}
	}
	t.closed = true
	return nil
}

type errTxClosed struct{}

func (errTxClosed) Error() string { return domain.ErrMsgTxClosed }

func (t *fakeTx) UpsertEntryAdd(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	if entry, err := t.repo.GetEntry(ctx, playerID, itemID); err == nil {
		entry.Quantity += quantity
		return entry.Quantity, nil
	}
	t.repo.nextEntryID++
	t.repo.entries[t.repo.nextEntryID] = &domain.InventoryEntry{
		ID:       t.repo.nextEntryID,
		PlayerID: playerID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	return quantity, nil
}

func (t *fakeTx) GetEntryForUpdate(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	return t.repo.GetEntry(ctx, playerID, itemID)
}

func (t *fakeTx) DecrementEntry(ctx context.Context, entryID, quantity int) (int, error) {
	entry := t.repo.entries[entryID]
	entry.Quantity -= quantity
	return entry.Quantity, nil
}

func (t *fakeTx) DeleteEntry(ctx context.Context, entryID int) error {
	delete(t.repo.links, entryID)
	delete(t.repo.entries, entryID)
	return nil
}

func (t *fakeTx) AttachEnchantment(ctx context.Context, entryID, enchantmentID int) (bool, error) {
	for _, id := range t.repo.links[entryID] {
		if id == enchantmentID {
			return false, nil
		}
	}
	t.repo.links[entryID] = append(t.repo.links[entryID], enchantmentID)
	return true, nil
}

func (t *fakeTx) DetachEnchantments(ctx context.Context, entryID int) (int64, error) {
	n := int64(len(t.repo.links[entryID]))
	delete(t.repo.links, entryID)
	return n, nil
}
