package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

func TestRepositories_Integration(t *testing.T) {
	pool := startTestDatabase(t)
	ctx := context.Background()

	players := NewPlayerRepository(pool)
	items := NewItemRepository(pool)
	enchantments := NewEnchantmentRepository(pool)
	inventory := NewInventoryRepository(pool)

	t.Run("InsertPlayer", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "gandalf")
		require.NoError(t, err)
		assert.Greater(t, playerID, 0)

		player, err := players.GetPlayerByID(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, "gandalf", player.Username)
		assert.False(t, player.CreatedAt.IsZero())

		_, err = players.InsertPlayer(ctx, "gandalf")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)

		exists, err := players.PlayerExists(ctx, playerID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = players.PlayerExists(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("GetPlayerByID not found", func(t *testing.T) {
		_, err := players.GetPlayerByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("Item CRUD", func(t *testing.T) {
		swordID, err := items.InsertItem(ctx, "iron sword", domain.ItemTypeWeapon, domain.RarityCommon)
		require.NoError(t, err)

		_, err = items.InsertItem(ctx, "iron sword", domain.ItemTypeWeapon, domain.RarityRare)
		assert.ErrorIs(t, err, domain.ErrItemNameTaken)

		_, err = items.InsertItem(ctx, "apple pie", domain.ItemTypeFood, domain.RarityUncommon)
		require.NoError(t, err)

		item, err := items.GetItemByID(ctx, swordID)
		require.NoError(t, err)
		assert.Equal(t, "iron sword", item.Name)
		assert.Equal(t, domain.ItemTypeWeapon, item.Type)
		assert.Equal(t, domain.RarityCommon, item.Rarity)

		all, err := items.ListItems(ctx, domain.ItemFilter{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID, "items should be ordered by id")
		}

		weapons, err := items.ListItems(ctx, domain.ItemFilter{Type: domain.ItemTypeWeapon})
		require.NoError(t, err)
		for _, it := range weapons {
			assert.Equal(t, domain.ItemTypeWeapon, it.Type)
		}

		filtered, err := items.ListItems(ctx, domain.ItemFilter{Type: domain.ItemTypeFood, Rarity: domain.RarityUncommon})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "apple pie", filtered[0].Name)
	})

	t.Run("Enchantment CRUD", func(t *testing.T) {
		fireID, err := enchantments.InsertEnchantment(ctx, "fire aspect", "Sets the target ablaze")
		require.NoError(t, err)

		_, err = enchantments.InsertEnchantment(ctx, "fire aspect", "duplicate")
		assert.ErrorIs(t, err, domain.ErrEnchantmentNameTaken)

		e, err := enchantments.GetEnchantmentByID(ctx, fireID)
		require.NoError(t, err)
		assert.Equal(t, "fire aspect", e.Name)
		firstUpdatedAt := e.UpdatedAt

		err = enchantments.UpdateEffectDescription(ctx, fireID, "Ignites the target on hit")
		require.NoError(t, err)

		updated, err := enchantments.GetEnchantmentByID(ctx, fireID)
		require.NoError(t, err)
		assert.Equal(t, "Ignites the target on hit", updated.EffectDescription)
		assert.True(t, updated.UpdatedAt.After(firstUpdatedAt) || updated.UpdatedAt.Equal(firstUpdatedAt))

		err = enchantments.UpdateEffectDescription(ctx, 999999, "nope")
		assert.ErrorIs(t, err, domain.ErrEnchantmentNotFound)

		all, err := enchantments.ListEnchantments(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 1)
	})

	t.Run("Inventory add and get", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "bilbo")
		require.NoError(t, err)
		swordID, err := items.InsertItem(ctx, "sting", domain.ItemTypeWeapon, domain.RarityEpic)
		require.NoError(t, err)
		cloakID, err := items.InsertItem(ctx, "elven cloak", domain.ItemTypeClothing, domain.RarityRare)
		require.NoError(t, err)

		empty, err := inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		assert.Empty(t, empty)

		tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		qty, err := tx.UpsertEntryAdd(ctx, playerID, swordID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, qty)
		require.NoError(t, tx.Commit(ctx))

		// A second add for the same item must increment, not duplicate
		tx, err = inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		qty, err = tx.UpsertEntryAdd(ctx, playerID, swordID, 4)
		require.NoError(t, err)
		assert.Equal(t, 5, qty)
		require.NoError(t, tx.Commit(ctx))

		tx, err = inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		_, err = tx.UpsertEntryAdd(ctx, playerID, cloakID, 2)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		rows, err := inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "sting", rows[0].Name)
		assert.Equal(t, 5, rows[0].Quantity)
		assert.Equal(t, "elven cloak", rows[1].Name)
		assert.Equal(t, 2, rows[1].Quantity)
		assert.Empty(t, rows[0].Enchantments)

		entry, err := inventory.GetEntry(ctx, playerID, swordID)
		require.NoError(t, err)
		assert.Equal(t, 5, entry.Quantity)

		_, err = inventory.GetEntry(ctx, playerID, 999999)
		assert.ErrorIs(t, err, domain.ErrNotInInventory)
	})

	t.Run("Inventory remove", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "frodo")
		require.NoError(t, err)
		breadID, err := items.InsertItem(ctx, "lembas bread", domain.ItemTypeFood, domain.RarityRare)
		require.NoError(t, err)

		tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		_, err = tx.UpsertEntryAdd(ctx, playerID, breadID, 3)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err := tx.GetEntryForUpdate(ctx, playerID, breadID)
		require.NoError(t, err)
		remaining, err := tx.DecrementEntry(ctx, entry.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
		require.NoError(t, tx.Commit(ctx))

		// Removing the last unit deletes the row
		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err = tx.GetEntryForUpdate(ctx, playerID, breadID)
		require.NoError(t, err)
		assert.Equal(t, 1, entry.Quantity)
		require.NoError(t, tx.DeleteEntry(ctx, entry.ID))
		require.NoError(t, tx.Commit(ctx))

		_, err = inventory.GetEntry(ctx, playerID, breadID)
		assert.ErrorIs(t, err, domain.ErrNotInInventory)
	})

	t.Run("Enchantment attach and detach", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "aragorn")
		require.NoError(t, err)
		swordID, err := items.InsertItem(ctx, "anduril", domain.ItemTypeWeapon, domain.RarityLegendary)
		require.NoError(t, err)
		sharpID, err := enchantments.InsertEnchantment(ctx, "sharpness", "Increases damage dealt")
		require.NoError(t, err)
		flameID, err := enchantments.InsertEnchantment(ctx, "flame", "Burns on contact")
		require.NoError(t, err)

		tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		_, err = tx.UpsertEntryAdd(ctx, playerID, swordID, 1)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err := tx.GetEntryForUpdate(ctx, playerID, swordID)
		require.NoError(t, err)
		attached, err := tx.AttachEnchantment(ctx, entry.ID, sharpID)
		require.NoError(t, err)
		assert.True(t, attached)
		attached, err = tx.AttachEnchantment(ctx, entry.ID, flameID)
		require.NoError(t, err)
		assert.True(t, attached)
		require.NoError(t, tx.Commit(ctx))

		// Attaching an already-held enchantment reports false
		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err = tx.GetEntryForUpdate(ctx, playerID, swordID)
		require.NoError(t, err)
		attached, err = tx.AttachEnchantment(ctx, entry.ID, sharpID)
		require.NoError(t, err)
		assert.False(t, attached)
		require.NoError(t, tx.Commit(ctx))

		rows, err := inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"sharpness", "flame"}, rows[0].Enchantments)

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err = tx.GetEntryForUpdate(ctx, playerID, swordID)
		require.NoError(t, err)
		removed, err := tx.DetachEnchantments(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		require.NoError(t, tx.Commit(ctx))

		rows, err = inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Enchantments)

		// Attaching an enchantment deleted underneath the transaction
		// reports not-found, not a raw constraint error
		frostID, err := enchantments.InsertEnchantment(ctx, "frost", "Slows the target")
		require.NoError(t, err)
		require.NoError(t, enchantments.DeleteEnchantmentCascade(ctx, frostID))

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err = tx.GetEntryForUpdate(ctx, playerID, swordID)
		require.NoError(t, err)
		_, err = tx.AttachEnchantment(ctx, entry.ID, frostID)
		assert.ErrorIs(t, err, domain.ErrEnchantmentNotFound)
		require.NoError(t, tx.Rollback(ctx))
	})

	t.Run("DeleteItemCascade", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "boromir")
		require.NoError(t, err)
		hornID, err := items.InsertItem(ctx, "horn of gondor", domain.ItemTypeWeapon, domain.RarityEpic)
		require.NoError(t, err)
		echoID, err := enchantments.InsertEnchantment(ctx, "echoing", "Sound carries for miles")
		require.NoError(t, err)

		tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		_, err = tx.UpsertEntryAdd(ctx, playerID, hornID, 1)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err := tx.GetEntryForUpdate(ctx, playerID, hornID)
		require.NoError(t, err)
		_, err = tx.AttachEnchantment(ctx, entry.ID, echoID)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		require.NoError(t, items.DeleteItemCascade(ctx, hornID))

		_, err = items.GetItemByID(ctx, hornID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		rows, err := inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		assert.Empty(t, rows)

		err = items.DeleteItemCascade(ctx, hornID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("DeleteEnchantmentCascade", func(t *testing.T) {
		playerID, err := players.InsertPlayer(ctx, "legolas")
		require.NoError(t, err)
		bowID, err := items.InsertItem(ctx, "galadhrim bow", domain.ItemTypeWeapon, domain.RarityRare)
		require.NoError(t, err)
		swiftID, err := enchantments.InsertEnchantment(ctx, "swiftness", "Faster draw speed")
		require.NoError(t, err)

		tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
		require.NoError(t, err)
		_, err = tx.UpsertEntryAdd(ctx, playerID, bowID, 1)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		tx, err = inventory.BeginTx(ctx, repository.IsolationStrict)
		require.NoError(t, err)
		entry, err := tx.GetEntryForUpdate(ctx, playerID, bowID)
		require.NoError(t, err)
		_, err = tx.AttachEnchantment(ctx, entry.ID, swiftID)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		require.NoError(t, enchantments.DeleteEnchantmentCascade(ctx, swiftID))

		_, err = enchantments.GetEnchantmentByID(ctx, swiftID)
		assert.ErrorIs(t, err, domain.ErrEnchantmentNotFound)

		// The inventory entry survives, only the link is gone
		rows, err := inventory.GetInventory(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Enchantments)

		err = enchantments.DeleteEnchantmentCascade(ctx, swiftID)
		assert.ErrorIs(t, err, domain.ErrEnchantmentNotFound)
	})
}

func TestConcurrentUpserts_Integration(t *testing.T) {
	pool := startTestDatabase(t)
	ctx := context.Background()

	players := NewPlayerRepository(pool)
	items := NewItemRepository(pool)
	inventory := NewInventoryRepository(pool)

	playerID, err := players.InsertPlayer(ctx, "concurrent_player")
	require.NoError(t, err)
	goldID, err := items.InsertItem(ctx, "gold coin", domain.ItemTypeClothing, domain.RarityCommon)
	require.NoError(t, err)

	const workers = 10
	const perWorker = 5

	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				tx, err := inventory.BeginTx(ctx, repository.IsolationDefault)
				if err != nil {
					errCh <- err
					return
				}
				if _, err := tx.UpsertEntryAdd(ctx, playerID, goldID, 1); err != nil {
					_ = tx.Rollback(ctx)
					errCh <- err
					return
				}
				if err := tx.Commit(ctx); err != nil {
					errCh <- err
					return
				}
			}
			errCh <- nil
		}()
	}

	// Read committed upserts never conflict, every worker must succeed
	for w := 0; w < workers; w++ {
		require.NoError(t, <-errCh)
	}

	entry, err := inventory.GetEntry(ctx, playerID, goldID)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, entry.Quantity)
}
