package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meganrobin/Item-Management-API/internal/domain"
	"github.com/meganrobin/Item-Management-API/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetInventory retrieves a player's full inventory with item details and
// enchantment names aggregated per entry. Rows are ordered by descending
// quantity, then item name for ties.
func (r *InventoryRepository) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryRow, error) {
	query := `
		SELECT i.item_id, i.name, i.item_type, i.rarity, pii.quantity,
		       COALESCE(array_agg(e.name ORDER BY e.enchantment_id) FILTER (WHERE e.name IS NOT NULL), '{}')
		FROM player_inventory_item pii
		JOIN item i ON i.item_id = pii.item_id
		LEFT JOIN item_enchantment ie ON ie.player_inventory_item_id = pii.player_inventory_item_id
		LEFT JOIN enchantment e ON e.enchantment_id = ie.enchantment_id
		WHERE pii.player_id = $1
		GROUP BY i.item_id, i.name, i.item_type, i.rarity, pii.quantity
		ORDER BY pii.quantity DESC, i.name ASC
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	inventory := make([]domain.InventoryRow, 0)
	for rows.Next() {
		var row domain.InventoryRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Type, &row.Rarity, &row.Quantity, &row.Enchantments); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		inventory = append(inventory, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	return inventory, nil
}

// GetEntry retrieves a single inventory entry by player and item
func (r *InventoryRepository) GetEntry(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	query := `
		SELECT player_inventory_item_id, player_id, item_id, quantity
		FROM player_inventory_item
		WHERE player_id = $1 AND item_id = $2
	`
	var entry domain.InventoryEntry
	err := r.db.QueryRow(ctx, query, playerID, itemID).Scan(&entry.ID, &entry.PlayerID, &entry.ItemID, &entry.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInInventory
		}
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}

	return &entry, nil
}

// BeginTx starts a transaction at the requested isolation level
func (r *InventoryRepository) BeginTx(ctx context.Context, iso repository.Isolation) (repository.InventoryTx, error) {
	opts := pgx.TxOptions{}
	if iso == repository.IsolationStrict {
		opts.IsoLevel = pgx.RepeatableRead
	}

	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &inventoryTx{tx: tx}, nil
}

// inventoryTx implements repository.InventoryTx over a pgx transaction
type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return translateConflict(err, "failed to commit transaction")
	}
	return nil
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// UpsertEntryAdd inserts an inventory entry or atomically increments the
// quantity of an existing one, returning the resulting quantity
func (t *inventoryTx) UpsertEntryAdd(ctx context.Context, playerID, itemID, quantity int) (int, error) {
	query := `
		INSERT INTO player_inventory_item (player_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET quantity = player_inventory_item.quantity + EXCLUDED.quantity
		RETURNING quantity
	`
	var newQuantity int
	if err := t.tx.QueryRow(ctx, query, playerID, itemID, quantity).Scan(&newQuantity); err != nil {
		return 0, translateConflict(err, "failed to upsert inventory entry")
	}

	return newQuantity, nil
}

// GetEntryForUpdate retrieves an inventory entry and row-locks it for the
// remainder of the transaction
func (t *inventoryTx) GetEntryForUpdate(ctx context.Context, playerID, itemID int) (*domain.InventoryEntry, error) {
	query := `
		SELECT player_inventory_item_id, player_id, item_id, quantity
		FROM player_inventory_item
		WHERE player_id = $1 AND item_id = $2
		FOR UPDATE
	`
	var entry domain.InventoryEntry
	err := t.tx.QueryRow(ctx, query, playerID, itemID).Scan(&entry.ID, &entry.PlayerID, &entry.ItemID, &entry.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInInventory
		}
		return nil, translateConflict(err, "failed to lock inventory entry")
	}

	return &entry, nil
}

// DecrementEntry subtracts quantity from an entry and returns the remainder.
// Callers must hold the row lock and have verified sufficient quantity.
func (t *inventoryTx) DecrementEntry(ctx context.Context, entryID, quantity int) (int, error) {
	query := `
		UPDATE player_inventory_item
		SET quantity = quantity - $2
		WHERE player_inventory_item_id = $1
		RETURNING quantity
	`
	var remaining int
	if err := t.tx.QueryRow(ctx, query, entryID, quantity).Scan(&remaining); err != nil {
		return 0, translateConflict(err, "failed to decrement inventory entry")
	}

	return remaining, nil
}

// DeleteEntry removes an inventory entry and its enchantment links
func (t *inventoryTx) DeleteEntry(ctx context.Context, entryID int) error {
	if _, err := t.tx.Exec(ctx, "DELETE FROM item_enchantment WHERE player_inventory_item_id = $1", entryID); err != nil {
		return translateConflict(err, "failed to delete enchantment links")
	}
	if _, err := t.tx.Exec(ctx, "DELETE FROM player_inventory_item WHERE player_inventory_item_id = $1", entryID); err != nil {
		return translateConflict(err, "failed to delete inventory entry")
	}

	return nil
}

// AttachEnchantment links an enchantment to an inventory entry. Returns false
// without error when the link already exists.
func (t *inventoryTx) AttachEnchantment(ctx context.Context, entryID, enchantmentID int) (bool, error) {
	query := `
		INSERT INTO item_enchantment (player_inventory_item_id, enchantment_id)
		VALUES ($1, $2)
		ON CONFLICT (player_inventory_item_id, enchantment_id) DO NOTHING
	`
	tag, err := t.tx.Exec(ctx, query, entryID, enchantmentID)
	if err != nil {
		// The entry row is locked by this transaction, so a foreign-key
		// violation means the enchantment was deleted underneath us.
		if isForeignKeyViolation(err) {
			return false, domain.ErrEnchantmentNotFound
		}
		return false, translateConflict(err, "failed to attach enchantment")
	}

	return tag.RowsAffected() > 0, nil
}

// DetachEnchantments removes every enchantment link from an inventory entry
// and returns how many were removed
func (t *inventoryTx) DetachEnchantments(ctx context.Context, entryID int) (int64, error) {
	tag, err := t.tx.Exec(ctx, "DELETE FROM item_enchantment WHERE player_inventory_item_id = $1", entryID)
	if err != nil {
		return 0, translateConflict(err, "failed to detach enchantments")
	}

	return tag.RowsAffected(), nil
}
