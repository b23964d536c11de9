package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListItems retrieves items matching the filter, ordered by ascending id.
// Absent filter fields place no restriction on their column.
func (r *ItemRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	query := `
		SELECT item_id, name, item_type, rarity, created_at
		FROM item
		WHERE ($1 = '' OR item_type = $1)
		  AND ($2 = '' OR rarity = $2)
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query, string(filter.Type), string(filter.Rarity))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Rarity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return items, nil
}

// GetItemByID retrieves an item by ID
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `
		SELECT item_id, name, item_type, rarity, created_at
		FROM item
		WHERE item_id = $1
	`
	var item domain.Item
	err := r.db.QueryRow(ctx, query, itemID).Scan(&item.ID, &item.Name, &item.Type, &item.Rarity, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

// InsertItem creates an item and returns its generated id
func (r *ItemRepository) InsertItem(ctx context.Context, name string, itemType domain.ItemType, rarity domain.Rarity) (int, error) {
	query := `
		INSERT INTO item (name, item_type, rarity)
		VALUES ($1, $2, $3)
		RETURNING item_id
	`
	var itemID int
	if err := r.db.QueryRow(ctx, query, name, string(itemType), string(rarity)).Scan(&itemID); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrItemNameTaken
		}
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	return itemID, nil
}

// DeleteItemCascade removes an item together with every inventory entry
// holding it and those entries' enchantment links, all in one transaction.
// The cascade is issued explicitly rather than relying on FK actions.
func (r *ItemRepository) DeleteItemCascade(ctx context.Context, itemID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM item WHERE item_id = $1)", itemID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check item existence: %w", err)
	}
	if !exists {
		return domain.ErrItemNotFound
	}

	// Enchantment links hang off inventory entries, so they go first
	_, err = tx.Exec(ctx, `
		DELETE FROM item_enchantment
		WHERE player_inventory_item_id IN (
			SELECT player_inventory_item_id
			FROM player_inventory_item
			WHERE item_id = $1
		)
	`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete enchantment links: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM player_inventory_item WHERE item_id = $1", itemID); err != nil {
		return fmt.Errorf("failed to delete inventory entries: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM item WHERE item_id = $1", itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return tx.Commit(ctx)
}
