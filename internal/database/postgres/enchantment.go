package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// EnchantmentRepository implements repository.Enchantment for PostgreSQL
type EnchantmentRepository struct {
	db *pgxpool.Pool
}

// NewEnchantmentRepository creates a new EnchantmentRepository
func NewEnchantmentRepository(db *pgxpool.Pool) *EnchantmentRepository {
	return &EnchantmentRepository{db: db}
}

// ListEnchantments retrieves all enchantments ordered by ascending id
func (r *EnchantmentRepository) ListEnchantments(ctx context.Context) ([]domain.Enchantment, error) {
	query := `
		SELECT enchantment_id, name, effect_description, updated_at
		FROM enchantment
		ORDER BY enchantment_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list enchantments: %w", err)
	}
	defer rows.Close()

	enchantments := make([]domain.Enchantment, 0)
	for rows.Next() {
		var e domain.Enchantment
		if err := rows.Scan(&e.ID, &e.Name, &e.EffectDescription, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan enchantment: %w", err)
		}
		enchantments = append(enchantments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read enchantments: %w", err)
	}

	return enchantments, nil
}

// GetEnchantmentByID retrieves an enchantment by ID
func (r *EnchantmentRepository) GetEnchantmentByID(ctx context.Context, enchantmentID int) (*domain.Enchantment, error) {
	query := `
		SELECT enchantment_id, name, effect_description, updated_at
		FROM enchantment
		WHERE enchantment_id = $1
	`
	var e domain.Enchantment
	err := r.db.QueryRow(ctx, query, enchantmentID).Scan(&e.ID, &e.Name, &e.EffectDescription, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnchantmentNotFound
		}
		return nil, fmt.Errorf("failed to get enchantment: %w", err)
	}

	return &e, nil
}

// InsertEnchantment creates an enchantment and returns its generated id
func (r *EnchantmentRepository) InsertEnchantment(ctx context.Context, name, effectDescription string) (int, error) {
	query := `
		INSERT INTO enchantment (name, effect_description)
		VALUES ($1, $2)
		RETURNING enchantment_id
	`
	var enchantmentID int
	if err := r.db.QueryRow(ctx, query, name, effectDescription).Scan(&enchantmentID); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEnchantmentNameTaken
		}
		return 0, fmt.Errorf("failed to insert enchantment: %w", err)
	}

	return enchantmentID, nil
}

// UpdateEffectDescription replaces an enchantment's effect description and
// refreshes its updated_at timestamp
func (r *EnchantmentRepository) UpdateEffectDescription(ctx context.Context, enchantmentID int, effectDescription string) error {
	query := `
		UPDATE enchantment
		SET effect_description = $2, updated_at = NOW()
		WHERE enchantment_id = $1
	`
	tag, err := r.db.Exec(ctx, query, enchantmentID, effectDescription)
	if err != nil {
		return fmt.Errorf("failed to update effect description: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEnchantmentNotFound
	}

	return nil
}

// DeleteEnchantmentCascade removes an enchantment and detaches it from every
// inventory entry carrying it, in one transaction
func (r *EnchantmentRepository) DeleteEnchantmentCascade(ctx context.Context, enchantmentID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM enchantment WHERE enchantment_id = $1)", enchantmentID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check enchantment existence: %w", err)
	}
	if !exists {
		return domain.ErrEnchantmentNotFound
	}

	if _, err := tx.Exec(ctx, "DELETE FROM item_enchantment WHERE enchantment_id = $1", enchantmentID); err != nil {
		return fmt.Errorf("failed to delete enchantment links: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM enchantment WHERE enchantment_id = $1", enchantmentID); err != nil {
		return fmt.Errorf("failed to delete enchantment: %w", err)
	}

	return tx.Commit(ctx)
}
