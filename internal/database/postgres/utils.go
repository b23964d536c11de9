package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meganrobin/Item-Management-API/internal/domain"
)

// PostgreSQL error codes (SQLSTATE)
const (
	pgCodeForeignKeyViolation  = "23503"
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
)

// isUniqueViolation reports whether err is a unique-constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

// isForeignKeyViolation reports whether err is a foreign-key violation
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeForeignKeyViolation
}

// isRetryableConflict reports whether err is a transient write-write conflict
// (serialization failure or deadlock) that the caller may retry
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgCodeSerializationFailure || pgErr.Code == pgCodeDeadlockDetected
}

// translateConflict maps retryable storage conflicts onto domain.ErrTxConflict
// so the service layer can retry without importing pgx. The message gives the
// failed operation; the non-retryable branch keeps the original error in the
// chain for errors.Is checks upstream.
func translateConflict(err error, msg string) error {
	if isRetryableConflict(err) {
		return fmt.Errorf("%s: %w: %v", msg, domain.ErrTxConflict, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
