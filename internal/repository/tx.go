package repository

import "context"

// Isolation selects the transaction isolation level for BeginTx.
// Default maps to the store's read-committed equivalent; Strict maps to
// repeatable read and is required for read-then-write operations that must
// not race with concurrent writers on the same row.
type Isolation int

const (
	IsolationDefault Isolation = iota
	IsolationStrict
)

// Tx defines the common transaction lifecycle
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
