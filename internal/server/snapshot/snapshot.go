// Package snapshot provides the persistence backends for the account
// directory. The store serializes the whole directory after every mutation
// and hands the bytes to a Snapshot; backends only move bytes and know
// nothing about accounts.
package snapshot

import "context"

// Snapshot stores and retrieves one opaque document, replaced in full on
// every Save.
type Snapshot interface {
	// Save replaces the persisted document with data.
	Save(ctx context.Context, data []byte) error

	// Load returns the persisted document, or common.ErrorNotFound if no
	// document has ever been saved.
	Load(ctx context.Context) ([]byte, error)
}
