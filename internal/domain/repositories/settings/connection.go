package settings

import (
	"context"

	"docuvault/internal/domain/models/settings"
)

// ConnectionStore persists the saved connection list and the active
// connection id. Implementations are small key-value stores, not databases.
type ConnectionStore interface {
	// List returns all saved connections in save order
	List(ctx context.Context) ([]settings.Connection, error)

	// Get retrieves one connection by id
	Get(ctx context.Context, id string) (*settings.Connection, error)

	// Save inserts or replaces a connection (identity-based upsert)
	Save(ctx context.Context, conn *settings.Connection) error

	// Delete removes a connection; deleting the active one clears the
	// active id as well
	Delete(ctx context.Context, id string) error

	// SetActive marks a saved connection as active
	SetActive(ctx context.Context, id string) error

	// GetActive returns the active connection, or ErrNotFound when none is set
	GetActive(ctx context.Context) (*settings.Connection, error)
}
