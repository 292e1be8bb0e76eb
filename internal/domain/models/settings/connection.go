package settings

import (
	"time"
)

// Connection is a saved remote data-service connection. The active connection
// decides which backend the client talks to; the list plus the active id are
// persisted locally under fixed keys.
type Connection struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	EnvironmentURL string    `json:"environment_url" yaml:"environment_url"`
	TenantID       string    `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

type SaveConnectionRequest struct {
	Name           string `json:"name"`
	EnvironmentURL string `json:"environment_url"`
	TenantID       string `json:"tenant_id,omitempty"`
}
