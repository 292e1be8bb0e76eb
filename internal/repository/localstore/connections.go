// Package localstore persists small client settings in a local YAML file,
// mirroring the fixed-key browser storage the web client uses: one key for
// the saved connections list and one for the active connection id.
package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models/settings"
)

// Fixed storage keys; these double as the YAML field names.
const (
	ConnectionsKey      = "connections"
	ActiveConnectionKey = "active_connection_id"
)

// fileFormat is the serialized shape of the settings file.
type fileFormat struct {
	Connections        []settings.Connection `yaml:"connections"`
	ActiveConnectionID string                `yaml:"active_connection_id"`
}

// ConnectionStore implements repositories/settings.ConnectionStore over one
// YAML file. Every mutation rewrites the file atomically (temp + rename).
type ConnectionStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewConnectionStore creates a store backed by dir/connections.yaml.
func NewConnectionStore(dir string) (*ConnectionStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &ConnectionStore{
		path: filepath.Join(dir, "connections.yaml"),
		now:  time.Now,
	}, nil
}

// List returns all saved connections in save order
func (s *ConnectionStore) List(ctx context.Context) ([]settings.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Connections, nil
}

// Get retrieves one connection by id
func (s *ConnectionStore) Get(ctx context.Context, id string) (*settings.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range data.Connections {
		if data.Connections[i].ID == id {
			conn := data.Connections[i]
			return &conn, nil
		}
	}
	return nil, fmt.Errorf("connection %s: %w", id, domain.ErrNotFound)
}

// Save inserts or replaces a connection (identity-based upsert)
func (s *ConnectionStore) Save(ctx context.Context, conn *settings.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	now := s.now()
	if conn.ID == "" {
		conn.ID = uuid.NewString()
		conn.CreatedAt = now
	}
	conn.UpdatedAt = now

	replaced := false
	for i := range data.Connections {
		if data.Connections[i].ID == conn.ID {
			if conn.CreatedAt.IsZero() {
				conn.CreatedAt = data.Connections[i].CreatedAt
			}
			data.Connections[i] = *conn
			replaced = true
			break
		}
	}
	if !replaced {
		if conn.CreatedAt.IsZero() {
			conn.CreatedAt = now
		}
		data.Connections = append(data.Connections, *conn)
	}

	return s.write(data)
}

// Delete removes a connection; deleting the active one clears the active id
func (s *ConnectionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	found := false
	kept := data.Connections[:0]
	for _, conn := range data.Connections {
		if conn.ID == id {
			found = true
			continue
		}
		kept = append(kept, conn)
	}
	if !found {
		return fmt.Errorf("connection %s: %w", id, domain.ErrNotFound)
	}
	data.Connections = kept
	if data.ActiveConnectionID == id {
		data.ActiveConnectionID = ""
	}

	return s.write(data)
}

// SetActive marks a saved connection as active
func (s *ConnectionStore) SetActive(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	for i := range data.Connections {
		if data.Connections[i].ID == id {
			data.ActiveConnectionID = id
			return s.write(data)
		}
	}
	return fmt.Errorf("connection %s: %w", id, domain.ErrNotFound)
}

// GetActive returns the active connection, or ErrNotFound when none is set
func (s *ConnectionStore) GetActive(ctx context.Context) (*settings.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data.ActiveConnectionID == "" {
		return nil, fmt.Errorf("no active connection: %w", domain.ErrNotFound)
	}
	for i := range data.Connections {
		if data.Connections[i].ID == data.ActiveConnectionID {
			conn := data.Connections[i]
			return &conn, nil
		}
	}
	return nil, fmt.Errorf("active connection %s: %w", data.ActiveConnectionID, domain.ErrNotFound)
}

func (s *ConnectionStore) load() (*fileFormat, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileFormat{Connections: []settings.Connection{}}, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var data fileFormat
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode settings file: %w", err)
	}
	if data.Connections == nil {
		data.Connections = []settings.Connection{}
	}
	return &data, nil
}

func (s *ConnectionStore) write(data *fileFormat) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}
