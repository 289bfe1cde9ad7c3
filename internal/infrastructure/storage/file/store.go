// Package file implements the repository ports on top of four flat JSON
// tables, one file per table. Every table is loaded into memory on open
// and rewritten in full after each mutation, so a single operation either
// persists completely or leaves the previous file intact.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	usersFile       = "users.json"
	playersFile     = "players.json"
	supervisorsFile = "supervisors.json"
	statusesFile    = "statuses.json"
)

// On-disk record shapes. Keys live outside the records: users and players
// are objects keyed by username / canonical SteamID, supervisors are a
// plain ordered array.
type userRecord struct {
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

type playerRecord struct {
	Name       string `json:"name"`
	Discord    string `json:"discord"`
	Supervisor string `json:"supervisor"`
}

type statusRecord struct {
	Status    string `json:"status"`
	EndDate   string `json:"end_date"`
	ReturnDay string `json:"return_day,omitempty"`
}

// Seed is the bootstrap state written when a table file does not exist
// yet.
type Seed struct {
	AdminUsername     string
	AdminPasswordHash string
	AdminRole         string
	Supervisor        string
}

// Store holds the four in-memory tables and serialises access to them.
type Store struct {
	dir string

	mu          sync.Mutex
	users       map[string]userRecord
	players     map[string]playerRecord
	supervisors []string
	statuses    map[string]statusRecord
}

// Open loads the tables from dir, creating and seeding any that are
// missing.
func Open(dir string, seed Seed) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}

	s := &Store{
		dir:      dir,
		users:    make(map[string]userRecord),
		players:  make(map[string]playerRecord),
		statuses: make(map[string]statusRecord),
	}

	if err := s.loadOrSeed(usersFile, &s.users, func() {
		if seed.AdminUsername != "" {
			s.users[seed.AdminUsername] = userRecord{
				PasswordHash: seed.AdminPasswordHash,
				Role:         seed.AdminRole,
			}
		}
	}); err != nil {
		return nil, err
	}
	if err := s.loadOrSeed(playersFile, &s.players, nil); err != nil {
		return nil, err
	}
	if err := s.loadOrSeed(supervisorsFile, &s.supervisors, func() {
		if seed.Supervisor != "" {
			s.supervisors = []string{seed.Supervisor}
		}
	}); err != nil {
		return nil, err
	}
	if err := s.loadOrSeed(statusesFile, &s.statuses, nil); err != nil {
		return nil, err
	}

	return s, nil
}

// Ping reports whether the data directory is still reachable. Used by the
// readiness probe.
func (s *Store) Ping() error {
	_, err := os.Stat(s.dir)
	return err
}

// loadOrSeed reads one table file into dst. A missing file runs the seed
// hook and writes the initial table.
func (s *Store) loadOrSeed(name string, dst any, seedFn func()) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if seedFn != nil {
			seedFn()
		}
		return s.save(name, dst)
	}
	if err != nil {
		return fmt.Errorf("file store: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("file store: decode %s: %w", name, err)
	}
	return nil
}

// save rewrites one table file via a temp file and rename, so readers
// never observe a torn write.
func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("file store: encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return fmt.Errorf("file store: temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("file store: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file store: close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file store: replace %s: %w", name, err)
	}
	return nil
}
