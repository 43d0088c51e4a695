// Package history keeps snapshots of config files as they were before each
// save, so an edit can be rolled back.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/fileutil"

	// Import pure-Go SQLite driver for database/sql (no CGO required)
	_ "modernc.org/sqlite"
)

// DefaultDir is the directory next to the config file that holds the store
const DefaultDir = ".pcfg"

// DefaultFile is the database file name inside DefaultDir
const DefaultFile = "history.db"

// Snapshot is a stored copy of a file
type Snapshot struct {
	ID        int64
	Path      string
	Content   string
	Reason    string
	CreatedAt time.Time
}

// Store wraps the snapshot database
type Store struct {
	db      *sql.DB
	mu      sync.RWMutex
	enabled bool
	path    string
}

// New creates a store at dbPath. A disabled store accepts every call and
// records nothing.
func New(dbPath string, enabled bool) *Store {
	return &Store{
		path:    dbPath,
		enabled: enabled,
	}
}

// PathFor returns the default store location for a config file
func PathFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), DefaultDir, DefaultFile)
}

// Enabled reports whether snapshots are recorded
func (s *Store) Enabled() bool {
	return s.enabled
}

// Init opens the database and creates the schema
func (s *Store) Init() error {
	if !s.enabled {
		log.Debug("History disabled")
		return nil
	}

	log.Debug("Opening history database: %s", s.path)
	if err := fileutil.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping history database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			content TEXT NOT NULL,
			reason TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_path ON snapshots(path);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}

	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	return nil
}

func (s *Store) conn() (*sql.DB, error) {
	if !s.enabled {
		return nil, errors.ErrHistoryDisabled
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, fmt.Errorf("history database not initialized")
	}
	return s.db, nil
}

// Record stores content as the previous state of path
func (s *Store) Record(path, content, reason string) (int64, error) {
	if !s.enabled {
		return 0, nil
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	abs, _ := filepath.Abs(path)
	res, err := db.Exec(
		`INSERT INTO snapshots (path, content, reason, created_at) VALUES (?, ?, ?, ?)`,
		abs, content, reason, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug("Recorded snapshot %d for %s", id, abs)
	return id, nil
}

// List returns the newest snapshots of path first
func (s *Store) List(path string, limit int) ([]Snapshot, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	abs, _ := filepath.Abs(path)
	rows, err := db.Query(
		`SELECT id, path, content, reason, created_at FROM snapshots
		 WHERE path = ? ORDER BY id DESC LIMIT ?`,
		abs, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		snap, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Get returns one snapshot by id
func (s *Store) Get(id int64) (Snapshot, error) {
	db, err := s.conn()
	if err != nil {
		return Snapshot{}, err
	}

	row := db.QueryRow(`SELECT id, path, content, reason, created_at FROM snapshots WHERE id = ?`, id)
	snap, err := scan(row)
	if err == sql.ErrNoRows {
		return Snapshot{}, errors.Wrapf(errors.ErrSnapshotMissing, "id %d", id)
	}
	return snap, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner) (Snapshot, error) {
	var snap Snapshot
	var created int64
	if err := r.Scan(&snap.ID, &snap.Path, &snap.Content, &snap.Reason, &created); err != nil {
		return Snapshot{}, err
	}
	snap.CreatedAt = time.Unix(0, created)
	return snap, nil
}

// Close releases the database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
