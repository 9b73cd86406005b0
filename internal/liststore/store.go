package liststore

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath is the sentinel path for a non-persistent store. A memory
// store's contents are released when its connection closes, so its schema
// is re-created on every Open.
const MemoryPath = ":memory:"

// Store is a handle to one list-store database. It wraps at most one live
// connection at a time; the connection is exclusively owned by this handle
// and all access to it goes through the store's mutex.
//
// A zero Store is not usable; construct one with New or Initialize.
type Store struct {
	path string

	mu sync.Mutex // guards db across Open/Close and all data operations
	db *sql.DB
}

// New constructs a closed handle bound to path.
//
// Returns ErrNotFound unless path is MemoryPath or the backing file already
// exists. New never creates files; use Initialize for first-run bootstrap.
func New(path string) (*Store, error) {
	if path != MemoryPath {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, fmt.Errorf("stat database file: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Initialize creates the backing file and schema, then returns a fresh
// closed handle bound to path.
//
// Returns ErrAlreadyExists if a persistent file at path already exists:
// callers use this to distinguish "first run" from "resume". Initializing
// MemoryPath is a no-op beyond handle construction, since a memory store
// gets its schema on every Open anyway.
func Initialize(path string) (*Store, error) {
	if path == MemoryPath {
		return &Store{path: path}, nil
	}

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat database file: %w", err)
	}

	db, err := connect(path)
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("close after initialize: %w", err)
	}

	return New(path)
}

// Path returns the path this handle is bound to.
func (s *Store) Path() string {
	return s.path
}

// Connected reports whether the handle currently holds a live connection.
func (s *Store) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// Open establishes the connection. Returns ErrAlreadyOpen if this handle
// already holds one. A memory-backed handle comes up as a fresh empty
// store: its schema is re-created here on every open.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return ErrAlreadyOpen
	}

	db, err := connect(s.path)
	if err != nil {
		return err
	}

	if s.path == MemoryPath {
		if err := createSchema(db); err != nil {
			db.Close()
			return err
		}
	}

	s.db = db
	return nil
}

// Close releases the connection. Returns ErrAlreadyClosed if no connection
// is held.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrAlreadyClosed
	}

	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// With runs fn against a connected store. When no connection is held it
// opens one on entry and closes it on exit, on every return path. A live
// connection (e.g. a Registry handle that stays open for the process
// lifetime) is reused as-is and left open.
//
// With is for handles exclusively owned by the caller; concurrent callers
// share a handle through a Registry, whose entries never close underneath
// them.
func (s *Store) With(fn func(*Store) error) (err error) {
	if !s.Connected() {
		if err := s.Open(); err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	return fn(s)
}

// connect opens a SQLite connection with the store's required pragmas.
//
// The pool is pinned to a single connection: SQLite allows one writer at a
// time, and the memory database only survives while its connection does.
func connect(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return db, nil
}

// createSchema creates the table and unique index if absent. Idempotent:
// re-running against an already-initialized database never fails.
func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
