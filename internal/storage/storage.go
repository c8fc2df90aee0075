package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscore/internal/board"
)

// Storage keys
const (
	positionPrefix  = "position/"
	keyLastPosition = "last_position"
)

// ErrPositionNotFound is returned when a named position does not exist.
var ErrPositionNotFound = errors.New("position not found")

// SavedPosition is a named position stored in the database.
type SavedPosition struct {
	Name      string    `json:"name"`
	FEN       string    `json:"fen"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Store, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func positionKey(name string) []byte {
	return []byte(positionPrefix + name)
}

// SavePosition stores fen under name. The FEN is parsed first so the
// database only ever holds loadable positions. Saving an existing name
// overwrites it but keeps its creation time.
func (s *Store) SavePosition(name, fen string, tags ...string) error {
	if name == "" {
		return errors.New("position name is empty")
	}
	if _, err := board.ParseFEN(fen); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	now := time.Now()
	sp := SavedPosition{
		Name:      name,
		FEN:       fen,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if prev, err := s.LoadPosition(name); err == nil {
		sp.CreatedAt = prev.CreatedAt
	}

	data, err := json.Marshal(&sp)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(name), data)
	})
}

// LoadPosition returns the position stored under name. The stored FEN
// is parsed again on the way out, so a record corrupted outside this
// package surfaces as an error rather than a broken position.
func (s *Store) LoadPosition(name string) (*SavedPosition, error) {
	var sp SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, ErrPositionNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sp)
		})
	})
	if err != nil {
		return nil, err
	}
	if _, err := board.ParseFEN(sp.FEN); err != nil {
		return nil, fmt.Errorf("stored position %q is corrupt: %w", name, err)
	}
	return &sp, nil
}

// DeletePosition removes the position stored under name.
func (s *Store) DeletePosition(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := positionKey(name)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, ErrPositionNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// ListPositions returns every saved position, ordered by name.
func (s *Store) ListPositions() ([]SavedPosition, error) {
	var out []SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(positionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var sp SavedPosition
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &sp)
			})
			if err != nil {
				return err
			}
			out = append(out, sp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveLastFEN remembers the position the explorer was showing.
func (s *Store) SaveLastFEN(fen string) error {
	if _, err := board.ParseFEN(fen); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyLastPosition), []byte(fen))
	})
}

// LoadLastFEN returns the last shown position, or the starting
// position when none was saved yet.
func (s *Store) LoadLastFEN() (string, error) {
	fen := board.StartFEN

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLastPosition))
		if err == badger.ErrKeyNotFound {
			return nil // Use the start position
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			fen = string(val)
			return nil
		})
	})
	return fen, err
}
