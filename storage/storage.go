// Package storage persists analysis verdicts in a BadgerDB keyed by FEN,
// so repeated queries for the same position skip re-analysis.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Verdict is one cached analysis result.
type Verdict struct {
	FEN       string    `json:"fen"`
	Checkmate bool      `json:"checkmate"`
	MateIn    int       `json:"mate_in"` // -1 when no mate is forced
	Move      string    `json:"move,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Store wraps BadgerDB for persistent verdict storage.
type Store struct {
	db *badger.DB
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get loads the cached verdict for fen. The second result is false when
// the position has not been analyzed before.
func (s *Store) Get(fen string) (*Verdict, bool, error) {
	var v Verdict
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fen))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil || !found {
		return nil, false, err
	}
	return &v, true, nil
}

// Put stores the verdict under its FEN.
func (s *Store) Put(v *Verdict) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.FEN), data)
	})
}
