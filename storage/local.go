package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type localMetadata struct {
	Key         string    `json:"key"`
	Hash        string    `json:"hash"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (m localMetadata) info() ObjectInfo {
	return ObjectInfo{
		Key:         m.Key,
		ContentType: m.ContentType,
		ETag:        `"` + m.Hash + `"`,
		Size:        m.Size,
		Uploaded:    m.UploadedAt,
	}
}

// LocalStore writes object bodies to files under root and keeps their
// metadata in a badger database next to them. Files are named by the sha256
// of their key, so keys never touch the filesystem directly.
type LocalStore struct {
	root string
	db   *badger.DB
	mu   sync.RWMutex
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Join(root, "metadata_badger"))
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata database: %w", err)
	}

	return &LocalStore{root: root, db: db}, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (s *LocalStore) Put(_ context.Context, key string, data []byte, contentType string) (ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := hashKey(key)
	if err := os.WriteFile(filepath.Join(s.root, hash), data, 0o644); err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to write object: %w", err)
	}

	meta := localMetadata{
		Key:         key,
		Hash:        hash,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedAt:  time.Now().UTC(),
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		raw, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return ObjectInfo{}, err
	}

	return meta.info(), nil
}

func (s *LocalStore) metadata(key string) (localMetadata, error) {
	var meta localMetadata
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})
	return meta, err
}

func (s *LocalStore) Get(_ context.Context, key string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, err := s.metadata(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.root, meta.Hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	return &Object{ObjectInfo: meta.info(), Body: file}, nil
}

func (s *LocalStore) List(_ context.Context) ([]ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ObjectInfo
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var meta localMetadata
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &meta)
			})
			if err != nil {
				return fmt.Errorf("failed to read metadata: %w", err)
			}
			out = append(out, meta.info())
		}
		return nil
	})
	return out, err
}

func (s *LocalStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
