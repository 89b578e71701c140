package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"sort"
	"sync"
	"time"
)

type memoryObject struct {
	info ObjectInfo
	data []byte
}

// MemoryStore keeps objects in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, contentType string) (ObjectInfo, error) {
	sum := md5.Sum(data)
	info := ObjectInfo{
		Key:         key,
		ContentType: contentType,
		ETag:        `"` + hex.EncodeToString(sum[:]) + `"`,
		Size:        int64(len(data)),
		Uploaded:    time.Now().UTC(),
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[key] = memoryObject{info: info, data: buf}
	s.mu.Unlock()

	return info, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Object, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	return &Object{
		ObjectInfo: obj.info,
		Body:       io.NopCloser(bytes.NewReader(obj.data)),
	}, nil
}

func (s *MemoryStore) List(_ context.Context) ([]ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ObjectInfo, 0, len(s.objects))
	for _, obj := range s.objects {
		out = append(out, obj.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
