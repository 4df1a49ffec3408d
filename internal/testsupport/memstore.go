package testsupport

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned by a MemStore whose Fail flag is set.
var ErrStoreUnavailable = errors.New("store unavailable")

// MemStore is an in-memory key/blob store for engine tests. Setting Fail
// makes every operation error, simulating an unavailable backing store.
type MemStore struct {
	Data map[string][]byte
	Fail bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Data: map[string][]byte{}}
}

func (m *MemStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.Fail {
		return nil, false, ErrStoreUnavailable
	}
	value, ok := m.Data[key]
	return value, ok, nil
}

func (m *MemStore) Set(_ context.Context, key string, value []byte) error {
	if m.Fail {
		return ErrStoreUnavailable
	}
	m.Data[key] = append([]byte{}, value...)
	return nil
}

func (m *MemStore) SetAll(_ context.Context, entries map[string][]byte) error {
	if m.Fail {
		return ErrStoreUnavailable
	}
	for key, value := range entries {
		m.Data[key] = append([]byte{}, value...)
	}
	return nil
}

func (m *MemStore) Remove(_ context.Context, key string) error {
	if m.Fail {
		return ErrStoreUnavailable
	}
	delete(m.Data, key)
	return nil
}

func (m *MemStore) Clear(_ context.Context) error {
	if m.Fail {
		return ErrStoreUnavailable
	}
	m.Data = map[string][]byte{}
	return nil
}
