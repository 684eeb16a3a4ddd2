package storage

import (
	"context"
	"sync"
)

// MockStorage is an in-memory implementation of ObjectStorage for testing
type MockStorage struct {
	mu      sync.RWMutex
	objects map[string]*mockObject
}

type mockObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

// NewMockStorage creates a new MockStorage instance
func NewMockStorage() *MockStorage {
	return &MockStorage{
		objects: make(map[string]*mockObject),
	}
}

// Store implements ObjectStorage.Store
func (m *MockStorage) Store(ctx context.Context, key string, data []byte, opts *StoreOptions) error {
	if key == "" {
		return NewStorageError("Store", key, ErrInvalidKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if opts != nil && !opts.Overwrite {
		if _, exists := m.objects[key]; exists {
			return NewStorageError("Store", key, ErrObjectAlreadyExists)
		}
	}

	obj := &mockObject{
		data:        append([]byte(nil), data...),
		contentType: "application/octet-stream",
	}
	if opts != nil {
		if opts.ContentType != "" {
			obj.contentType = opts.ContentType
		}
		if opts.Metadata != nil {
			obj.metadata = make(map[string]string, len(opts.Metadata))
			for k, v := range opts.Metadata {
				obj.metadata[k] = v
			}
		}
	}

	m.objects[key] = obj
	return nil
}

// Retrieve implements ObjectStorage.Retrieve
func (m *MockStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, NewStorageError("Retrieve", key, ErrInvalidKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, exists := m.objects[key]
	if !exists {
		return nil, NewStorageError("Retrieve", key, ErrObjectNotFound)
	}

	return append([]byte(nil), obj.data...), nil
}

// Exists implements ObjectStorage.Exists
func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, NewStorageError("Exists", key, ErrInvalidKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.objects[key]
	return exists, nil
}

// Delete implements ObjectStorage.Delete
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return NewStorageError("Delete", key, ErrInvalidKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.objects[key]; !exists {
		return NewStorageError("Delete", key, ErrObjectNotFound)
	}

	delete(m.objects, key)
	return nil
}

// ContentType returns the content type recorded for key
func (m *MockStorage) ContentType(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if obj, ok := m.objects[key]; ok {
		return obj.contentType
	}
	return ""
}

// Count returns the number of stored objects
func (m *MockStorage) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Close implements ObjectStorage.Close
func (m *MockStorage) Close() error {
	return nil
}
