package mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/storage"
)

// MockStorage mocks an artifact store. Put drains the reader before the
// call is matched and keeps the bytes, so tests can inspect uploaded
// artifacts with Uploaded.
type MockStorage struct {
	mock.Mock

	mu      sync.Mutex
	uploads map[string][]byte
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	m.mu.Lock()
	if m.uploads == nil {
		m.uploads = make(map[string][]byte)
	}
	m.uploads[key] = body
	m.mu.Unlock()

	args := m.Called(ctx, key, opt)
	if args.Get(0) == nil {
		return storage.ObjectInfo{Key: key, Size: int64(len(body)), ContentType: opt.ContentType}, args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

// Uploaded returns the bytes last written under key.
func (m *MockStorage) Uploaded(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.uploads[key]
	return b, ok
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
