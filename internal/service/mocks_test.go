package service

import (
	"ProtectAdmin/internal/model"
	"ProtectAdmin/internal/pkg/mongo"
	"ProtectAdmin/internal/repository"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
	// Uploads records object names in call order
	Uploads []string
}

func (m *MockObjectStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	m.Uploads = append(m.Uploads, objectName)
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) UploadWithProgress(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string, onProgress func(float64)) (string, error) {
	m.Uploads = append(m.Uploads, objectName)
	if onProgress != nil {
		onProgress(0.5)
		onProgress(1.0)
	}
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectNameFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

var _ ObjectStorage = (*MockObjectStorage)(nil)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, collection string, id string, action string) {
	m.Called(ctx, collection, id, action)
}

var _ EventPublisher = (*MockEventPublisher)(nil)

// MockPostRepo is a mock implementation of mongo.PostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Insert(ctx context.Context, post *mongo.Post) (string, error) {
	args := m.Called(ctx, post)
	return args.String(0), args.Error(1)
}

func (m *MockPostRepo) Update(ctx context.Context, id string, post *mongo.Post) error {
	args := m.Called(ctx, id, post)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) GetByID(ctx context.Context, id string) (*mongo.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Post), args.Error(1)
}

func (m *MockPostRepo) List(ctx context.Context) ([]*mongo.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Post), args.Error(1)
}

var _ mongo.PostRepo = (*MockPostRepo)(nil)

// MockProductRepo is a mock implementation of mongo.ProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Insert(ctx context.Context, product *mongo.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, id string, product *mongo.Product) error {
	args := m.Called(ctx, id, product)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*mongo.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context) ([]*mongo.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Product), args.Error(1)
}

var _ mongo.ProductRepo = (*MockProductRepo)(nil)

// MockGalleryRepo is a mock implementation of mongo.GalleryRepo
type MockGalleryRepo struct {
	mock.Mock
}

func (m *MockGalleryRepo) Insert(ctx context.Context, photo *mongo.GalleryPhoto) (string, error) {
	args := m.Called(ctx, photo)
	return args.String(0), args.Error(1)
}

func (m *MockGalleryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepo) GetByID(ctx context.Context, id string) (*mongo.GalleryPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.GalleryPhoto), args.Error(1)
}

func (m *MockGalleryRepo) List(ctx context.Context) ([]*mongo.GalleryPhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.GalleryPhoto), args.Error(1)
}

var _ mongo.GalleryRepo = (*MockGalleryRepo)(nil)

// MockVideoRepo is a mock implementation of mongo.VideoRepo
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Insert(ctx context.Context, video *mongo.Video) (string, error) {
	args := m.Called(ctx, video)
	return args.String(0), args.Error(1)
}

func (m *MockVideoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id string) (*mongo.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Video), args.Error(1)
}

func (m *MockVideoRepo) List(ctx context.Context) ([]*mongo.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Video), args.Error(1)
}

var _ mongo.VideoRepo = (*MockVideoRepo)(nil)

// MockAdminUserRepo is a mock implementation of repository.AdminUserRepo
type MockAdminUserRepo struct {
	mock.Mock
}

func (m *MockAdminUserRepo) GetByID(ctx context.Context, id uint64) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepo) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepo) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

var _ repository.AdminUserRepo = (*MockAdminUserRepo)(nil)

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSessionStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

var _ SessionStore = (*MockSessionStore)(nil)

// MockMailSender is a mock implementation of MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendPasswordReset(ctx context.Context, to string, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

var _ MailSender = (*MockMailSender)(nil)
