package service_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
)

// MockProductRepository is a mock implementation of service.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateByID(ctx context.Context, id string, product *model.Product) error {
	args := m.Called(ctx, id, product)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, searchText string, f repository.ProductFilter, p repository.Pagination) (*model.ProductPage, error) {
	args := m.Called(ctx, searchText, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductPage), args.Error(1)
}

// MockCategoryRepository is a mock implementation of service.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) (string, error) {
	args := m.Called(ctx, category)
	return args.String(0), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateByID(ctx context.Context, id string, category *model.Category) error {
	args := m.Called(ctx, id, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockToppingRepository is a mock implementation of service.ToppingRepository
type MockToppingRepository struct {
	mock.Mock
}

func (m *MockToppingRepository) Create(ctx context.Context, topping *model.Topping) (string, error) {
	args := m.Called(ctx, topping)
	return args.String(0), args.Error(1)
}

func (m *MockToppingRepository) FindByID(ctx context.Context, id string) (*model.Topping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Topping), args.Error(1)
}

func (m *MockToppingRepository) UpdateByID(ctx context.Context, id string, topping *model.Topping) error {
	args := m.Called(ctx, id, topping)
	return args.Error(0)
}

func (m *MockToppingRepository) List(ctx context.Context, f repository.ToppingFilter) ([]model.Topping, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Topping), args.Error(1)
}

// MockFileStorage is a mock implementation of service.FileStorage
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Upload(ctx context.Context, key string, body io.Reader) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockFileStorage) ObjectURI(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// MockEventPublisher is a mock implementation of service.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}
