// Package service implements the catalog write orchestration and read paths.
// Writes touch three external systems in a fixed order: object storage first,
// then the repository, then the broker. Each step only runs after the
// previous one succeeded.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
)

// ErrInvalidInput is returned when an input fails semantic validation that
// must hold before any side effect is performed.
var ErrInvalidInput = errors.New("invalid input")

// ProductRepository is the persistence capability the product service needs.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (string, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	UpdateByID(ctx context.Context, id string, product *model.Product) error
	List(ctx context.Context, searchText string, f repository.ProductFilter, p repository.Pagination) (*model.ProductPage, error)
}

// CategoryRepository is the persistence capability the category service needs.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (string, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	UpdateByID(ctx context.Context, id string, category *model.Category) error
	DeleteByID(ctx context.Context, id string) error
}

// ToppingRepository is the persistence capability the topping service needs.
type ToppingRepository interface {
	Create(ctx context.Context, topping *model.Topping) (string, error)
	FindByID(ctx context.Context, id string) (*model.Topping, error)
	UpdateByID(ctx context.Context, id string, topping *model.Topping) error
	List(ctx context.Context, f repository.ToppingFilter) ([]model.Topping, error)
}

// FileStorage stores image blobs by opaque key and derives their public URIs.
type FileStorage interface {
	Upload(ctx context.Context, key string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	ObjectURI(key string) string
}

// EventPublisher delivers change events to a named topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
