package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vkozyar/catalog-service/internal/auth"
	"github.com/vkozyar/catalog-service/internal/metrics"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductInput carries the validated product fields of a create or update.
type ProductInput struct {
	Name               string
	Description        string
	PriceConfiguration model.PriceConfiguration
	Attributes         []model.Attribute
	TenantID           string
	CategoryID         primitive.ObjectID
	IsPublish          bool
}

// productEvent is the payload published to the product topic. The price
// configuration crosses the wire as a plain nested mapping.
type productEvent struct {
	ID                 string         `json:"id"`
	PriceConfiguration map[string]any `json:"priceConfiguration"`
}

// ProductService orchestrates product writes across object storage, the
// repository and the broker, and serves the product read paths.
type ProductService struct {
	repo      ProductRepository
	storage   FileStorage
	publisher EventPublisher
	topic     string
}

// NewProductService creates a ProductService publishing to the given topic.
func NewProductService(repo ProductRepository, storage FileStorage, publisher EventPublisher, topic string) *ProductService {
	return &ProductService{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		topic:     topic,
	}
}

func (in ProductInput) validate() error {
	if in.PriceConfiguration == nil {
		return fmt.Errorf("%w: priceConfiguration is required", ErrInvalidInput)
	}
	if in.Attributes == nil {
		return fmt.Errorf("%w: attributes are required", ErrInvalidInput)
	}
	return nil
}

// Create uploads the image, persists the product and publishes the change
// event, strictly in that order. An upload failure aborts with no record and
// no event. A publish failure is surfaced to the caller; the persisted record
// is kept since the store is the source of truth.
func (ps *ProductService) Create(ctx context.Context, in ProductInput, image io.Reader) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	if image == nil {
		return "", fmt.Errorf("%w: image is required", ErrInvalidInput)
	}

	imageKey := uuid.NewString()
	if err := ps.storage.Upload(ctx, imageKey, image); err != nil {
		return "", fmt.Errorf("failed to upload product image: %w", err)
	}

	product := &model.Product{
		Name:               in.Name,
		Description:        in.Description,
		PriceConfiguration: in.PriceConfiguration,
		Attributes:         in.Attributes,
		TenantID:           in.TenantID,
		CategoryID:         in.CategoryID,
		IsPublish:          in.IsPublish,
		Image:              imageKey,
	}

	// A failure past this point orphans the uploaded blob. The key is not
	// referenced anywhere, so the blob is unreachable garbage, not a bug.
	id, err := ps.repo.Create(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to persist product: %w", err)
	}

	metrics.ProductsCreated.Inc()

	if err := ps.publishEvent(ctx, id, in.PriceConfiguration); err != nil {
		return "", err
	}
	return id, nil
}

// Update persists new field values for an existing product, optionally
// replacing its image. The replaced blob is deleted only after the record
// references the new key; if persistence fails the old blob stays put.
func (ps *ProductService) Update(ctx context.Context, caller auth.Caller, id string, in ProductInput, image io.Reader) (string, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := auth.CanModify(caller, product.TenantID); err != nil {
		return "", err
	}

	if err := in.validate(); err != nil {
		return "", err
	}

	imageKey := product.Image
	var replacedKey string
	if image != nil {
		newKey := uuid.NewString()
		if err := ps.storage.Upload(ctx, newKey, image); err != nil {
			return "", fmt.Errorf("failed to upload product image: %w", err)
		}
		replacedKey = product.Image
		imageKey = newKey
	}

	// Only admins may move a product to another tenant.
	tenantID := product.TenantID
	if caller.Role == auth.RoleAdmin && in.TenantID != "" {
		tenantID = in.TenantID
	}

	updated := &model.Product{
		Name:               in.Name,
		Description:        in.Description,
		PriceConfiguration: in.PriceConfiguration,
		Attributes:         in.Attributes,
		TenantID:           tenantID,
		CategoryID:         in.CategoryID,
		IsPublish:          in.IsPublish,
		Image:              imageKey,
	}

	if err := ps.repo.UpdateByID(ctx, id, updated); err != nil {
		return "", fmt.Errorf("failed to persist product: %w", err)
	}

	if replacedKey != "" && replacedKey != imageKey {
		// The record already points at the new blob; losing this delete only
		// orphans the old one.
		if err := ps.storage.Delete(ctx, replacedKey); err != nil {
			slog.Error("failed to delete replaced product image",
				slog.Any("err", err),
				slog.String("product_id", id),
				slog.String("image", replacedKey),
			)
		}
	}

	metrics.ProductsUpdated.Inc()

	if err := ps.publishEvent(ctx, id, in.PriceConfiguration); err != nil {
		return "", err
	}
	return id, nil
}

// List returns one page of products with every image key resolved to a URI.
func (ps *ProductService) List(ctx context.Context, searchText string, f repository.ProductFilter, p repository.Pagination) (*model.ProductPage, error) {
	page, err := ps.repo.List(ctx, searchText, f, p)
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		page.Data[i].Image = ps.storage.ObjectURI(page.Data[i].Image)
	}
	return page, nil
}

// Get returns a single product with its image key resolved to a URI.
func (ps *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Image = ps.storage.ObjectURI(product.Image)
	return product, nil
}

func (ps *ProductService) publishEvent(ctx context.Context, id string, pc model.PriceConfiguration) error {
	event := productEvent{
		ID:                 id,
		PriceConfiguration: pc.Flatten(),
	}
	if err := ps.publisher.Publish(ctx, ps.topic, event); err != nil {
		slog.Error("failed to publish product event",
			slog.Any("err", err),
			slog.String("product_id", id),
			slog.String("topic", ps.topic),
		)
		return fmt.Errorf("failed to publish product event: %w", err)
	}
	return nil
}
