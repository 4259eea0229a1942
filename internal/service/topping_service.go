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
)

// ToppingInput carries the validated topping fields of a create or update.
type ToppingInput struct {
	Name      string
	Price     float64
	TenantID  string
	IsPublish bool
}

// toppingEvent is the payload published to the topping topic.
type toppingEvent struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	TenantID string  `json:"tenantId"`
}

// ToppingService orchestrates topping writes with the same
// storage-repository-broker ordering as products.
type ToppingService struct {
	repo      ToppingRepository
	storage   FileStorage
	publisher EventPublisher
	topic     string
}

// NewToppingService creates a ToppingService publishing to the given topic.
func NewToppingService(repo ToppingRepository, storage FileStorage, publisher EventPublisher, topic string) *ToppingService {
	return &ToppingService{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		topic:     topic,
	}
}

// Create uploads the image, persists the topping and publishes the change
// event, strictly in that order.
func (ts *ToppingService) Create(ctx context.Context, in ToppingInput, image io.Reader) (string, error) {
	if image == nil {
		return "", fmt.Errorf("%w: image is required", ErrInvalidInput)
	}

	imageKey := uuid.NewString()
	if err := ts.storage.Upload(ctx, imageKey, image); err != nil {
		return "", fmt.Errorf("failed to upload topping image: %w", err)
	}

	topping := &model.Topping{
		Name:      in.Name,
		Price:     in.Price,
		TenantID:  in.TenantID,
		IsPublish: in.IsPublish,
		Image:     imageKey,
	}

	id, err := ts.repo.Create(ctx, topping)
	if err != nil {
		return "", fmt.Errorf("failed to persist topping: %w", err)
	}

	metrics.ToppingsCreated.Inc()

	if err := ts.publishEvent(ctx, id, topping.Price, topping.TenantID); err != nil {
		return "", err
	}
	return id, nil
}

// Update persists new field values for an existing topping, optionally
// replacing its image with the same ordering rules as product updates.
func (ts *ToppingService) Update(ctx context.Context, caller auth.Caller, id string, in ToppingInput, image io.Reader) (string, error) {
	topping, err := ts.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := auth.CanModify(caller, topping.TenantID); err != nil {
		return "", err
	}

	imageKey := topping.Image
	var replacedKey string
	if image != nil {
		newKey := uuid.NewString()
		if err := ts.storage.Upload(ctx, newKey, image); err != nil {
			return "", fmt.Errorf("failed to upload topping image: %w", err)
		}
		replacedKey = topping.Image
		imageKey = newKey
	}

	tenantID := topping.TenantID
	if caller.Role == auth.RoleAdmin && in.TenantID != "" {
		tenantID = in.TenantID
	}

	updated := &model.Topping{
		Name:      in.Name,
		Price:     in.Price,
		TenantID:  tenantID,
		IsPublish: in.IsPublish,
		Image:     imageKey,
	}

	if err := ts.repo.UpdateByID(ctx, id, updated); err != nil {
		return "", fmt.Errorf("failed to persist topping: %w", err)
	}

	if replacedKey != "" && replacedKey != imageKey {
		if err := ts.storage.Delete(ctx, replacedKey); err != nil {
			slog.Error("failed to delete replaced topping image",
				slog.Any("err", err),
				slog.String("topping_id", id),
				slog.String("image", replacedKey),
			)
		}
	}

	metrics.ToppingsUpdated.Inc()

	if err := ts.publishEvent(ctx, id, updated.Price, updated.TenantID); err != nil {
		return "", err
	}
	return id, nil
}

// List returns toppings matching the filter with image keys resolved to URIs.
func (ts *ToppingService) List(ctx context.Context, f repository.ToppingFilter) ([]model.Topping, error) {
	toppings, err := ts.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range toppings {
		toppings[i].Image = ts.storage.ObjectURI(toppings[i].Image)
	}
	return toppings, nil
}

// Get returns a single topping with its image key resolved to a URI.
func (ts *ToppingService) Get(ctx context.Context, id string) (*model.Topping, error) {
	topping, err := ts.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	topping.Image = ts.storage.ObjectURI(topping.Image)
	return topping, nil
}

func (ts *ToppingService) publishEvent(ctx context.Context, id string, price float64, tenantID string) error {
	event := toppingEvent{
		ID:       id,
		Price:    price,
		TenantID: tenantID,
	}
	if err := ts.publisher.Publish(ctx, ts.topic, event); err != nil {
		slog.Error("failed to publish topping event",
			slog.Any("err", err),
			slog.String("topping_id", id),
			slog.String("topic", ts.topic),
		)
		return fmt.Errorf("failed to publish topping event: %w", err)
	}
	return nil
}
