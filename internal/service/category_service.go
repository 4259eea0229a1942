package service

import (
	"context"
	"fmt"

	"github.com/vkozyar/catalog-service/internal/model"
)

// CategoryInput carries the validated category fields of a create or update.
type CategoryInput struct {
	Name               string
	PriceConfiguration map[string]model.CategoryPrice
	Attributes         []model.CategoryAttribute
	HasToppings        bool
}

// CategoryService manages the category catalog. Categories carry no images
// and emit no events, so this is validation plus repository pass-through.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (in CategoryInput) validate() error {
	if in.PriceConfiguration == nil {
		return fmt.Errorf("%w: priceConfiguration is required", ErrInvalidInput)
	}
	for dimension, price := range in.PriceConfiguration {
		if price.PriceType != model.PriceTypeBase && price.PriceType != model.PriceTypeAdditional {
			return fmt.Errorf("%w: unknown price type %q for dimension %q", ErrInvalidInput, price.PriceType, dimension)
		}
	}
	return nil
}

func (in CategoryInput) toModel() *model.Category {
	return &model.Category{
		Name:               in.Name,
		PriceConfiguration: in.PriceConfiguration,
		Attributes:         in.Attributes,
		HasToppings:        in.HasToppings,
	}
}

// Create validates and persists a new category, returning its id.
func (cs *CategoryService) Create(ctx context.Context, in CategoryInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	id, err := cs.repo.Create(ctx, in.toModel())
	if err != nil {
		return "", fmt.Errorf("failed to persist category: %w", err)
	}
	return id, nil
}

// Update validates and persists new field values for an existing category.
func (cs *CategoryService) Update(ctx context.Context, id string, in CategoryInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	return cs.repo.UpdateByID(ctx, id, in.toModel())
}

// List returns all categories.
func (cs *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return cs.repo.List(ctx)
}

// Get returns the category with the given id.
func (cs *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	return cs.repo.FindByID(ctx, id)
}

// Delete removes the category with the given id.
func (cs *CategoryService) Delete(ctx context.Context, id string) error {
	return cs.repo.DeleteByID(ctx, id)
}
