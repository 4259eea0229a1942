package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkozyar/catalog-service/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryRepository persists categories in the categories collection.
type CategoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository creates a CategoryRepository backed by the given database.
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection)}
}

// Create inserts the category and returns its generated id.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (string, error) {
	category.InitMeta()
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return "", fmt.Errorf("failed to insert category: %w", err)
	}
	return category.ID.Hex(), nil
}

// FindByID returns the category with the given hex id.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var category model.Category
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", id, err)
	}
	return &category, nil
}

// List returns all categories, newest first.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]model.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// UpdateByID overwrites the mutable fields of an existing category.
func (r *CategoryRepository) UpdateByID(ctx context.Context, id string, category *model.Category) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"name":               category.Name,
		"priceConfiguration": category.PriceConfiguration,
		"attributes":         category.Attributes,
		"hasToppings":        category.HasToppings,
		"updatedAt":          time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes the category with the given hex id.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
