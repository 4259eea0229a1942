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

// ToppingRepository persists toppings in the toppings collection.
type ToppingRepository struct {
	coll *mongo.Collection
}

// NewToppingRepository creates a ToppingRepository backed by the given database.
func NewToppingRepository(db *mongo.Database) *ToppingRepository {
	return &ToppingRepository{coll: db.Collection(toppingsCollection)}
}

// Create inserts the topping and returns its generated id.
func (r *ToppingRepository) Create(ctx context.Context, topping *model.Topping) (string, error) {
	topping.InitMeta()
	if _, err := r.coll.InsertOne(ctx, topping); err != nil {
		return "", fmt.Errorf("failed to insert topping: %w", err)
	}
	return topping.ID.Hex(), nil
}

// FindByID returns the topping with the given hex id.
func (r *ToppingRepository) FindByID(ctx context.Context, id string) (*model.Topping, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var topping model.Topping
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&topping)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find topping %s: %w", id, err)
	}
	return &topping, nil
}

// UpdateByID overwrites the mutable fields of an existing topping.
func (r *ToppingRepository) UpdateByID(ctx context.Context, id string, topping *model.Topping) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"name":      topping.Name,
		"price":     topping.Price,
		"tenantId":  topping.TenantID,
		"isPublish": topping.IsPublish,
		"image":     topping.Image,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update topping %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns toppings matching the filter, newest first.
func (r *ToppingRepository) List(ctx context.Context, f ToppingFilter) ([]model.Topping, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, buildToppingFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list toppings: %w", err)
	}

	toppings := make([]model.Topping, 0)
	if err := cursor.All(ctx, &toppings); err != nil {
		return nil, fmt.Errorf("failed to decode toppings: %w", err)
	}
	return toppings, nil
}
