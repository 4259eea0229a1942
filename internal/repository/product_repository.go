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

// ProductRepository persists products in the products collection.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a ProductRepository backed by the given database.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// Create inserts the product and returns its generated id.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (string, error) {
	product.InitMeta()
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return product.ID.Hex(), nil
}

// FindByID returns the product with the given hex id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var product model.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", id, err)
	}
	return &product, nil
}

// UpdateByID overwrites the mutable fields of an existing product.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, product *model.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"name":               product.Name,
		"description":        product.Description,
		"priceConfiguration": product.PriceConfiguration,
		"attributes":         product.Attributes,
		"tenantId":           product.TenantID,
		"categoryId":         product.CategoryID,
		"isPublish":          product.IsPublish,
		"image":              product.Image,
		"updatedAt":          time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one page of products matching the search term and filter,
// newest first, together with the total match count.
func (r *ProductRepository) List(ctx context.Context, searchText string, f ProductFilter, p Pagination) (*model.ProductPage, error) {
	p = p.Normalize()
	filter := buildProductFilter(searchText, f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	opts := options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]model.Product, 0, p.Limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return &model.ProductPage{
		Data:        products,
		Total:       total,
		PageSize:    p.Limit,
		CurrentPage: p.Page,
	}, nil
}
