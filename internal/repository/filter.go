package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter narrows a product listing. Zero values mean "no constraint".
type ProductFilter struct {
	TenantID      string
	CategoryID    primitive.ObjectID
	OnlyPublished bool
}

// ToppingFilter narrows a topping listing. Zero values mean "no constraint".
type ToppingFilter struct {
	TenantID      string
	OnlyPublished bool
}

// buildProductFilter translates a search term and filter into a Mongo filter
// document. Search relies on the text index over name and description.
func buildProductFilter(searchText string, f ProductFilter) bson.M {
	filter := bson.M{}
	if searchText != "" {
		filter["$text"] = bson.M{"$search": searchText}
	}
	if f.OnlyPublished {
		filter["isPublish"] = true
	}
	if f.TenantID != "" {
		filter["tenantId"] = f.TenantID
	}
	if !f.CategoryID.IsZero() {
		filter["categoryId"] = f.CategoryID
	}
	return filter
}

func buildToppingFilter(f ToppingFilter) bson.M {
	filter := bson.M{}
	if f.OnlyPublished {
		filter["isPublish"] = true
	}
	if f.TenantID != "" {
		filter["tenantId"] = f.TenantID
	}
	return filter
}
