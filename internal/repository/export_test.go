package repository

import "go.mongodb.org/mongo-driver/bson"

// BuildProductFilter exposes the filter builder for tests.
func BuildProductFilter(searchText string, f ProductFilter) bson.M {
	return buildProductFilter(searchText, f)
}

// BuildToppingFilter exposes the filter builder for tests.
func BuildToppingFilter(f ToppingFilter) bson.M {
	return buildToppingFilter(f)
}
