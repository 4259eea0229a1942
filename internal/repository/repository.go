// Package repository persists catalog documents in MongoDB.
package repository

import "errors"

// Collection names.
const (
	productsCollection   = "products"
	categoriesCollection = "categories"
	toppingsCollection   = "toppings"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidID is returned when an identifier is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid resource id")
)
