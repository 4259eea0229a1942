package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product document.
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Description        string             `bson:"description" json:"description"`
	PriceConfiguration PriceConfiguration `bson:"priceConfiguration" json:"priceConfiguration"`
	Attributes         []Attribute        `bson:"attributes" json:"attributes"`
	TenantID           string             `bson:"tenantId" json:"tenantId"`
	CategoryID         primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	IsPublish          bool               `bson:"isPublish" json:"isPublish"`
	Image              string             `bson:"image" json:"image"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Attribute is a single named product attribute, e.g. {"isHit", true}.
type Attribute struct {
	Name  string `bson:"name" json:"name"`
	Value any    `bson:"value" json:"value"`
}

// InitMeta initializes the product metadata including ID and timestamps.
func (p *Product) InitMeta() {
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
}

// ProductPage is one page of a product listing together with its totals.
type ProductPage struct {
	Data        []Product `json:"data"`
	Total       int64     `json:"total"`
	PageSize    int       `json:"pageSize"`
	CurrentPage int       `json:"currentPage"`
}
