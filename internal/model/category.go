package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Price types a category can declare for a pricing dimension.
const (
	PriceTypeBase       = "base"
	PriceTypeAdditional = "additional"
)

// Category describes a product family and the pricing dimensions and
// attributes its products must provide.
type Category struct {
	ID                 primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Name               string                   `bson:"name" json:"name"`
	PriceConfiguration map[string]CategoryPrice `bson:"priceConfiguration" json:"priceConfiguration"`
	Attributes         []CategoryAttribute      `bson:"attributes" json:"attributes"`
	HasToppings        bool                     `bson:"hasToppings" json:"hasToppings"`
	CreatedAt          time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time                `bson:"updatedAt" json:"updatedAt"`
}

// CategoryPrice declares how one pricing dimension behaves and which options
// products of this category may offer for it.
type CategoryPrice struct {
	PriceType        string   `bson:"priceType" json:"priceType"`
	AvailableOptions []string `bson:"availableOptions" json:"availableOptions"`
}

// CategoryAttribute declares an attribute products of this category carry.
type CategoryAttribute struct {
	Name             string `bson:"name" json:"name"`
	WidgetType       string `bson:"widgetType" json:"widgetType"`
	DefaultValue     any    `bson:"defaultValue" json:"defaultValue"`
	AvailableOptions []any  `bson:"availableOptions" json:"availableOptions"`
}

// InitMeta initializes the category metadata including ID and timestamps.
func (c *Category) InitMeta() {
	c.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
}
