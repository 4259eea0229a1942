package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Topping is an add-on a tenant offers alongside its products.
type Topping struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	TenantID  string             `bson:"tenantId" json:"tenantId"`
	IsPublish bool               `bson:"isPublish" json:"isPublish"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InitMeta initializes the topping metadata including ID and timestamps.
func (t *Topping) InitMeta() {
	t.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
}
