package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu thông tin sản phẩm (collection products).
type Product struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	ProductId string   `json:"product_id" bson:"product_id"`
	Name      string   `json:"name,omitempty" bson:"name,omitempty"`
	Brand     string   `json:"brand,omitempty" bson:"brand,omitempty"`
	Category  string   `json:"category,omitempty" bson:"category,omitempty"`
	Tags      []string `json:"tags,omitempty" bson:"tags,omitempty"`

	CreatedAt time.Time `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt,omitempty"`
}
