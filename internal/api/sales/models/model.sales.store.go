package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store lưu thông tin cửa hàng (collection stores).
type Store struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	StoreId  string `json:"store_id" bson:"store_id"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	CreatedAt time.Time `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt,omitempty"`
}
