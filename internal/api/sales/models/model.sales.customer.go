package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lưu thông tin khách hàng (collection customers).
// name + phone có text index phục vụ tìm kiếm q.
type Customer struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	CustomerId   string  `json:"customer_id" bson:"customer_id"`
	Name         string  `json:"name" bson:"name"`
	Phone        string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Gender       string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Age          float64 `json:"age,omitempty" bson:"age,omitempty"`
	Region       string  `json:"region,omitempty" bson:"region,omitempty"`
	CustomerType string  `json:"customer_type,omitempty" bson:"customer_type,omitempty"`

	CreatedAt time.Time `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt,omitempty"`
}
