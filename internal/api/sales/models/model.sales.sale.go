// Package models - các model thuộc domain sales (sales, customers, products, stores).
// Mỗi bản ghi sale tham chiếu customer/product/store qua business id dạng chuỗi,
// join được thực hiện bằng aggregation khi đọc.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale lưu một giao dịch bán hàng (collection sales).
type Sale struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	SaleId     string `json:"sale_id" bson:"sale_id"`
	CustomerId string `json:"customer_id" bson:"customer_id"`
	ProductId  string `json:"product_id" bson:"product_id"`
	StoreId    string `json:"store_id" bson:"store_id"`

	Quantity     float64   `json:"quantity" bson:"quantity"`
	PricePerUnit float64   `json:"price_per_unit" bson:"price_per_unit"`
	DiscountPct  float64   `json:"discount_pct" bson:"discount_pct"`
	TotalAmount  float64   `json:"total_amount" bson:"total_amount"`
	FinalAmount  float64   `json:"final_amount" bson:"final_amount"`
	Date         time.Time `json:"date" bson:"date"`

	PaymentMethod string `json:"payment_method" bson:"payment_method"`
	OrderStatus   string `json:"order_status" bson:"order_status"`
	DeliveryType  string `json:"delivery_type" bson:"delivery_type"`

	SalespersonId string `json:"salesperson_id" bson:"salesperson_id"`
	EmployeeName  string `json:"employee_name" bson:"employee_name"`

	CreatedAt time.Time `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt,omitempty"`
}
