// Package dto - các kiểu dữ liệu trả về cho client của domain sales.
package dto

import (
	"time"

	"retail_sales/internal/api/sales/models"
)

// TransactionRow là một dòng giao dịch đã join đủ customer/product/store.
// Các field reference là pointer và không có omitempty để serialize thành null
// khi bản ghi tham chiếu không tồn tại.
type TransactionRow struct {
	SaleId        string           `json:"sale_id"`
	Date          time.Time        `json:"date"`
	Quantity      float64          `json:"quantity"`
	PricePerUnit  float64          `json:"price_per_unit"`
	TotalAmount   float64          `json:"total_amount"`
	FinalAmount   float64          `json:"final_amount"`
	PaymentMethod string           `json:"payment_method"`
	OrderStatus   string           `json:"order_status"`
	DeliveryType  string           `json:"delivery_type"`
	Store         *models.Store    `json:"store"`
	Product       *models.Product  `json:"product"`
	Customer      *models.Customer `json:"customer"`
	SalespersonId string           `json:"salesperson_id"`
	EmployeeName  string           `json:"employee_name"`
}

// ListMeta chứa thông tin phân trang của danh sách giao dịch.
type ListMeta struct {
	Page       int64 `json:"page"`
	PageSize   int64 `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// TransactionListResult là body trả về của endpoint danh sách giao dịch.
type TransactionListResult struct {
	Data []TransactionRow `json:"data"`
	Meta ListMeta         `json:"meta"`
}
