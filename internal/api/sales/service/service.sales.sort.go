package services

// sortFieldPaths là whitelist các khóa sort hợp lệ và đường dẫn field tương ứng
// trong document đã join. Khóa lạ sẽ rơi về sort mặc định theo date.
var sortFieldPaths = map[string]string{
	"customer_name":  "customer.name",
	"product_name":   "product.name",
	"store_location": "store.location",
	"date":           "date",
	"total_amount":   "total_amount",
	"final_amount":   "final_amount",
	"quantity":       "quantity",
	"price_per_unit": "price_per_unit",
	"payment_method": "payment_method",
	"order_status":   "order_status",
}

const defaultSortField = "date"

// resolveSortField trả về đường dẫn sort cho khóa sort_by từ client.
func resolveSortField(field string) string {
	if path, ok := sortFieldPaths[field]; ok {
		return path
	}
	return sortFieldPaths[defaultSortField]
}

// resolveSortOrder trả về 1 khi sort_order là "asc", mọi giá trị khác là -1.
func resolveSortOrder(order string) int {
	if order == "asc" {
		return 1
	}
	return -1
}
