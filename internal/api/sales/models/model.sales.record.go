package models

// Schema denormalized: toàn bộ entity nằm chung 1 collection (sales_records),
// phân biệt bằng field type. Document giữ nguyên field của entity tương ứng
// (Sale/Customer/Product/Store) cộng thêm type, nên decode dùng lại các model trên.
const (
	RecordTypeSale     = "sale"
	RecordTypeCustomer = "customer"
	RecordTypeProduct  = "product"
	RecordTypeStore    = "store"
)
