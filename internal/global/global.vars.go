package global

import (
	"retail_sales/config"
	"retail_sales/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Sales_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Sales_CollectionName struct {
	Sales        string // Tên collection cho giao dịch bán hàng
	Customers    string // Tên collection cho khách hàng
	Products     string // Tên collection cho sản phẩm
	Stores       string // Tên collection cho cửa hàng
	SalesRecords string // Tên collection denormalized chứa tất cả entity (phân biệt bằng field type)
}

// Các biến toàn cục
var Validate *validator.Validate                                                      // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                     // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                        // Cấu hình của server
var MongoDB_ColNames MongoDB_Sales_CollectionName = *new(MongoDB_Sales_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
