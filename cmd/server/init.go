package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"retail_sales/config"
	"retail_sales/internal/database"
	"retail_sales/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Sales = "sales"
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Stores = "stores"

	// Schema denormalized: tất cả entity trong 1 collection
	global.MongoDB_ColNames.SalesRecords = "sales_records"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validator: sale_id)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatal("Failed to load server configuration")
	}
	logrus.Infof("Initialized server config (schema: %s)", global.MongoDB_ServerConfig.SalesSchema)
}

// Hàm khởi tạo kết nối database và đảm bảo index
func initDatabase_MongoDB() {
	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client

	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if global.MongoDB_ServerConfig.SalesSchema == config.SchemaDenormalized {
		database.EnsureSalesRecordIndexes(context.TODO(), db)
	} else {
		database.EnsureSalesIndexes(context.TODO(), db)
	}

	logrus.Info("Initialized MongoDB connection")
}
