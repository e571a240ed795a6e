// Script nạp dữ liệu mẫu vào MongoDB để thử API.
// Chạy: go run scripts/seed_sample_data.go
// Nạp cho cả 2 dạng schema: SALES_SCHEMA=separate (mặc định) hoặc denormalized.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func loadEnv() {
	tryPaths := []string{".env", "config/env/development.env"}
	cwd, _ := os.Getwd()
	for _, p := range tryPaths {
		full := filepath.Join(cwd, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
	}
}

func day(offset int) time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

var customers = []bson.M{
	{"customer_id": "C001", "name": "Nguyen Van An", "phone": "0901000001", "gender": "Male", "age": 31, "region": "North", "customer_type": "regular"},
	{"customer_id": "C002", "name": "Tran Thi Binh", "phone": "0901000002", "gender": "Female", "age": 26, "region": "South", "customer_type": "vip"},
	{"customer_id": "C003", "name": "Le Minh Chau", "phone": "0901000003", "gender": "Female", "age": 42, "region": "Central", "customer_type": "regular"},
}

var products = []bson.M{
	{"product_id": "P001", "name": "Wireless Mouse", "brand": "Logi", "category": "Electronics", "tags": []string{"accessories", "wireless"}},
	{"product_id": "P002", "name": "Green Tea Box", "brand": "HighTea", "category": "Grocery", "tags": []string{"drink", "organic"}},
	{"product_id": "P003", "name": "Running Shoes", "brand": "FastFeet", "category": "Fashion", "tags": []string{"sport"}},
}

var stores = []bson.M{
	{"store_id": "S001", "location": "Hanoi"},
	{"store_id": "S002", "location": "Ho Chi Minh City"},
}

var sales = []bson.M{
	{"sale_id": "T0001", "customer_id": "C001", "product_id": "P001", "store_id": "S001", "quantity": 2, "price_per_unit": 250000, "discount_pct": 0, "total_amount": 500000, "final_amount": 500000, "date": day(0), "payment_method": "Cash", "order_status": "Completed", "delivery_type": "Pickup", "salesperson_id": "E01", "employee_name": "Pham Van Dung"},
	{"sale_id": "T0002", "customer_id": "C002", "product_id": "P002", "store_id": "S002", "quantity": 5, "price_per_unit": 80000, "discount_pct": 10, "total_amount": 400000, "final_amount": 360000, "date": day(1), "payment_method": "Card", "order_status": "Completed", "delivery_type": "Home Delivery", "salesperson_id": "E02", "employee_name": "Hoang Thi Em"},
	{"sale_id": "T0003", "customer_id": "C003", "product_id": "P003", "store_id": "S001", "quantity": 1, "price_per_unit": 1200000, "discount_pct": 0, "total_amount": 1200000, "final_amount": 1200000, "date": day(2), "payment_method": "Card", "order_status": "Pending", "delivery_type": "Home Delivery", "salesperson_id": "E01", "employee_name": "Pham Van Dung"},
	// Sale tham chiếu customer không tồn tại, để thử row có customer null
	{"sale_id": "T0004", "customer_id": "C999", "product_id": "P001", "store_id": "S002", "quantity": 3, "price_per_unit": 250000, "discount_pct": 5, "total_amount": 750000, "final_amount": 712500, "date": day(3), "payment_method": "Cash", "order_status": "Cancelled", "delivery_type": "Pickup", "salesperson_id": "E03", "employee_name": "Vu Van Phuc"},
}

func seedCollection(ctx context.Context, db *mongo.Database, name string, docs []bson.M) {
	coll := db.Collection(name)
	if err := coll.Drop(ctx); err != nil {
		log.Printf("Drop %s: %v", name, err)
	}
	items := make([]interface{}, 0, len(docs))
	now := time.Now()
	for _, d := range docs {
		d["createdAt"] = now
		d["updatedAt"] = now
		items = append(items, d)
	}
	if _, err := coll.InsertMany(ctx, items); err != nil {
		log.Fatalf("Insert %s: %v", name, err)
	}
	log.Printf("Seeded %d documents into %s", len(items), name)
}

func withType(docs []bson.M, recordType string) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		copied := bson.M{"type": recordType}
		for k, v := range d {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out
}

func main() {
	loadEnv()

	uri := os.Getenv("MONGODB_CONNECTION_URI")
	if uri == "" {
		log.Fatal("MONGODB_CONNECTION_URI missing in env")
	}
	dbName := os.Getenv("MONGODB_DBNAME")
	if dbName == "" {
		dbName = "retail_sales"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Connect MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	if os.Getenv("SALES_SCHEMA") == "denormalized" {
		var records []bson.M
		records = append(records, withType(sales, "sale")...)
		records = append(records, withType(customers, "customer")...)
		records = append(records, withType(products, "product")...)
		records = append(records, withType(stores, "store")...)
		seedCollection(ctx, db, "sales_records", records)
	} else {
		seedCollection(ctx, db, "customers", customers)
		seedCollection(ctx, db, "products", products)
		seedCollection(ctx, db, "stores", stores)
		seedCollection(ctx, db, "sales", sales)
	}

	log.Println("Seeding completed")
}
