package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"retail_sales/internal/logger"
)

// EnsureSalesIndexes tạo index cho schema dạng separate (mỗi entity 1 collection).
// Index theo đúng truy vấn của listing: filter trên field của sale, join theo
// customer_id/product_id/store_id, text search trên customers.
func EnsureSalesIndexes(ctx context.Context, db *mongo.Database) {
	log := logger.GetAppLogger()

	createIndexes(ctx, db.Collection("sales"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "sale_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
		{Keys: bson.D{{Key: "payment_method", Value: 1}}},
	})

	createIndexes(ctx, db.Collection("customers"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "phone", Value: "text"}}},
	})

	createIndexes(ctx, db.Collection("products"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})

	createIndexes(ctx, db.Collection("stores"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "store_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	log.Info("Ensured indexes for separate sales schema")
}

// EnsureSalesRecordIndexes tạo index cho schema dạng denormalized (1 collection chung).
// Field type phân biệt loại entity nên mọi index đều prefix bằng type.
func EnsureSalesRecordIndexes(ctx context.Context, db *mongo.Database) {
	log := logger.GetAppLogger()

	createIndexes(ctx, db.Collection("sales_records"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "sale_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "product_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "store_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "name", Value: 1}}},
	})

	log.Info("Ensured indexes for denormalized sales schema")
}

// createIndexes tạo danh sách index cho 1 collection, log warning nếu thất bại
// (index đã tồn tại với options khác, quyền hạn chế, ...) nhưng không dừng bootstrap.
func createIndexes(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) {
	if len(models) == 0 {
		return
	}
	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Failed to create indexes for collection %s", coll.Name())
	}
}
