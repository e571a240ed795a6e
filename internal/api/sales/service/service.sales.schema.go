package services

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "retail_sales/internal/api/base/service"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
)

// SchemaAdapter trừu tượng hóa cách dữ liệu bán hàng được lưu trong MongoDB.
// Pipeline builder chỉ phụ thuộc interface này nên logic lọc/sắp xếp/phân trang
// dùng chung cho cả hai cách tổ chức schema.
type SchemaAdapter interface {
	// BaseMatch trả về điều kiện chọn document sale trong collection gốc.
	BaseMatch() bson.M

	// JoinStages trả về các stage lookup + unwind join customer/product/store.
	JoinStages() []bson.M

	// SearchCustomerIds resolve từ khóa tìm kiếm thành danh sách customer_id khớp.
	SearchCustomerIds(ctx context.Context, term string) ([]string, error)

	// Aggregate chạy pipeline trên collection chứa sale và decode vào results.
	Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error
}

// customerIdDoc dùng decode projection chỉ lấy customer_id.
type customerIdDoc struct {
	CustomerId string `bson:"customer_id"`
}

// customerTextSearchFilter tạo filter $text trên text index (name + phone) của customers.
func customerTextSearchFilter(term string) bson.M {
	return bson.M{"$text": bson.M{"$search": term}}
}

// customerRegexSearchFilter tạo filter regex không phân biệt hoa thường trên
// name/phone của các bản ghi type customer. Dùng cho collection chung vì
// không tạo được text index riêng theo type.
func customerRegexSearchFilter(term string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{
		"type": models.RecordTypeCustomer,
		"$or": []bson.M{
			{"name": pattern},
			{"phone": pattern},
		},
	}
}

// findCustomerIds chạy filter trên service customer, chỉ projection customer_id
// rồi trích danh sách id.
func findCustomerIds(ctx context.Context, svc *basesvc.BaseServiceMongoImpl[customerIdDoc], filter bson.M) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"customer_id": 1})
	docs, err := svc.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.CustomerId)
	}
	return ids, nil
}

// ============================================================
// Schema separate: mỗi entity một collection riêng
// ============================================================

// SeparateCollectionsAdapter làm việc với 4 collection sales/customers/products/stores.
// Tìm kiếm q dùng text index (name + phone) trên customers.
type SeparateCollectionsAdapter struct {
	sales     *basesvc.BaseServiceMongoImpl[models.Sale]
	customers *basesvc.BaseServiceMongoImpl[customerIdDoc]
}

// NewSeparateCollectionsAdapter tạo adapter từ các collection đã đăng ký trong registry.
func NewSeparateCollectionsAdapter() (*SeparateCollectionsAdapter, error) {
	salesColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sales)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Sales, common.ErrNotFound)
	}
	customersColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &SeparateCollectionsAdapter{
		sales:     basesvc.NewBaseServiceMongo[models.Sale](salesColl),
		customers: basesvc.NewBaseServiceMongo[customerIdDoc](customersColl),
	}, nil
}

func (a *SeparateCollectionsAdapter) BaseMatch() bson.M {
	return bson.M{}
}

func (a *SeparateCollectionsAdapter) JoinStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Customers,
			"localField":   "customer_id",
			"foreignField": "customer_id",
			"as":           "customer",
		}},
		{"$unwind": bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}},

		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "product_id",
			"foreignField": "product_id",
			"as":           "product",
		}},
		{"$unwind": bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}},

		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Stores,
			"localField":   "store_id",
			"foreignField": "store_id",
			"as":           "store",
		}},
		{"$unwind": bson.M{"path": "$store", "preserveNullAndEmptyArrays": true}},
	}
}

// SearchCustomerIds tìm customer khớp term qua $text trên text index (name + phone).
func (a *SeparateCollectionsAdapter) SearchCustomerIds(ctx context.Context, term string) ([]string, error) {
	return findCustomerIds(ctx, a.customers, customerTextSearchFilter(term))
}

func (a *SeparateCollectionsAdapter) Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error {
	return a.sales.Aggregate(ctx, pipeline, results, options.Aggregate().SetAllowDiskUse(true))
}

// ============================================================
// Schema denormalized: mọi entity chung 1 collection, phân biệt bằng type
// ============================================================

// DenormalizedAdapter làm việc với collection sales_records duy nhất.
// Lookup phải dùng dạng pipeline (let + $expr) để lọc thêm theo type,
// và $limit 1 vì foreignField không unique trong collection chung.
type DenormalizedAdapter struct {
	records   *basesvc.BaseServiceMongoImpl[bson.M]
	customers *basesvc.BaseServiceMongoImpl[customerIdDoc]
}

// NewDenormalizedAdapter tạo adapter từ collection sales_records trong registry.
func NewDenormalizedAdapter() (*DenormalizedAdapter, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesRecords)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalesRecords, common.ErrNotFound)
	}
	return &DenormalizedAdapter{
		records:   basesvc.NewBaseServiceMongo[bson.M](coll),
		customers: basesvc.NewBaseServiceMongo[customerIdDoc](coll),
	}, nil
}

func (a *DenormalizedAdapter) BaseMatch() bson.M {
	return bson.M{"type": models.RecordTypeSale}
}

func (a *DenormalizedAdapter) JoinStages() []bson.M {
	return []bson.M{
		a.selfLookup("customer", "customer_id", models.RecordTypeCustomer),
		{"$unwind": bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}},

		a.selfLookup("product", "product_id", models.RecordTypeProduct),
		{"$unwind": bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}},

		a.selfLookup("store", "store_id", models.RecordTypeStore),
		{"$unwind": bson.M{"path": "$store", "preserveNullAndEmptyArrays": true}},
	}
}

// selfLookup tạo stage lookup vào chính collection sales_records,
// khớp field id tương ứng và lọc đúng type của entity.
func (a *DenormalizedAdapter) selfLookup(as string, idField string, recordType string) bson.M {
	return bson.M{"$lookup": bson.M{
		"from": global.MongoDB_ColNames.SalesRecords,
		"let":  bson.M{"ref_id": "$" + idField},
		"pipeline": []bson.M{
			{"$match": bson.M{
				"type":  recordType,
				"$expr": bson.M{"$eq": []interface{}{"$" + idField, "$$ref_id"}},
			}},
			{"$limit": 1},
		},
		"as": as,
	}}
}

// SearchCustomerIds tìm customer theo term bằng regex không phân biệt hoa thường
// trên name/phone. Collection chung không có text index per-type nên không dùng $text.
func (a *DenormalizedAdapter) SearchCustomerIds(ctx context.Context, term string) ([]string, error) {
	return findCustomerIds(ctx, a.customers, customerRegexSearchFilter(term))
}

func (a *DenormalizedAdapter) Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error {
	return a.records.Aggregate(ctx, pipeline, results, options.Aggregate().SetAllowDiskUse(true))
}
