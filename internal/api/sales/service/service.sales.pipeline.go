package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildSaleMatch tạo điều kiện lọc trên field của sale, áp TRƯỚC join
// để thu hẹp số document phải lookup.
func buildSaleMatch(c TransactionCriteria) bson.M {
	match := bson.M{}

	if len(c.PaymentMethods) > 0 {
		match["payment_method"] = bson.M{"$in": c.PaymentMethods}
	}
	if len(c.OrderStatuses) > 0 {
		match["order_status"] = bson.M{"$in": c.OrderStatuses}
	}
	if c.DateFrom != nil || c.DateTo != nil {
		dateRange := bson.M{}
		if c.DateFrom != nil {
			dateRange["$gte"] = *c.DateFrom
		}
		if c.DateTo != nil {
			dateRange["$lte"] = *c.DateTo
		}
		match["date"] = dateRange
	}
	if c.QuantityMin != nil || c.QuantityMax != nil {
		qtyRange := bson.M{}
		if c.QuantityMin != nil {
			qtyRange["$gte"] = *c.QuantityMin
		}
		if c.QuantityMax != nil {
			qtyRange["$lte"] = *c.QuantityMax
		}
		match["quantity"] = qtyRange
	}

	return match
}

// buildJoinedMatch tạo điều kiện lọc trên field của customer/product, áp SAU join.
// customerIds là kết quả resolve từ tìm kiếm q (nil khi không tìm kiếm).
func buildJoinedMatch(c TransactionCriteria, customerIds []string) bson.M {
	match := bson.M{}

	if customerIds != nil {
		match["customer_id"] = bson.M{"$in": customerIds}
	}
	if len(c.Regions) > 0 {
		match["customer.region"] = caseInsensitiveIn(c.Regions)
	}
	if len(c.Genders) > 0 {
		match["customer.gender"] = caseInsensitiveIn(c.Genders)
	}
	if c.AgeMin != nil || c.AgeMax != nil {
		ageRange := bson.M{}
		if c.AgeMin != nil {
			ageRange["$gte"] = *c.AgeMin
		}
		if c.AgeMax != nil {
			ageRange["$lte"] = *c.AgeMax
		}
		match["customer.age"] = ageRange
	}
	if len(c.Categories) > 0 {
		match["product.category"] = caseInsensitiveIn(c.Categories)
	}
	if len(c.Tags) > 0 {
		match["product.tags"] = caseInsensitiveIn(c.Tags)
	}

	return match
}

// caseInsensitiveIn tạo điều kiện $in khớp chính xác nhưng không phân biệt hoa thường,
// bằng regex neo đầu/cuối chuỗi và escape ký tự đặc biệt.
func caseInsensitiveIn(values []string) bson.M {
	patterns := make([]primitive.Regex, 0, len(values))
	for _, v := range values {
		patterns = append(patterns, primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(v) + "$",
			Options: "i",
		})
	}
	return bson.M{"$in": patterns}
}

// buildListPipeline lắp pipeline hoàn chỉnh cho danh sách giao dịch:
// match trước join -> lookup -> match sau join -> sort -> facet (data + totalCount).
// _id desc làm tiebreaker để thứ tự ổn định giữa các trang.
func buildListPipeline(c TransactionCriteria, adapter SchemaAdapter, customerIds []string) []bson.M {
	pipeline := []bson.M{}

	saleMatch := adapter.BaseMatch()
	for k, v := range buildSaleMatch(c) {
		saleMatch[k] = v
	}
	if len(saleMatch) > 0 {
		pipeline = append(pipeline, bson.M{"$match": saleMatch})
	}

	pipeline = append(pipeline, adapter.JoinStages()...)

	if joinedMatch := buildJoinedMatch(c, customerIds); len(joinedMatch) > 0 {
		pipeline = append(pipeline, bson.M{"$match": joinedMatch})
	}

	skip := (c.Page - 1) * PageSize
	pipeline = append(pipeline,
		bson.M{"$sort": bson.D{
			{Key: c.SortField, Value: c.SortOrder},
			{Key: "_id", Value: -1},
		}},
		bson.M{"$facet": bson.M{
			"data": []bson.M{
				{"$skip": skip},
				{"$limit": PageSize},
			},
			"totalCount": []bson.M{
				{"$count": "count"},
			},
		}},
	)

	return pipeline
}

// buildDetailPipeline lắp pipeline lấy một giao dịch theo sale_id, join đủ 3 chiều.
func buildDetailPipeline(saleId string, adapter SchemaAdapter) []bson.M {
	match := adapter.BaseMatch()
	match["sale_id"] = saleId

	pipeline := []bson.M{{"$match": match}}
	pipeline = append(pipeline, adapter.JoinStages()...)
	pipeline = append(pipeline, bson.M{"$limit": 1})
	return pipeline
}
