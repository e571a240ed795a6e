package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/global"
)

func init() {
	// Các adapter đọc tên collection từ global khi dựng stage lookup.
	global.MongoDB_ColNames.Sales = "sales"
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Stores = "stores"
	global.MongoDB_ColNames.SalesRecords = "sales_records"
}

func TestCustomerTextSearchFilter(t *testing.T) {
	filter := customerTextSearchFilter("nguyen van a")

	text, ok := filter["$text"].(bson.M)
	if !ok {
		t.Fatalf("filter phải dùng $text, nhận được %v", filter)
	}
	if text["$search"] != "nguyen van a" {
		t.Errorf("$search phải là term gốc, nhận được %v", text["$search"])
	}
}

func TestCustomerRegexSearchFilter(t *testing.T) {
	filter := customerRegexSearchFilter("a.b")

	if filter["type"] != models.RecordTypeCustomer {
		t.Errorf("filter phải giới hạn type customer, nhận được %v", filter["type"])
	}

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("$or phải có 2 nhánh name/phone, nhận được %v", filter["$or"])
	}

	namePattern, ok := or[0]["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("nhánh name phải là regex, nhận được %T", or[0]["name"])
	}
	if namePattern.Pattern != `a\.b` {
		t.Errorf("ký tự đặc biệt trong term phải được escape, nhận được %q", namePattern.Pattern)
	}
	if namePattern.Options != "i" {
		t.Errorf("regex phải không phân biệt hoa thường, options = %q", namePattern.Options)
	}

	phonePattern, ok := or[1]["phone"].(primitive.Regex)
	if !ok {
		t.Fatalf("nhánh phone phải là regex, nhận được %T", or[1]["phone"])
	}
	if phonePattern.Pattern != `a\.b` || phonePattern.Options != "i" {
		t.Errorf("regex phone không đúng: %q (options %q)", phonePattern.Pattern, phonePattern.Options)
	}
}

func TestSeparateCollectionsAdapter_JoinStages(t *testing.T) {
	a := &SeparateCollectionsAdapter{}
	stages := a.JoinStages()

	if len(stages) != 6 {
		t.Fatalf("phải có 6 stage (3 cặp lookup + unwind), nhận được %d", len(stages))
	}

	joins := []struct {
		as   string
		from string
		id   string
	}{
		{"customer", "customers", "customer_id"},
		{"product", "products", "product_id"},
		{"store", "stores", "store_id"},
	}

	for i, j := range joins {
		lookup, ok := stages[2*i]["$lookup"].(bson.M)
		if !ok {
			t.Fatalf("stage %d phải là $lookup, nhận được %v", 2*i, stages[2*i])
		}
		if lookup["from"] != j.from {
			t.Errorf("join %s: from phải là %s, nhận được %v", j.as, j.from, lookup["from"])
		}
		if lookup["localField"] != j.id || lookup["foreignField"] != j.id {
			t.Errorf("join %s phải khớp theo %s, nhận được local=%v foreign=%v",
				j.as, j.id, lookup["localField"], lookup["foreignField"])
		}
		if lookup["as"] != j.as {
			t.Errorf("join %s: as phải là %s, nhận được %v", j.as, j.as, lookup["as"])
		}

		unwind, ok := stages[2*i+1]["$unwind"].(bson.M)
		if !ok {
			t.Fatalf("stage %d phải là $unwind, nhận được %v", 2*i+1, stages[2*i+1])
		}
		if unwind["path"] != "$"+j.as {
			t.Errorf("unwind %s: path phải là $%s, nhận được %v", j.as, j.as, unwind["path"])
		}
		if unwind["preserveNullAndEmptyArrays"] != true {
			t.Errorf("unwind %s phải giữ sale khi thiếu tham chiếu", j.as)
		}
	}
}

// Lookup vào chính collection chung phải lọc đúng type của entity và cắt về
// tối đa 1 document, vì field id không unique trong collection chung.
func TestDenormalizedAdapter_SelfLookupStages(t *testing.T) {
	a := &DenormalizedAdapter{}
	stages := a.JoinStages()

	if len(stages) != 6 {
		t.Fatalf("phải có 6 stage (3 cặp lookup + unwind), nhận được %d", len(stages))
	}

	joins := []struct {
		as         string
		id         string
		recordType string
	}{
		{"customer", "customer_id", models.RecordTypeCustomer},
		{"product", "product_id", models.RecordTypeProduct},
		{"store", "store_id", models.RecordTypeStore},
	}

	for i, j := range joins {
		lookup, ok := stages[2*i]["$lookup"].(bson.M)
		if !ok {
			t.Fatalf("stage %d phải là $lookup, nhận được %v", 2*i, stages[2*i])
		}
		if lookup["from"] != "sales_records" {
			t.Errorf("join %s phải lookup vào chính sales_records, nhận được %v", j.as, lookup["from"])
		}

		let, ok := lookup["let"].(bson.M)
		if !ok || let["ref_id"] != "$"+j.id {
			t.Errorf("join %s: let phải bind ref_id = $%s, nhận được %v", j.as, j.id, lookup["let"])
		}

		pipeline, ok := lookup["pipeline"].([]bson.M)
		if !ok || len(pipeline) != 2 {
			t.Fatalf("join %s: sub-pipeline phải có 2 stage, nhận được %v", j.as, lookup["pipeline"])
		}

		match, ok := pipeline[0]["$match"].(bson.M)
		if !ok {
			t.Fatalf("join %s: stage đầu sub-pipeline phải là $match", j.as)
		}
		if match["type"] != j.recordType {
			t.Errorf("join %s: $match phải lọc type %s, nhận được %v", j.as, j.recordType, match["type"])
		}
		expr, ok := match["$expr"].(bson.M)
		if !ok {
			t.Fatalf("join %s: $match phải dùng $expr để so id, nhận được %v", j.as, match)
		}
		eq, ok := expr["$eq"].([]interface{})
		if !ok || len(eq) != 2 || eq[0] != "$"+j.id || eq[1] != "$$ref_id" {
			t.Errorf("join %s: $expr phải so $%s với $$ref_id, nhận được %v", j.as, j.id, expr["$eq"])
		}

		if pipeline[1]["$limit"] != 1 {
			t.Errorf("join %s: sub-pipeline phải kết thúc bằng $limit 1, nhận được %v", j.as, pipeline[1])
		}

		unwind, ok := stages[2*i+1]["$unwind"].(bson.M)
		if !ok {
			t.Fatalf("stage %d phải là $unwind, nhận được %v", 2*i+1, stages[2*i+1])
		}
		if unwind["path"] != "$"+j.as || unwind["preserveNullAndEmptyArrays"] != true {
			t.Errorf("unwind %s phải giữ sale khi thiếu tham chiếu, nhận được %v", j.as, unwind)
		}
	}
}
