// Package services - Test nghiệp vụ duyệt giao dịch với adapter giả lập.
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
)

func init() {
	global.InitValidator()
}

// stubAdapter giả lập SchemaAdapter, trả về dữ liệu đóng sẵn qua fill.
type stubAdapter struct {
	baseMatch bson.M

	searchIds   []string
	searchErr   error
	searchCalls int

	aggCalls     int
	lastPipeline []bson.M
	fill         func(results interface{})
}

func (a *stubAdapter) BaseMatch() bson.M {
	m := bson.M{}
	for k, v := range a.baseMatch {
		m[k] = v
	}
	return m
}

func (a *stubAdapter) JoinStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{"as": "customer"}},
		{"$unwind": bson.M{"path": "$customer"}},
		{"$lookup": bson.M{"as": "product"}},
		{"$unwind": bson.M{"path": "$product"}},
		{"$lookup": bson.M{"as": "store"}},
		{"$unwind": bson.M{"path": "$store"}},
	}
}

func (a *stubAdapter) SearchCustomerIds(ctx context.Context, term string) ([]string, error) {
	a.searchCalls++
	return a.searchIds, a.searchErr
}

func (a *stubAdapter) Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error {
	a.aggCalls++
	a.lastPipeline = pipeline
	if a.fill != nil {
		a.fill(results)
	}
	return nil
}

func sampleDoc(saleId string) transactionDoc {
	return transactionDoc{
		Sale: models.Sale{
			SaleId:        saleId,
			CustomerId:    "C001",
			ProductId:     "P001",
			StoreId:       "S001",
			Quantity:      2,
			PricePerUnit:  250000,
			TotalAmount:   500000,
			FinalAmount:   500000,
			Date:          time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			PaymentMethod: "Cash",
			OrderStatus:   "Completed",
			DeliveryType:  "Pickup",
			SalespersonId: "E01",
			EmployeeName:  "Pham Van Dung",
		},
		Customer: &models.Customer{CustomerId: "C001", Name: "Nguyen Van An"},
		Product:  &models.Product{ProductId: "P001", Name: "Wireless Mouse"},
		Store:    &models.Store{StoreId: "S001", Location: "Hanoi"},
	}
}

func TestList_SearchWithoutMatchesShortCircuits(t *testing.T) {
	adapter := &stubAdapter{searchIds: []string{}}
	svc := NewTransactionServiceWithAdapter(adapter)

	result, err := svc.List(context.Background(), TransactionCriteria{
		Search: "khong ton tai", Page: 2, SortField: "date", SortOrder: -1,
	})
	if err != nil {
		t.Fatalf("List trả lỗi: %v", err)
	}

	if adapter.aggCalls != 0 {
		t.Error("không có khách hàng khớp thì không được chạy aggregation")
	}
	if len(result.Data) != 0 {
		t.Errorf("data phải rỗng, nhận %d dòng", len(result.Data))
	}
	if result.Meta.Page != 2 || result.Meta.PageSize != PageSize {
		t.Errorf("meta giữ nguyên page/page_size: %+v", result.Meta)
	}
	if result.Meta.TotalItems != 0 || result.Meta.TotalPages != 0 {
		t.Errorf("meta phải báo 0 kết quả: %+v", result.Meta)
	}
}

func TestList_SearchErrorPropagates(t *testing.T) {
	wantErr := common.ErrConnection
	adapter := &stubAdapter{searchErr: wantErr}
	svc := NewTransactionServiceWithAdapter(adapter)

	_, err := svc.List(context.Background(), TransactionCriteria{Search: "an", Page: 1, SortField: "date", SortOrder: -1})
	if !errors.Is(err, wantErr) {
		t.Errorf("lỗi tìm kiếm phải được trả nguyên vẹn, nhận %v", err)
	}
	if adapter.aggCalls != 0 {
		t.Error("tìm kiếm lỗi thì không được chạy aggregation")
	}
}

func TestList_FacetMathAndRows(t *testing.T) {
	adapter := &stubAdapter{
		fill: func(results interface{}) {
			facets := results.(*[]facetResult)
			docs := make([]transactionDoc, 7)
			for i := range docs {
				docs[i] = sampleDoc("T000" + string(rune('1'+i)))
			}
			*facets = []facetResult{{
				Data:       docs,
				TotalCount: []countDoc{{Count: 25}},
			}}
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	result, err := svc.List(context.Background(), TransactionCriteria{Page: 3, SortField: "date", SortOrder: -1})
	if err != nil {
		t.Fatalf("List trả lỗi: %v", err)
	}

	if len(result.Data) != 7 {
		t.Errorf("phải có 7 dòng, nhận %d", len(result.Data))
	}
	if result.Meta.TotalItems != 25 {
		t.Errorf("total_items phải là 25, nhận %d", result.Meta.TotalItems)
	}
	if result.Meta.TotalPages != 3 {
		t.Errorf("25 items với page_size 10 phải là 3 trang, nhận %d", result.Meta.TotalPages)
	}
	if result.Meta.Page != 3 || result.Meta.PageSize != 10 {
		t.Errorf("meta page/page_size sai: %+v", result.Meta)
	}

	row := result.Data[0]
	if row.SaleId != "T0001" || row.Customer == nil || row.Customer.Name != "Nguyen Van An" {
		t.Errorf("row đầu chuẩn hóa sai: %+v", row)
	}
	if row.Product == nil || row.Store == nil {
		t.Error("product/store đã join phải có mặt trong row")
	}
}

func TestList_MissingReferenceStaysNull(t *testing.T) {
	doc := sampleDoc("T0004")
	doc.Customer = nil // customer_id không tồn tại, unwind preserveNull giữ lại sale

	adapter := &stubAdapter{
		fill: func(results interface{}) {
			facets := results.(*[]facetResult)
			*facets = []facetResult{{Data: []transactionDoc{doc}, TotalCount: []countDoc{{Count: 1}}}}
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	result, err := svc.List(context.Background(), TransactionCriteria{Page: 1, SortField: "date", SortOrder: -1})
	if err != nil {
		t.Fatalf("List trả lỗi: %v", err)
	}
	if len(result.Data) != 1 {
		t.Fatalf("sale thiếu customer vẫn phải được trả về, nhận %d dòng", len(result.Data))
	}
	if result.Data[0].Customer != nil {
		t.Error("customer không tồn tại phải là nil để serialize thành null")
	}
	if result.Data[0].Store == nil {
		t.Error("store vẫn phải có mặt")
	}
}

func TestList_PageBeyondRange(t *testing.T) {
	adapter := &stubAdapter{
		fill: func(results interface{}) {
			facets := results.(*[]facetResult)
			*facets = []facetResult{{Data: nil, TotalCount: []countDoc{{Count: 25}}}}
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	result, err := svc.List(context.Background(), TransactionCriteria{Page: 99, SortField: "date", SortOrder: -1})
	if err != nil {
		t.Fatalf("List trả lỗi: %v", err)
	}
	if len(result.Data) != 0 {
		t.Errorf("trang vượt quá phạm vi phải trả data rỗng, nhận %d", len(result.Data))
	}
	if result.Meta.TotalItems != 25 || result.Meta.TotalPages != 3 {
		t.Errorf("meta vẫn phải phản ánh tổng số thật: %+v", result.Meta)
	}
}

func TestList_EmptyFacetResult(t *testing.T) {
	adapter := &stubAdapter{
		fill: func(results interface{}) {
			facets := results.(*[]facetResult)
			*facets = []facetResult{}
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	result, err := svc.List(context.Background(), TransactionCriteria{Page: 1, SortField: "date", SortOrder: -1})
	if err != nil {
		t.Fatalf("List trả lỗi: %v", err)
	}
	if len(result.Data) != 0 || result.Meta.TotalItems != 0 || result.Meta.TotalPages != 0 {
		t.Errorf("facet rỗng phải về trang rỗng: %+v", result.Meta)
	}
}

func TestGetBySaleId_InvalidIdRejected(t *testing.T) {
	adapter := &stubAdapter{}
	svc := NewTransactionServiceWithAdapter(adapter)

	for _, bad := range []string{"", "abc$def", "a.b", "có dấu"} {
		_, err := svc.GetBySaleId(context.Background(), bad)
		if err == nil {
			t.Errorf("sale_id %q phải bị từ chối", bad)
			continue
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusBadRequest {
			t.Errorf("sale_id %q phải trả lỗi 400, nhận %v", bad, err)
		}
	}
	if adapter.aggCalls != 0 {
		t.Error("sale_id không hợp lệ thì không được chạy aggregation")
	}
}

func TestGetBySaleId_NotFound(t *testing.T) {
	adapter := &stubAdapter{
		fill: func(results interface{}) {
			docs := results.(*[]transactionDoc)
			*docs = nil
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	_, err := svc.GetBySaleId(context.Background(), "T9999")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("không tìm thấy phải trả ErrNotFound, nhận %v", err)
	}
}

func TestGetBySaleId_ReturnsJoinedRow(t *testing.T) {
	adapter := &stubAdapter{
		fill: func(results interface{}) {
			docs := results.(*[]transactionDoc)
			*docs = []transactionDoc{sampleDoc("T0001")}
		},
	}
	svc := NewTransactionServiceWithAdapter(adapter)

	row, err := svc.GetBySaleId(context.Background(), "T0001")
	if err != nil {
		t.Fatalf("GetBySaleId trả lỗi: %v", err)
	}
	if row.SaleId != "T0001" || row.Customer == nil || row.Product == nil || row.Store == nil {
		t.Errorf("row trả về thiếu dữ liệu join: %+v", row)
	}

	// Pipeline chi tiết phải kết thúc bằng $limit
	last := adapter.lastPipeline[len(adapter.lastPipeline)-1]
	if stageName(last) != "$limit" {
		t.Errorf("pipeline chi tiết phải có $limit cuối, nhận %v", last)
	}
}
