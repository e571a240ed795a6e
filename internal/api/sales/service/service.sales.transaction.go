package services

import (
	"context"

	"retail_sales/config"
	salesdto "retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
)

// TransactionService xử lý nghiệp vụ duyệt giao dịch bán hàng đã join
// customer/product/store. Mọi truy cập dữ liệu đi qua SchemaAdapter.
type TransactionService struct {
	adapter SchemaAdapter
}

// NewTransactionService tạo TransactionService, chọn adapter theo cấu hình SALES_SCHEMA.
func NewTransactionService() (*TransactionService, error) {
	var adapter SchemaAdapter
	var err error

	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.SalesSchema == config.SchemaDenormalized {
		adapter, err = NewDenormalizedAdapter()
	} else {
		adapter, err = NewSeparateCollectionsAdapter()
	}
	if err != nil {
		return nil, err
	}
	return &TransactionService{adapter: adapter}, nil
}

// NewTransactionServiceWithAdapter tạo service với adapter cho trước.
func NewTransactionServiceWithAdapter(adapter SchemaAdapter) *TransactionService {
	return &TransactionService{adapter: adapter}
}

// transactionDoc là document sale sau khi join, decode từ kết quả aggregation.
type transactionDoc struct {
	models.Sale `bson:",inline"`

	Customer *models.Customer `bson:"customer,omitempty"`
	Product  *models.Product  `bson:"product,omitempty"`
	Store    *models.Store    `bson:"store,omitempty"`
}

// facetResult là phần tử duy nhất trả về từ stage $facet.
type facetResult struct {
	Data       []transactionDoc `bson:"data"`
	TotalCount []countDoc       `bson:"totalCount"`
}

type countDoc struct {
	Count int64 `bson:"count"`
}

// List trả về một trang giao dịch theo tiêu chí lọc/sắp xếp.
// Khi có tìm kiếm q mà không có khách hàng nào khớp, trả về trang rỗng
// luôn mà không chạy aggregation.
func (s *TransactionService) List(ctx context.Context, criteria TransactionCriteria) (*salesdto.TransactionListResult, error) {
	var customerIds []string
	if criteria.Search != "" {
		ids, err := s.adapter.SearchCustomerIds(ctx, criteria.Search)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &salesdto.TransactionListResult{
				Data: []salesdto.TransactionRow{},
				Meta: salesdto.ListMeta{
					Page:       criteria.Page,
					PageSize:   PageSize,
					TotalItems: 0,
					TotalPages: 0,
				},
			}, nil
		}
		customerIds = ids
	}

	pipeline := buildListPipeline(criteria, s.adapter, customerIds)

	var facets []facetResult
	if err := s.adapter.Aggregate(ctx, pipeline, &facets); err != nil {
		return nil, err
	}

	var docs []transactionDoc
	var total int64
	if len(facets) > 0 {
		docs = facets[0].Data
		if len(facets[0].TotalCount) > 0 {
			total = facets[0].TotalCount[0].Count
		}
	}

	rows := make([]salesdto.TransactionRow, 0, len(docs))
	for i := range docs {
		rows = append(rows, toTransactionRow(&docs[i]))
	}

	var totalPages int64
	if total > 0 {
		totalPages = (total + PageSize - 1) / PageSize
	}

	return &salesdto.TransactionListResult{
		Data: rows,
		Meta: salesdto.ListMeta{
			Page:       criteria.Page,
			PageSize:   PageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetBySaleId trả về một giao dịch theo sale_id, join đủ 3 chiều.
func (s *TransactionService) GetBySaleId(ctx context.Context, saleId string) (*salesdto.TransactionRow, error) {
	if err := global.Validate.Var(saleId, "required,sale_id"); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"sale_id không hợp lệ",
			common.StatusBadRequest,
			err,
		)
	}

	pipeline := buildDetailPipeline(saleId, s.adapter)

	var docs []transactionDoc
	if err := s.adapter.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, common.ErrNotFound
	}

	row := toTransactionRow(&docs[0])
	return &row, nil
}

// toTransactionRow chuẩn hóa document đã join thành row trả về cho client.
// Reference không tồn tại giữ nguyên nil để serialize thành null.
func toTransactionRow(doc *transactionDoc) salesdto.TransactionRow {
	return salesdto.TransactionRow{
		SaleId:        doc.SaleId,
		Date:          doc.Date,
		Quantity:      doc.Quantity,
		PricePerUnit:  doc.PricePerUnit,
		TotalAmount:   doc.TotalAmount,
		FinalAmount:   doc.FinalAmount,
		PaymentMethod: doc.PaymentMethod,
		OrderStatus:   doc.OrderStatus,
		DeliveryType:  doc.DeliveryType,
		Store:         doc.Store,
		Product:       doc.Product,
		Customer:      doc.Customer,
		SalespersonId: doc.SalespersonId,
		EmployeeName:  doc.EmployeeName,
	}
}
