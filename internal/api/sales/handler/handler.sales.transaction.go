// Package handler - HTTP handler của domain sales.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "retail_sales/internal/api/base/handler"
	services "retail_sales/internal/api/sales/service"
	"retail_sales/internal/common"
)

// TransactionHandler xử lý các request duyệt giao dịch bán hàng.
type TransactionHandler struct {
	service *services.TransactionService
}

// NewTransactionHandler tạo TransactionHandler mới.
func NewTransactionHandler() (*TransactionHandler, error) {
	svc, err := services.NewTransactionService()
	if err != nil {
		return nil, err
	}
	return &TransactionHandler{service: svc}, nil
}

// HandleListTransactions trả về danh sách giao dịch theo query string
// (q, page, sort_by, sort_order và các filter). Body: {data, meta}.
func (h *TransactionHandler) HandleListTransactions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		criteria := services.ParseTransactionCriteria(c.Queries())

		result, err := h.service.List(c.Context(), criteria)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, result)
	})
}

// HandleGetTransactionById trả về một giao dịch theo sale_id.
func (h *TransactionHandler) HandleGetTransactionById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		row, err := h.service.GetBySaleId(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, row)
	})
}

// HandleHealth trả về trạng thái service, dùng cho probe.
func (h *TransactionHandler) HandleHealth(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"status": "ok",
	})
}
