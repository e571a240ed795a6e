// Package router - đăng ký route của domain sales.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"retail_sales/internal/api/middleware"
	apirouter "retail_sales/internal/api/router"
	saleshdl "retail_sales/internal/api/sales/handler"
)

// Register đăng ký các route giao dịch bán hàng vào group /api/v1.
// Lưu ý: middleware phải đi qua RegisterRouteWithMiddleware (xem internal/api/router).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	h, err := saleshdl.NewTransactionHandler()
	if err != nil {
		return fmt.Errorf("khởi tạo transaction handler thất bại: %w", err)
	}

	requestLogger := middleware.RequestLogger()

	// Hai route transactions chung một group để request logger chỉ chạy một lần
	// trên mỗi request.
	apirouter.RegisterGroupWithMiddleware(v1, "/transactions", []fiber.Handler{requestLogger}, []apirouter.Route{
		{Method: "GET", Path: "/", Handler: h.HandleListTransactions},
		{Method: "GET", Path: "/:id", Handler: h.HandleGetTransactionById},
	})
	apirouter.RegisterRouteWithMiddleware(v1, "/health", "GET", "/", []fiber.Handler{}, h.HandleHealth)

	return nil
}
