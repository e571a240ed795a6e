package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// LƯU Ý: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 không gọi middleware khi truyền trực tiếp trong route:
//
//	router.Get("/path", middleware, handler)  // middleware bị bỏ qua!
//
// Phải đăng ký qua group + .Use():
//
//	RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{mw}, handler)
//
// Mọi route trong project đều phải đi qua RegisterRouteWithMiddleware.
// ============================================================================

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// Route mô tả một route trong group: method + path tương đối so với prefix.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua group + .Use()
// (cách duy nhất hoạt động đúng trong Fiber v3, xem comment đầu file).
// Lưu ý: mỗi lần gọi tạo một group mới trên prefix, nên middleware cũng được
// gắn thêm một lần. Nhiều route cùng prefix dùng chung middleware phải đi qua
// RegisterGroupWithMiddleware để middleware không chạy lặp trên mỗi request.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	RegisterGroupWithMiddleware(router, prefix, middlewares, []Route{
		{Method: method, Path: path, Handler: handler},
	})
}

// RegisterGroupWithMiddleware tạo đúng một group cho prefix, gắn middleware
// một lần rồi đăng ký các route trong group đó.
func RegisterGroupWithMiddleware(router fiber.Router, prefix string, middlewares []fiber.Handler, routes []Route) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	for _, rt := range routes {
		switch rt.Method {
		case "GET":
			routeGroup.Get(rt.Path, rt.Handler)
		case "POST":
			routeGroup.Post(rt.Path, rt.Handler)
		case "PUT":
			routeGroup.Put(rt.Path, rt.Handler)
		case "DELETE":
			routeGroup.Delete(rt.Path, rt.Handler)
		}
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt
// Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
