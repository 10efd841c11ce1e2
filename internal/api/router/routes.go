// Package router quản lý việc đăng ký route cho toàn bộ API.
// Route table là tĩnh: mỗi domain package expose một RegisterFunc và
// SetupRoutes duyệt danh sách đó một lần lúc khởi động, không có
// dynamic discovery.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"
)

// RoutePrefix chứa các prefix chuẩn của API
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix trả về prefix mặc định của API
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
		V1:   "/api/v1",
	}
}

// Router bao fiber.App và cung cấp các helper đăng ký route
type Router struct {
	App *fiber.App
}

// NewRouter tạo router mới trên một fiber app
func NewRouter(app *fiber.App) *Router {
	return &Router{App: app}
}

// RegisterRouteWithMiddleware đăng ký route kèm middleware qua Group + Use.
// Fiber v3 không apply middleware truyền inline trong Get/Post/... một cách
// đáng tin cậy, nên middleware phải được gắn qua Use trên group riêng.
//
// Parameters:
//   - router: Fiber router cha (thường là group /api/v1)
//   - prefix: Prefix của group con (ví dụ: "/productos")
//   - method: HTTP method (GET, POST, PUT, DELETE)
//   - path: Path bên trong group (ví dụ: "/crear-producto")
//   - middlewares: Danh sách middleware chạy trước handler
//   - handler: Handler cuối cùng
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) error {
	group := router.Group(prefix)

	for _, mw := range middlewares {
		group.Use(mw)
	}

	switch method {
	case fiber.MethodGet:
		group.Get(path, handler)
	case fiber.MethodPost:
		group.Post(path, handler)
	case fiber.MethodPut:
		group.Put(path, handler)
	case fiber.MethodDelete:
		group.Delete(path, handler)
	default:
		return fmt.Errorf("method không được hỗ trợ: %s", method)
	}

	return nil
}

// RegisterFunc là chữ ký chung để mỗi domain đăng ký route của mình
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes tạo group /api/v1, đăng ký health endpoints và gọi lần lượt
// các RegisterFunc của từng domain.
//
// Returns:
//   - error: Lỗi nếu một domain đăng ký route thất bại
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	prefix := NewRoutePrefix()

	// Health checks nằm ngoài route table của các domain
	app.Get("/health", basehdl.HealthCheck)

	v1 := app.Group(prefix.V1)
	v1.Get("/system/health", basehdl.HealthCheck)

	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return fmt.Errorf("đăng ký route thất bại: %w", err)
		}
	}

	logger.GetAppLogger().Info("Đã đăng ký toàn bộ route")
	return nil
}
