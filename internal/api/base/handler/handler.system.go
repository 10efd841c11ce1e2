package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
)

// HealthCheck trả về trạng thái của server và kết nối MongoDB.
// Endpoint này được rate limiter và recover middleware bỏ qua.
func HealthCheck(c fiber.Ctx) error {
	status := fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if global.MongoDB_Session != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			status["status"] = "degraded"
			status["mongodb"] = "down"
			return JSONResponse(c, common.StatusServiceUnavailable, status)
		}
		status["mongodb"] = "up"
	}

	return JSONResponse(c, common.StatusOK, status)
}
