// Package registrorouter đăng ký route cho registro hạt nhân legacy.
package registrorouter

import (
	"github.com/gofiber/fiber/v3"

	registrohdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/handler"
	registrosvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/service"
	apirouter "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/router"
)

// Register đăng ký toàn bộ route registro legacy dưới /api/v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reactorSvc, err := registrosvc.NewReactorService()
	if err != nil {
		return err
	}
	tipoReactorSvc, err := registrosvc.NewTipoReactorService()
	if err != nil {
		return err
	}
	ubicacionSvc, err := registrosvc.NewUbicacionService()
	if err != nil {
		return err
	}

	reactorHdl := registrohdl.NewReactorHandler(reactorSvc)
	tipoReactorHdl := registrohdl.NewTipoReactorHandler(tipoReactorSvc)
	ubicacionHdl := registrohdl.NewUbicacionHandler(ubicacionSvc)

	routes := []struct {
		prefix  string
		method  string
		path    string
		handler fiber.Handler
	}{
		{"/reactores", fiber.MethodGet, "/reactores-registrados", reactorHdl.FindAll},

		{"/tipo-reactores", fiber.MethodGet, "/tipo-reactores-registrados", tipoReactorHdl.FindAll},
		{"/tipo-reactores", fiber.MethodGet, "/tipo-reactores-identificador/:id", tipoReactorHdl.ReactoresPorTipo},

		// Route đầu tiên liệt kê ubicaciones dù tên nói về reactores,
		// giữ nguyên tên để không gãy client cũ
		{"/ubicaciones", fiber.MethodGet, "/reactores-registrados-ubicacion", ubicacionHdl.FindAll},
		{"/ubicaciones", fiber.MethodGet, "/ubicacion-reactor-identificador/:id", ubicacionHdl.FindOneById},
		{"/ubicaciones", fiber.MethodGet, "/ubicaciones-reactores-registrados/:id", ubicacionHdl.ReactoresEnUbicacion},

		// Route xóa reactor nằm dưới prefix /tiendas vì lịch sử codebase
		{"/tiendas", fiber.MethodDelete, "/eliminar-reactor/:id", reactorHdl.DeleteById},
	}

	for _, route := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, route.prefix, route.method, route.path, nil, route.handler); err != nil {
			return err
		}
	}

	return nil
}
