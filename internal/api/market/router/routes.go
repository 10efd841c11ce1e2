// Package marketrouter đăng ký route cho domain minimarket.
package marketrouter

import (
	"github.com/gofiber/fiber/v3"

	markethdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/handler"
	apirouter "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/router"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/imagestore"
)

// newImageStore tạo ImageStore từ config toàn cục.
// Không có private key thì trả về nil, producto sẽ lưu imagen nguyên văn.
func newImageStore() imagestore.ImageStore {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.ImageKit_PrivateKey == "" {
		return nil
	}
	return imagestore.NewImageKitStore(cfg.ImageKit_PrivateKey, cfg.ImageKit_PublicKey, cfg.ImageKit_EndpointURL)
}

// Register đăng ký toàn bộ route minimarket dưới /api/v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productoHdl, err := markethdl.NewProductoHandler(newImageStore())
	if err != nil {
		return err
	}
	tiendaHdl, err := markethdl.NewTiendaHandler()
	if err != nil {
		return err
	}
	pedidoHdl, err := markethdl.NewPedidoHandler()
	if err != nil {
		return err
	}
	inventarioHdl, err := markethdl.NewInventarioHandler()
	if err != nil {
		return err
	}
	usuarioHdl, err := markethdl.NewUsuarioHandler()
	if err != nil {
		return err
	}

	routes := []struct {
		prefix  string
		method  string
		path    string
		handler fiber.Handler
	}{
		// Producto không có route xóa
		{"/productos", fiber.MethodPost, "/crear-producto", productoHdl.InsertOne},
		{"/productos", fiber.MethodGet, "/producto-identificador/:id", productoHdl.FindOneById},
		{"/productos", fiber.MethodGet, "/productos-registrados", productoHdl.FindAll},
		{"/productos", fiber.MethodPut, "/actualizar-producto/:id", productoHdl.UpdateById},

		{"/tiendas", fiber.MethodPost, "/crear-tienda", tiendaHdl.InsertOne},
		{"/tiendas", fiber.MethodGet, "/tienda-identificador/:id", tiendaHdl.FindOneByKey("id_usuario_tendero")},
		{"/tiendas", fiber.MethodGet, "/tiendas-registradas", tiendaHdl.FindAll},
		{"/tiendas", fiber.MethodPut, "/actualizar-tienda/:id", tiendaHdl.UpdateById},
		{"/tiendas", fiber.MethodDelete, "/eliminar-tienda/:id", tiendaHdl.DeleteById},

		{"/pedidos", fiber.MethodPost, "/crear-pedido", pedidoHdl.InsertOne},
		{"/pedidos", fiber.MethodGet, "/pedido-identificador/:id", pedidoHdl.FindOneById},
		{"/pedidos", fiber.MethodGet, "/pedidos-registrados", pedidoHdl.FindAll},
		{"/pedidos", fiber.MethodPut, "/actualizar-pedido/:id", pedidoHdl.UpdateById},
		{"/pedidos", fiber.MethodDelete, "/eliminar-pedido/:id", pedidoHdl.DeleteById},

		{"/inventarios", fiber.MethodPost, "/crear-inventario", inventarioHdl.InsertOne},
		{"/inventarios", fiber.MethodGet, "/inventario-identificador/:id", inventarioHdl.FindOneById},
		{"/inventarios", fiber.MethodGet, "/inventarios-registrados", inventarioHdl.FindAll},
		{"/inventarios", fiber.MethodPut, "/actualizar-inventario/:id", inventarioHdl.UpdateById},
		{"/inventarios", fiber.MethodDelete, "/eliminar-inventario/:id", inventarioHdl.DeleteById},

		{"/usuarios", fiber.MethodPost, "/crear-cuenta", usuarioHdl.InsertOne},
		{"/usuarios", fiber.MethodGet, "/iniciar-sesion/:id", usuarioHdl.FindOneByKey("email")},
		{"/usuarios", fiber.MethodPut, "/recuperar-cuenta/:id", usuarioHdl.UpdateById},
		{"/usuarios", fiber.MethodDelete, "/eliminar-cuenta/:id", usuarioHdl.DeleteById},
	}

	for _, route := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, route.prefix, route.method, route.path, nil, route.handler); err != nil {
			return err
		}
	}

	return nil
}
