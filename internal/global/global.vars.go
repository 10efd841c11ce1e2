// Package global giữ các biến toàn cục của ứng dụng: cấu hình server,
// kết nối MongoDB, validator và registry các collection.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/config"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/registry"
)

// ColNames chứa tên các collection trong database, được gán giá trị
// một lần lúc khởi động trong cmd/server.
type ColNames struct {
	Productos      string // Sản phẩm của minimarket
	Tiendas        string // Cửa hàng
	Pedidos        string // Đơn hàng
	Inventarios    string // Tồn kho theo cửa hàng
	Usuarios       string // Tài khoản người dùng
	Ubicaciones    string // Vị trí (legacy registry)
	TiposReactores string // Loại lò phản ứng (legacy registry)
	Reactores      string // Lò phản ứng (legacy registry)
}

var (
	// Validate là validator dùng chung cho toàn bộ input
	Validate *validator.Validate

	// MongoDB_ServerConfig là cấu hình server đọc từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session là client MongoDB dùng chung, khởi tạo một lần
	MongoDB_Session *mongo.Client

	// MongoDB_ColNames chứa tên các collection
	MongoDB_ColNames ColNames

	// RegistryCollections giữ các *mongo.Collection đã resolve theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
