// Package marketsvc - Service domain minimarket (productos, tiendas,
// pedidos, inventarios, usuarios) trên MongoDB.
package marketsvc

import (
	"context"
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/imagestore"
)

// ProductoService xử lý logic producto, kèm upload ảnh lên ImageKit.
type ProductoService struct {
	*basesvc.BaseServiceMongoImpl[models.Producto]
	images imagestore.ImageStore
}

// NewProductoService tạo ProductoService mới. store có thể nil,
// khi đó field imagen được lưu nguyên văn không qua upload.
func NewProductoService(store imagestore.ImageStore) (*ProductoService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Productos)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Productos, common.ErrNotFound)
	}
	return &ProductoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Producto](coll),
		images:               store,
	}, nil
}

// CrearProducto upload ảnh (nếu có) rồi insert producto.
// URL trả về từ ImageKit thay thế nội dung field imagen.
func (s *ProductoService) CrearProducto(ctx context.Context, producto models.Producto) (models.Producto, error) {
	var zero models.Producto
	if s.images != nil && producto.Imagen != "" {
		url, err := s.images.Upload(ctx, producto.Imagen, producto.Nombre)
		if err != nil {
			return zero, err
		}
		producto.Imagen = url
	}
	return s.InsertOne(ctx, producto)
}
