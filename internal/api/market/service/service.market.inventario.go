package marketsvc

import (
	"context"
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// InventarioService xử lý logic inventario.
type InventarioService struct {
	*basesvc.BaseServiceMongoImpl[models.Inventario]
}

// NewInventarioService tạo InventarioService mới.
func NewInventarioService() (*InventarioService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Inventarios)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Inventarios, common.ErrNotFound)
	}
	return &InventarioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Inventario](coll),
	}, nil
}

// FindByProductoYTienda tìm inventario theo cặp producto/tienda.
func (s *InventarioService) FindByProductoYTienda(ctx context.Context, idProducto, idTienda string) (models.Inventario, error) {
	return s.FindOne(ctx, bson.M{"id_producto": idProducto, "id_tienda": idTienda}, nil)
}
