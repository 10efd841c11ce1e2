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

// TiendaService xử lý logic tienda.
type TiendaService struct {
	*basesvc.BaseServiceMongoImpl[models.Tienda]
}

// NewTiendaService tạo TiendaService mới.
func NewTiendaService() (*TiendaService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tiendas)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tiendas, common.ErrNotFound)
	}
	return &TiendaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tienda](coll),
	}, nil
}

// FindByUsuarioTendero tìm tienda theo id usuario chủ tiệm.
func (s *TiendaService) FindByUsuarioTendero(ctx context.Context, idUsuario string) (models.Tienda, error) {
	return s.FindOne(ctx, bson.M{"id_usuario_tendero": idUsuario}, nil)
}
