package marketsvc

import (
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
)

// PedidoService xử lý logic pedido.
type PedidoService struct {
	*basesvc.BaseServiceMongoImpl[models.Pedido]
}

// NewPedidoService tạo PedidoService mới.
func NewPedidoService() (*PedidoService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Pedidos, common.ErrNotFound)
	}
	return &PedidoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Pedido](coll),
	}, nil
}
