package markethdl

import (
	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/dto"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	marketsvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/service"
)

// PedidoHandler xử lý HTTP pedido.
type PedidoHandler struct {
	*basehdl.BaseHandler[models.Pedido, dto.PedidoCreateInput, dto.PedidoUpdateInput]
}

// NewPedidoHandler tạo PedidoHandler mới.
func NewPedidoHandler() (*PedidoHandler, error) {
	svc, err := marketsvc.NewPedidoService()
	if err != nil {
		return nil, err
	}
	return &PedidoHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Pedido, dto.PedidoCreateInput, dto.PedidoUpdateInput](svc, "Pedido"),
	}, nil
}
