package markethdl

import (
	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/dto"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	marketsvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/service"
)

// TiendaHandler xử lý HTTP tienda. Point lookup của tienda đi theo
// id_usuario_tendero thay vì _id.
type TiendaHandler struct {
	*basehdl.BaseHandler[models.Tienda, dto.TiendaCreateInput, dto.TiendaUpdateInput]
}

// NewTiendaHandler tạo TiendaHandler mới.
func NewTiendaHandler() (*TiendaHandler, error) {
	svc, err := marketsvc.NewTiendaService()
	if err != nil {
		return nil, err
	}
	return &TiendaHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Tienda, dto.TiendaCreateInput, dto.TiendaUpdateInput](svc, "Tienda"),
	}, nil
}
