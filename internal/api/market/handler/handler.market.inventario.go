package markethdl

import (
	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/dto"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	marketsvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/service"
)

// InventarioHandler xử lý HTTP inventario.
type InventarioHandler struct {
	*basehdl.BaseHandler[models.Inventario, dto.InventarioCreateInput, dto.InventarioUpdateInput]
}

// NewInventarioHandler tạo InventarioHandler mới.
func NewInventarioHandler() (*InventarioHandler, error) {
	svc, err := marketsvc.NewInventarioService()
	if err != nil {
		return nil, err
	}
	return &InventarioHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Inventario, dto.InventarioCreateInput, dto.InventarioUpdateInput](svc, "Inventario"),
	}, nil
}
