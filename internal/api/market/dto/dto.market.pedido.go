package dto

import (
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
)

// PedidoCreateInput là payload tạo mới pedido
type PedidoCreateInput struct {
	IdTienda     string `json:"id_tienda"`
	IdCliente    string `json:"id_cliente"`
	Productos    string `json:"productos"`
	PrecioTotal  string `json:"precio_total"`
	Direccion    string `json:"direccion" validate:"omitempty,no_xss"`
	FechaEntrega string `json:"fecha_entrega"`
}

// ToModel chuyển input thành model Pedido
func (in PedidoCreateInput) ToModel() models.Pedido {
	return models.Pedido{
		IdTienda:     in.IdTienda,
		IdCliente:    in.IdCliente,
		Productos:    in.Productos,
		PrecioTotal:  in.PrecioTotal,
		Direccion:    in.Direccion,
		FechaEntrega: in.FechaEntrega,
	}
}

// PedidoUpdateInput là payload cập nhật partial merge cho pedido
type PedidoUpdateInput struct {
	IdTienda     *string `json:"id_tienda"`
	IdCliente    *string `json:"id_cliente"`
	Productos    *string `json:"productos"`
	PrecioTotal  *string `json:"precio_total"`
	Direccion    *string `json:"direccion" validate:"omitempty,no_xss"`
	FechaEntrega *string `json:"fecha_entrega"`
}

// MergeSet trả về các field có mặt trong payload
func (in PedidoUpdateInput) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.IdTienda != nil {
		set["id_tienda"] = *in.IdTienda
	}
	if in.IdCliente != nil {
		set["id_cliente"] = *in.IdCliente
	}
	if in.Productos != nil {
		set["productos"] = *in.Productos
	}
	if in.PrecioTotal != nil {
		set["precio_total"] = *in.PrecioTotal
	}
	if in.Direccion != nil {
		set["direccion"] = *in.Direccion
	}
	if in.FechaEntrega != nil {
		set["fecha_entrega"] = *in.FechaEntrega
	}
	return set
}
