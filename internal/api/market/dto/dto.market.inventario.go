package dto

import (
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
)

// InventarioCreateInput là payload tạo mới inventario
type InventarioCreateInput struct {
	IdProducto          string `json:"id_producto"`
	IdTienda            string `json:"id_tienda"`
	CantidadDisponibles string `json:"cantidad_disponibles"`
}

// ToModel chuyển input thành model Inventario
func (in InventarioCreateInput) ToModel() models.Inventario {
	return models.Inventario{
		IdProducto:          in.IdProducto,
		IdTienda:            in.IdTienda,
		CantidadDisponibles: in.CantidadDisponibles,
	}
}

// InventarioUpdateInput là payload cập nhật partial merge cho inventario
type InventarioUpdateInput struct {
	IdProducto          *string `json:"id_producto"`
	IdTienda            *string `json:"id_tienda"`
	CantidadDisponibles *string `json:"cantidad_disponibles"`
}

// MergeSet trả về các field có mặt trong payload
func (in InventarioUpdateInput) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.IdProducto != nil {
		set["id_producto"] = *in.IdProducto
	}
	if in.IdTienda != nil {
		set["id_tienda"] = *in.IdTienda
	}
	if in.CantidadDisponibles != nil {
		set["cantidad_disponibles"] = *in.CantidadDisponibles
	}
	return set
}
