// Package dto định nghĩa input/output của các endpoint domain market.
// Input cập nhật dùng pointer fields: chỉ field có mặt trong payload
// mới được đưa vào merge set, field nil bị bỏ qua hoàn toàn.
package dto

import (
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
)

// ProductoCreateInput là payload tạo mới producto
type ProductoCreateInput struct {
	Nombre  string `json:"nombre" validate:"omitempty,no_xss"`
	Imagen  string `json:"imagen"`
	Tipo    string `json:"tipo" validate:"omitempty,no_xss"`
	SubTipo string `json:"sub_tipo" validate:"omitempty,no_xss"`
	Precio  string `json:"precio"`
}

// ToModel chuyển input thành model Producto
func (in ProductoCreateInput) ToModel() models.Producto {
	return models.Producto{
		Nombre:  in.Nombre,
		Imagen:  in.Imagen,
		Tipo:    in.Tipo,
		SubTipo: in.SubTipo,
		Precio:  in.Precio,
	}
}

// ProductoUpdateInput là payload cập nhật partial merge cho producto
type ProductoUpdateInput struct {
	Nombre  *string `json:"nombre" validate:"omitempty,no_xss"`
	Imagen  *string `json:"imagen"`
	Tipo    *string `json:"tipo" validate:"omitempty,no_xss"`
	SubTipo *string `json:"sub_tipo" validate:"omitempty,no_xss"`
	Precio  *string `json:"precio"`
}

// MergeSet trả về các field có mặt trong payload
func (in ProductoUpdateInput) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.Nombre != nil {
		set["nombre"] = *in.Nombre
	}
	if in.Imagen != nil {
		set["imagen"] = *in.Imagen
	}
	if in.Tipo != nil {
		set["tipo"] = *in.Tipo
	}
	if in.SubTipo != nil {
		set["sub_tipo"] = *in.SubTipo
	}
	if in.Precio != nil {
		set["precio"] = *in.Precio
	}
	return set
}
