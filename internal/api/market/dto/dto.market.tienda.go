package dto

import (
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
)

// TiendaCreateInput là payload tạo mới tienda
type TiendaCreateInput struct {
	IdUsuarioTendero string `json:"id_usuario_tendero"`
	Nombre           string `json:"nombre" validate:"omitempty,no_xss"`
	Ciudad           string `json:"ciudad" validate:"omitempty,no_xss"`
	Pais             string `json:"pais" validate:"omitempty,no_xss"`
	Direccion        string `json:"direccion" validate:"omitempty,no_xss"`
	Telefono         string `json:"telefono"`
	Celular          string `json:"celular"`
	HoraInicio       string `json:"hora_inicio"`
	HoraFin          string `json:"hora_fin"`
}

// ToModel chuyển input thành model Tienda
func (in TiendaCreateInput) ToModel() models.Tienda {
	return models.Tienda{
		IdUsuarioTendero: in.IdUsuarioTendero,
		Nombre:           in.Nombre,
		Ciudad:           in.Ciudad,
		Pais:             in.Pais,
		Direccion:        in.Direccion,
		Telefono:         in.Telefono,
		Celular:          in.Celular,
		HoraInicio:       in.HoraInicio,
		HoraFin:          in.HoraFin,
	}
}

// TiendaUpdateInput là payload cập nhật partial merge cho tienda
type TiendaUpdateInput struct {
	IdUsuarioTendero *string `json:"id_usuario_tendero"`
	Nombre           *string `json:"nombre" validate:"omitempty,no_xss"`
	Ciudad           *string `json:"ciudad" validate:"omitempty,no_xss"`
	Pais             *string `json:"pais" validate:"omitempty,no_xss"`
	Direccion        *string `json:"direccion" validate:"omitempty,no_xss"`
	Telefono         *string `json:"telefono"`
	Celular          *string `json:"celular"`
	HoraInicio       *string `json:"hora_inicio"`
	HoraFin          *string `json:"hora_fin"`
}

// MergeSet trả về các field có mặt trong payload
func (in TiendaUpdateInput) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.IdUsuarioTendero != nil {
		set["id_usuario_tendero"] = *in.IdUsuarioTendero
	}
	if in.Nombre != nil {
		set["nombre"] = *in.Nombre
	}
	if in.Ciudad != nil {
		set["ciudad"] = *in.Ciudad
	}
	if in.Pais != nil {
		set["pais"] = *in.Pais
	}
	if in.Direccion != nil {
		set["direccion"] = *in.Direccion
	}
	if in.Telefono != nil {
		set["telefono"] = *in.Telefono
	}
	if in.Celular != nil {
		set["celular"] = *in.Celular
	}
	if in.HoraInicio != nil {
		set["hora_inicio"] = *in.HoraInicio
	}
	if in.HoraFin != nil {
		set["hora_fin"] = *in.HoraFin
	}
	return set
}
