package dto

import (
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
)

// UsuarioCreateInput là payload tạo mới usuario
type UsuarioCreateInput struct {
	NombreCompleto string `json:"nombre_completo" validate:"omitempty,no_xss"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password"`
	Pais           string `json:"pais" validate:"omitempty,no_xss"`
	Ciudad         string `json:"ciudad" validate:"omitempty,no_xss"`
	Tipo           string `json:"tipo" validate:"omitempty,no_xss"`
}

// ToModel chuyển input thành model Usuario
func (in UsuarioCreateInput) ToModel() models.Usuario {
	return models.Usuario{
		NombreCompleto: in.NombreCompleto,
		Email:          in.Email,
		Password:       in.Password,
		Pais:           in.Pais,
		Ciudad:         in.Ciudad,
		Tipo:           in.Tipo,
	}
}

// UsuarioUpdateInput là payload cập nhật partial merge cho usuario
type UsuarioUpdateInput struct {
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,no_xss"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password"`
	Pais           *string `json:"pais" validate:"omitempty,no_xss"`
	Ciudad         *string `json:"ciudad" validate:"omitempty,no_xss"`
	Tipo           *string `json:"tipo" validate:"omitempty,no_xss"`
}

// MergeSet trả về các field có mặt trong payload
func (in UsuarioUpdateInput) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.NombreCompleto != nil {
		set["nombre_completo"] = *in.NombreCompleto
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Password != nil {
		set["password"] = *in.Password
	}
	if in.Pais != nil {
		set["pais"] = *in.Pais
	}
	if in.Ciudad != nil {
		set["ciudad"] = *in.Ciudad
	}
	if in.Tipo != nil {
		set["tipo"] = *in.Tipo
	}
	return set
}
