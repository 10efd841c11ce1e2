package markethdl

import (
	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/dto"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	marketsvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/service"
)

// UsuarioHandler xử lý HTTP usuario. Đăng nhập tra cứu theo email
// trong URL params thay vì _id.
type UsuarioHandler struct {
	*basehdl.BaseHandler[models.Usuario, dto.UsuarioCreateInput, dto.UsuarioUpdateInput]
}

// NewUsuarioHandler tạo UsuarioHandler mới.
func NewUsuarioHandler() (*UsuarioHandler, error) {
	svc, err := marketsvc.NewUsuarioService()
	if err != nil {
		return nil, err
	}
	return &UsuarioHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Usuario, dto.UsuarioCreateInput, dto.UsuarioUpdateInput](svc, "Usuario"),
	}, nil
}
