// Package markethdl - Handler HTTP domain minimarket.
// Mỗi handler bao BaseHandler generic, chỉ override khi entity có
// flow riêng (producto upload ảnh trước khi insert).
package markethdl

import (
	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/dto"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	marketsvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/imagestore"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ProductoHandler xử lý HTTP producto.
type ProductoHandler struct {
	*basehdl.BaseHandler[models.Producto, dto.ProductoCreateInput, dto.ProductoUpdateInput]
	service *marketsvc.ProductoService
}

// NewProductoHandler tạo ProductoHandler mới.
func NewProductoHandler(store imagestore.ImageStore) (*ProductoHandler, error) {
	svc, err := marketsvc.NewProductoService(store)
	if err != nil {
		return nil, err
	}
	return &ProductoHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Producto, dto.ProductoCreateInput, dto.ProductoUpdateInput](svc, "Producto"),
		service:     svc,
	}, nil
}

// InsertOne override flow tạo mới: ảnh trong payload được upload lên
// ImageKit trước, field imagen lưu URL trả về thay vì nội dung gốc.
func (h *ProductoHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ProductoCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err, h.EntityName, "")
		}

		if err := basehdl.ValidateInput(input); err != nil {
			return basehdl.HandleError(c, err, h.EntityName, "")
		}

		data, err := h.service.CrearProducto(c.Context(), input.ToModel())
		if err != nil {
			return basehdl.HandleError(c, err, h.EntityName, "")
		}

		logger.LogCRUD("create", h.EntityName, "", c, nil)
		return basehdl.SuccessResponse(c, common.StatusCreated, data)
	})
}
