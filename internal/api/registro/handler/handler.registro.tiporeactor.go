package registrohdl

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
)

// TipoReactorStore là phần storage mà TipoReactorHandler cần
type TipoReactorStore interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.TipoReactor, error)
	ReactoresPorTipo(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error)
}

// TipoReactorHandler xử lý HTTP tipo reactor.
type TipoReactorHandler struct {
	service TipoReactorStore
}

// NewTipoReactorHandler tạo TipoReactorHandler mới.
func NewTipoReactorHandler(service TipoReactorStore) *TipoReactorHandler {
	return &TipoReactorHandler{service: service}
}

// FindAll trả về toàn bộ tipos de reactores đã đăng ký
func (h *TipoReactorHandler) FindAll(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.service.Find(c.Context(), nil, nil)
		return basehdl.HandleResponse(c, data, err, "Tipo de reactor", "")
	})
}

// ReactoresPorTipo trả về các reactor cùng tipo với tipo reactor id.
// Data của response là danh sách reactores, không phải document tipo.
func (h *TipoReactorHandler) ReactoresPorTipo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := basehdl.ParseObjectID(id)
		if err != nil {
			return basehdl.HandleError(c, err, "Tipo de reactor", id)
		}

		data, err := h.service.ReactoresPorTipo(c.Context(), oid)
		return basehdl.HandleResponse(c, data, err, "Tipo de reactor", id)
	})
}
