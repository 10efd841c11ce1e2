package registrohdl

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
)

// UbicacionStore là phần storage mà UbicacionHandler cần
type UbicacionStore interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Ubicacion, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (models.Ubicacion, error)
	ReactoresEnUbicacion(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error)
}

// UbicacionHandler xử lý HTTP ubicacion.
type UbicacionHandler struct {
	service UbicacionStore
}

// NewUbicacionHandler tạo UbicacionHandler mới.
func NewUbicacionHandler(service UbicacionStore) *UbicacionHandler {
	return &UbicacionHandler{service: service}
}

// FindAll trả về toàn bộ ubicaciones đã đăng ký
func (h *UbicacionHandler) FindAll(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.service.Find(c.Context(), nil, nil)
		return basehdl.HandleResponse(c, data, err, "Ubicacion", "")
	})
}

// FindOneById trả về một ubicacion theo id
func (h *UbicacionHandler) FindOneById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := basehdl.ParseObjectID(id)
		if err != nil {
			return basehdl.HandleError(c, err, "Ubicacion", id)
		}

		data, err := h.service.FindOneById(c.Context(), oid)
		return basehdl.HandleResponse(c, data, err, "Ubicacion", id)
	})
}

// ReactoresEnUbicacion trả về các reactor nằm trong ubicacion id.
// Data của response là danh sách reactores, không phải document ubicacion.
func (h *UbicacionHandler) ReactoresEnUbicacion(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := basehdl.ParseObjectID(id)
		if err != nil {
			return basehdl.HandleError(c, err, "Ubicacion", id)
		}

		data, err := h.service.ReactoresEnUbicacion(c.Context(), oid)
		return basehdl.HandleResponse(c, data, err, "Ubicacion", id)
	})
}
