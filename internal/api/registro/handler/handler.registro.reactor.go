// Package registrohdl - Handler HTTP cho registro hạt nhân legacy.
// Các handler này chỉ có read path và một route xóa, nhận service qua
// interface hẹp thay vì bao BaseHandler generic.
package registrohdl

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/handler"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"
)

// ReactorStore là phần storage mà ReactorHandler cần
type ReactorStore interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Reactor, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// ReactorHandler xử lý HTTP reactor.
type ReactorHandler struct {
	service ReactorStore
}

// NewReactorHandler tạo ReactorHandler mới.
func NewReactorHandler(service ReactorStore) *ReactorHandler {
	return &ReactorHandler{service: service}
}

// FindAll trả về toàn bộ reactores đã đăng ký
func (h *ReactorHandler) FindAll(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.service.Find(c.Context(), nil, nil)
		return basehdl.HandleResponse(c, data, err, "Reactor", "")
	})
}

// DeleteById xóa reactor theo id. Route này nằm dưới prefix /tiendas
// vì lịch sử của codebase, hành vi giữ nguyên.
func (h *ReactorHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := basehdl.ParseObjectID(id)
		if err != nil {
			return basehdl.HandleError(c, err, "Reactor", id)
		}

		err = h.service.DeleteById(c.Context(), oid)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.ErrorResponse(c, common.StatusNotFound, common.NotFoundMessage("Reactor", id))
			}
			return basehdl.HandleError(c, err, "Reactor", id)
		}

		logger.LogCRUD("delete", "Reactor", id, c, nil)
		return c.SendStatus(common.StatusNoContent)
	})
}
