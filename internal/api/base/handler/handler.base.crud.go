package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"
)

// InsertOne xử lý POST tạo mới entity.
// Flow: parse body -> validate -> chuyển thành model -> insert -> 201
// với document đã được lưu (đọc lại từ storage).
func (h *BaseHandler[T, C, U]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input C
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err, h.EntityName, "")
		}

		if err := ValidateInput(input); err != nil {
			return HandleError(c, err, h.EntityName, "")
		}

		data, err := h.BaseService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			return HandleError(c, err, h.EntityName, "")
		}

		logger.LogCRUD("create", h.EntityName, "", c, nil)
		return SuccessResponse(c, common.StatusCreated, data)
	})
}

// FindOneById xử lý GET point lookup theo ObjectID trong URL params
func (h *BaseHandler[T, C, U]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := ParseObjectID(id)
		if err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		data, err := h.BaseService.FindOneById(c.Context(), oid)
		return HandleResponse(c, data, err, h.EntityName, id)
	})
}

// FindOneByKey xử lý GET point lookup theo một field khác primary key.
// Một số entity tra cứu theo giá trị denormalized thay vì _id:
// tienda theo id_usuario_tendero, usuario theo email.
func (h *BaseHandler[T, C, U]) FindOneByKey(bsonKey string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			value, err := requireParam(c, "id")
			if err != nil {
				return HandleError(c, err, h.EntityName, value)
			}

			data, err := h.BaseService.FindOne(c.Context(), bson.M{bsonKey: value}, nil)
			return HandleResponse(c, data, err, h.EntityName, value)
		})
	}
}

// FindAll xử lý GET danh sách toàn bộ collection.
// Không phân trang, data luôn là mảng, rỗng khi collection trống.
func (h *BaseHandler[T, C, U]) FindAll(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		data, err := h.BaseService.Find(c.Context(), nil, nil)
		return HandleResponse(c, data, err, h.EntityName, "")
	})
}

// UpdateById xử lý PUT cập nhật partial merge theo id.
// Chỉ các field khác nil trong payload được ghi; payload không thay đổi
// gì thì không có thao tác ghi và document hiện tại được trả về.
func (h *BaseHandler[T, C, U]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := ParseObjectID(id)
		if err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		var input U
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		if err := ValidateInput(input); err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		updateData := &basesvc.UpdateData{Set: input.MergeSet()}
		data, err := h.BaseService.UpdateById(c.Context(), oid, updateData)
		if err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		logger.LogCRUD("update", h.EntityName, id, c, nil)
		return SuccessResponse(c, common.StatusOK, data)
	})
}

// DeleteById xử lý DELETE theo id.
// Kết quả xóa được xác định trước khi phân nhánh: xóa thành công trả về
// 204 không có body, không tìm thấy trả về 404 envelope, lỗi driver 500.
func (h *BaseHandler[T, C, U]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := c.Params("id")

		oid, err := ParseObjectID(id)
		if err != nil {
			return HandleError(c, err, h.EntityName, id)
		}

		err = h.BaseService.DeleteById(c.Context(), oid)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return ErrorResponse(c, common.StatusNotFound, common.NotFoundMessage(h.EntityName, id))
			}
			return HandleError(c, err, h.EntityName, id)
		}

		logger.LogCRUD("delete", h.EntityName, id, c, nil)
		return c.SendStatus(common.StatusNoContent)
	})
}
