// Package basehdl cung cấp handler CRUD generic cho tất cả các entity.
// Mỗi handler bao một BaseServiceMongo và chịu trách nhiệm parse request,
// validate input và tạo response envelope thống nhất {success, msg, data}.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
)

// ModelBuilder là input tạo mới có thể chuyển thành model T
type ModelBuilder[T any] interface {
	ToModel() T
}

// MergeBuilder là input cập nhật có thể tính merge set.
// Chỉ các field khác nil trong payload mới xuất hiện trong merge set;
// merge set rỗng nghĩa là không có gì để ghi.
type MergeBuilder interface {
	MergeSet() map[string]interface{}
}

// BaseHandler là handler CRUD generic.
// T là model, C là kiểu input tạo mới, U là kiểu input cập nhật.
type BaseHandler[T any, C ModelBuilder[T], U MergeBuilder] struct {
	BaseService basesvc.BaseServiceMongo[T]

	// EntityName là tên entity trong thông báo cho client
	// (ví dụ: "Producto", "Tienda"). Dùng cho message 404.
	EntityName string
}

// NewBaseHandler tạo handler mới cho một entity
func NewBaseHandler[T any, C ModelBuilder[T], U MergeBuilder](service basesvc.BaseServiceMongo[T], entityName string) *BaseHandler[T, C, U] {
	return &BaseHandler[T, C, U]{
		BaseService: service,
		EntityName:  entityName,
	}
}

// ParseRequestBody parse body JSON vào struct đích.
// Dùng UseNumber để giữ nguyên độ chính xác của số trong payload.
func ParseRequestBody(c fiber.Ctx, dest interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "Body không được để trống", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Body không đúng định dạng JSON: %v", err), common.StatusBadRequest, err)
	}

	return nil
}

// ValidateInput chạy validator toàn cục trên input đã parse
func ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("%s: %v", common.MsgValidationError, err), common.StatusBadRequest, err)
	}
	return nil
}

// ParseObjectID validate và parse id từ URL params.
// Id rỗng hoặc sai định dạng ObjectID trả về lỗi 400, không bao giờ
// được phép rơi xuống storage dưới dạng NilObjectID.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "ID không được để trống trong URL params", common.StatusBadRequest, nil)
	}

	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id), common.StatusBadRequest, nil)
	}

	return primitive.ObjectIDFromHex(id)
}
