package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"
)

// Envelope là response chuẩn của mọi endpoint (trừ delete thành công)
type Envelope struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data"`
}

// JSONResponse ghi response JSON với status code và content type chuẩn
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// SuccessResponse trả về envelope thành công với data
func SuccessResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	return JSONResponse(c, statusCode, Envelope{
		Success: true,
		Msg:     common.MsgResultadoExitoso,
		Data:    data,
	})
}

// ErrorResponse trả về envelope thất bại với message
func ErrorResponse(c fiber.Ctx, statusCode int, msg string) error {
	return JSONResponse(c, statusCode, Envelope{
		Success: false,
		Msg:     msg,
		Data:    nil,
	})
}

// HandleError chuyển lỗi thành response envelope.
// ErrNotFound trả về 404 với message đặt tên entity và id còn thiếu.
// Lỗi validation (*common.Error với status 4xx) trả về status và message của nó.
// Mọi lỗi khác trả về 500 với message chung, chi tiết chỉ ghi vào log.
//
// Parameters:
//   - c: Fiber context
//   - err: Lỗi cần xử lý
//   - entidad: Tên entity cho message 404 (ví dụ: "Producto")
//   - id: Identificador trong URL, dùng trong message 404
func HandleError(c fiber.Ctx, err error, entidad string, id string) error {
	if errors.Is(err, common.ErrNotFound) {
		return ErrorResponse(c, common.StatusNotFound, common.NotFoundMessage(entidad, id))
	}

	var appErr *common.Error
	if errors.As(err, &appErr) && appErr.StatusCode >= 400 && appErr.StatusCode < 500 {
		return ErrorResponse(c, appErr.StatusCode, appErr.Message)
	}

	// Chi tiết lỗi chỉ ghi server-side, không trả về cho client
	logger.WithRequest(c).WithError(err).Error("Lỗi xử lý request")
	return ErrorResponse(c, common.StatusInternalServerError, common.MsgErrorResultado)
}

// SafeHandler bọc handler logic với recover để panic không bao giờ
// thoát ra transport layer. Stack trace được ghi vào log.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.WithRequest(c).Errorf("Panic trong handler: %v", r)
				debug.PrintStack()
				err = ErrorResponse(c, common.StatusInternalServerError, common.MsgErrorResultado)
			}
		}()
		err = fn()
	}()

	return err
}

// SafeHandlerWrapper bọc một fiber handler với recover, dùng cho các
// handler không embed BaseHandler
func SafeHandlerWrapper(fn func(c fiber.Ctx) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			return fn(c)
		})
	}
}

// HandleResponse tạo response từ kết quả thao tác: envelope thành công
// khi err nil, ngược lại chuyển qua HandleError
func HandleResponse(c fiber.Ctx, data interface{}, err error, entidad string, id string) error {
	if err != nil {
		return HandleError(c, err, entidad, id)
	}
	return SuccessResponse(c, common.StatusOK, data)
}

// requireParam lấy param bắt buộc từ URL, lỗi 400 nếu rỗng
func requireParam(c fiber.Ctx, name string) (string, error) {
	value := c.Params(name)
	if value == "" {
		return "", common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("%s không được để trống trong URL params", name), common.StatusBadRequest, nil)
	}
	return value, nil
}
