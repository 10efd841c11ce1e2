package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNotFoundMessage(t *testing.T) {
	msg := NotFoundMessage("Producto", "662d0d325363bbc93a0c0425")
	assert.Equal(t, "Producto 662d0d325363bbc93a0c0425 no encontrado", msg)
}

func TestNewError_GiuDayDuThongTin(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "dữ liệu sai", StatusBadRequest, "chi tiết")

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Equal(t, "dữ liệu sai", appErr.Message)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "chi tiết", appErr.Details)
	assert.Equal(t, "dữ liệu sai", appErr.Error())
}

func TestErrorIs_SoSanhTheoCodeVaMessage(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	assert.True(t, errors.Is(err, ErrNotFound))

	other := NewError(ErrCodeDatabaseQuery, "Lỗi khác", StatusInternalServerError, nil)
	assert.False(t, errors.Is(other, ErrNotFound))
}

func TestConvertMongoError_NilTraVeNil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	err := ConvertMongoError(ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Wrapped ErrNotFound cũng phải được giữ nguyên
	wrapped := fmt.Errorf("tra cứu thất bại: %w", ErrNotFound)
	err = ConvertMongoError(wrapped)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConvertMongoError_CommandErrorTheoDaiMa(t *testing.T) {
	tests := []struct {
		name     string
		code     int32
		expected error
	}{
		{"connection", 150, ErrMongoConnection},
		{"auth", 250, ErrMongoAuth},
		{"query", 350, ErrMongoQuery},
		{"write", 450, ErrMongoWrite},
		{"system", 550, ErrMongoSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConvertMongoError(mongo.CommandError{Code: tt.code, Message: "boom"})
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestConvertMongoError_LoiKhongXacDinhThanh500(t *testing.T) {
	err := ConvertMongoError(errors.New("một lỗi lạ"))

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, MsgDatabaseError, appErr.Message)
}
