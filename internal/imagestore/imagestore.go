// Package imagestore cung cấp interface upload ảnh sản phẩm lên dịch vụ
// lưu trữ bên ngoài. Hiện tại có một implementation cho ImageKit.
package imagestore

import (
	"context"
)

// ImageStore upload nội dung ảnh và trả về URL công khai.
// Implementation không được giữ state theo request.
type ImageStore interface {
	// Upload đẩy nội dung ảnh lên dịch vụ lưu trữ.
	//
	// Parameters:
	//   - ctx: Context để hủy thao tác
	//   - data: Nội dung ảnh (base64 hoặc URL nguồn, theo API của dịch vụ)
	//   - fileName: Tên file muốn lưu
	//
	// Returns:
	//   - string: URL công khai của ảnh đã upload
	//   - error: Lỗi nếu upload thất bại
	Upload(ctx context.Context, data string, fileName string) (string, error)
}
