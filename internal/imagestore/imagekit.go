package imagestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
)

// DefaultUploadURL là endpoint upload chuẩn của ImageKit
const DefaultUploadURL = "https://upload.imagekit.io/api/v1/files/upload"

// ImageKitStore upload ảnh lên ImageKit qua HTTP API.
// Xác thực bằng basic auth với private key.
type ImageKitStore struct {
	privateKey  string
	publicKey   string
	endpointURL string
	uploadURL   string
	client      *fasthttp.Client
	timeout     time.Duration
}

// ImageKitOption tùy chỉnh ImageKitStore lúc khởi tạo
type ImageKitOption func(*ImageKitStore)

// WithUploadURL đổi endpoint upload (dùng trong test)
func WithUploadURL(url string) ImageKitOption {
	return func(s *ImageKitStore) {
		s.uploadURL = url
	}
}

// WithTimeout đổi timeout cho request upload
func WithTimeout(d time.Duration) ImageKitOption {
	return func(s *ImageKitStore) {
		s.timeout = d
	}
}

// NewImageKitStore tạo store mới với thông tin xác thực ImageKit.
//
// Parameters:
//   - privateKey: Private key của tài khoản ImageKit
//   - publicKey: Public key của tài khoản ImageKit
//   - endpointURL: URL endpoint media của tài khoản (ví dụ: https://ik.imagekit.io/xxxx)
//
// Returns:
//   - *ImageKitStore: Store đã cấu hình
func NewImageKitStore(privateKey, publicKey, endpointURL string, opts ...ImageKitOption) *ImageKitStore {
	store := &ImageKitStore{
		privateKey:  privateKey,
		publicKey:   publicKey,
		endpointURL: endpointURL,
		uploadURL:   DefaultUploadURL,
		client:      &fasthttp.Client{},
		timeout:     30 * time.Second,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// uploadResponse là phần response của ImageKit mà chúng ta quan tâm
type uploadResponse struct {
	URL     string `json:"url"`
	FileID  string `json:"fileId"`
	Message string `json:"message"`
}

// Upload đẩy nội dung ảnh lên ImageKit và trả về URL công khai.
// ImageKit chấp nhận nội dung file dưới dạng base64, URL hoặc binary
// trong field "file" của multipart form.
func (s *ImageKitStore) Upload(ctx context.Context, data string, fileName string) (string, error) {
	if data == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "Nội dung ảnh rỗng", common.StatusBadRequest, nil)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("file", data); err != nil {
		return "", fmt.Errorf("ghi field file: %w", err)
	}
	if err := writer.WriteField("fileName", fileName); err != nil {
		return "", fmt.Errorf("ghi field fileName: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("đóng multipart writer: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.uploadURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(writer.FormDataContentType())

	// ImageKit xác thực bằng basic auth: private key làm username, password rỗng
	auth := base64.StdEncoding.EncodeToString([]byte(s.privateKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)

	req.SetBody(body.Bytes())

	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		return "", common.NewError(common.ErrCodeExternalService, fmt.Sprintf("Upload ảnh thất bại: %v", err), common.StatusInternalServerError, err)
	}

	var result uploadResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.NewError(common.ErrCodeExternalService, "Response upload ảnh không hợp lệ", common.StatusInternalServerError, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", common.NewError(common.ErrCodeExternalService, fmt.Sprintf("Dịch vụ ảnh trả về lỗi: %s", result.Message), common.StatusInternalServerError, nil)
	}

	if result.URL == "" {
		return "", common.NewError(common.ErrCodeExternalService, "Dịch vụ ảnh không trả về URL", common.StatusInternalServerError, nil)
	}

	return result.URL, nil
}
