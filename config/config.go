// Package config quản lý cấu hình của ứng dụng từ file env theo môi trường.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration chứa toàn bộ cấu hình của server, đọc từ environment variables.
type Configuration struct {
	// HTTP server
	Address string `env:"ADDRESS" envDefault:":8080"`

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DatabaseName  string `env:"MONGODB_DATABASE_NAME" envDefault:"iaea_reactores"`

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // giây
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// TLS (tùy chọn, bỏ trống để chạy HTTP)
	TLS_CertFile string `env:"TLS_CERT_FILE"`
	TLS_KeyFile  string `env:"TLS_KEY_FILE"`

	// ImageKit (tùy chọn, bỏ trống để tắt upload ảnh)
	ImageKit_PrivateKey  string `env:"IMAGEKIT_PRIVATE_KEY"`
	ImageKit_PublicKey   string `env:"IMAGEKIT_PUBLIC_KEY"`
	ImageKit_EndpointURL string `env:"IMAGEKIT_ENDPOINT_URL"`
}

// getEnvPath tìm file env theo môi trường GO_ENV, đi lên từ thư mục hiện tại
// để hỗ trợ chạy từ cmd/server lẫn từ gốc project.
//
// Returns:
//   - string: Đường dẫn đến file env, chuỗi rỗng nếu không tìm thấy
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, "config", "env", environment+".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// NewConfig đọc file env theo GO_ENV và parse vào Configuration.
// Trả về nil nếu thiếu cấu hình bắt buộc. Logger chưa được khởi tạo
// ở thời điểm này nên lỗi được in trực tiếp ra stdout.
//
// Returns:
//   - *Configuration: Cấu hình đã parse, nil nếu có lỗi
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Không thể load file env %s: %v\n", envPath, err)
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Lỗi parse cấu hình từ environment: %v\n", err)
		return nil
	}

	return cfg
}
