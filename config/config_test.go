package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DocTuEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB_ConnectionURI)
	assert.Equal(t, 5, cfg.RateLimit_Max)
	assert.False(t, cfg.RateLimit_Enabled)
}

func TestNewConfig_GiaTriMacDinh(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")

	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "iaea_reactores", cfg.MongoDB_DatabaseName)
	assert.Equal(t, "*", cfg.CORS_Origins)
	assert.Equal(t, 100, cfg.RateLimit_Max)
	assert.Equal(t, 60, cfg.RateLimit_Window)
	assert.True(t, cfg.RateLimit_Enabled)
}

func TestNewConfig_ThieuURITraVeNil(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	// t.Setenv đăng ký cleanup khôi phục giá trị cũ, unset để mô phỏng
	// môi trường thiếu biến bắt buộc
	t.Setenv("MONGODB_CONNECTION_URI", "placeholder")
	os.Unsetenv("MONGODB_CONNECTION_URI")

	cfg := NewConfig()
	assert.Nil(t, cfg)
}
