package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ItemMoiVaGhiDe(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký lại cùng tên là ghi đè, không phải item mới
	isNew, err = r.Register("a", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 2, item)
}

func TestRegister_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestGet_KhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	item, exists := r.Get("missing")
	assert.False(t, exists)
	assert.Equal(t, "", item)
}

func TestGetOrCreate_ChiTaoMotLan(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	item, err = r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)
}

func TestGetOrCreate_CreatorLoi(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.GetOrCreate("x", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)

	_, exists := r.Get("x")
	assert.False(t, exists)
}

func TestClear_CleanupDuocGoi(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(item int) error {
		cleaned = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClear_CleanupLoiGiuNguyenItem(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	deleted, err := r.Clear("a", func(item int) error {
		return errors.New("không đóng được")
	})
	assert.Error(t, err)
	assert.False(t, deleted)

	_, exists := r.Get("a")
	assert.True(t, exists)
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Empty(t, r.Names())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
			r.Names()
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
