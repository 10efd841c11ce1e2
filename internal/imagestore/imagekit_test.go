package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
)

func TestUpload_GuiMultipartVaTraVeURL(t *testing.T) {
	var gotAuth, gotFile, gotFileName string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFile = r.FormValue("file")
		gotFileName = r.FormValue("fileName")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url": "https://ik.imagekit.io/muk5lqji5/arroz.png", "fileId": "abc123"}`))
	}))
	defer srv.Close()

	store := NewImageKitStore("private_key", "public_key", "https://ik.imagekit.io/muk5lqji5", WithUploadURL(srv.URL))

	url, err := store.Upload(context.Background(), "base64data", "arroz.png")
	require.NoError(t, err)
	assert.Equal(t, "https://ik.imagekit.io/muk5lqji5/arroz.png", url)

	expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("private_key:"))
	assert.Equal(t, expectedAuth, gotAuth)
	assert.Equal(t, "base64data", gotFile)
	assert.Equal(t, "arroz.png", gotFileName)
}

func TestUpload_NoiDungRongBi400(t *testing.T) {
	store := NewImageKitStore("private_key", "public_key", "")

	_, err := store.Upload(context.Background(), "", "arroz.png")
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestUpload_DichVuTraVeLoi(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "Your account cannot be authenticated"}`))
	}))
	defer srv.Close()

	store := NewImageKitStore("bad_key", "public_key", "", WithUploadURL(srv.URL))

	_, err := store.Upload(context.Background(), "base64data", "arroz.png")
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeExternalService.Code, appErr.Code.Code)
	assert.Contains(t, appErr.Message, "Your account cannot be authenticated")
}

func TestUpload_ResponseThieuURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fileId": "abc123"}`))
	}))
	defer srv.Close()

	store := NewImageKitStore("private_key", "public_key", "", WithUploadURL(srv.URL))

	_, err := store.Upload(context.Background(), "base64data", "arroz.png")
	assert.Error(t, err)
}
