package basehdl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
)

// articulo là entity tối giản cho test handler generic
type articulo struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nombre string             `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Precio string             `json:"precio,omitempty" bson:"precio,omitempty"`
}

type articuloCreate struct {
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
}

func (in articuloCreate) ToModel() articulo {
	return articulo{Nombre: in.Nombre, Precio: in.Precio}
}

type articuloUpdate struct {
	Nombre *string `json:"nombre"`
	Precio *string `json:"precio"`
}

func (in articuloUpdate) MergeSet() map[string]interface{} {
	set := map[string]interface{}{}
	if in.Nombre != nil {
		set["nombre"] = *in.Nombre
	}
	if in.Precio != nil {
		set["precio"] = *in.Precio
	}
	return set
}

// fakeService thay thế storage thật, ghi lại lời gọi cuối cùng
type fakeService struct {
	stored    articulo
	items     []articulo
	insertErr error
	findErr   error
	updateErr error
	deleteErr error

	lastInserted articulo
	lastFilter   interface{}
	lastID       primitive.ObjectID
	lastUpdate   *basesvc.UpdateData
}

func (f *fakeService) InsertOne(ctx context.Context, data articulo) (articulo, error) {
	if f.insertErr != nil {
		return articulo{}, f.insertErr
	}
	f.lastInserted = data
	data.ID = f.stored.ID
	return data, nil
}

func (f *fakeService) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (articulo, error) {
	f.lastFilter = filter
	return f.stored, f.findErr
}

func (f *fakeService) FindOneById(ctx context.Context, id primitive.ObjectID) (articulo, error) {
	f.lastID = id
	return f.stored, f.findErr
}

func (f *fakeService) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]articulo, error) {
	f.lastFilter = filter
	return f.items, f.findErr
}

func (f *fakeService) UpdateById(ctx context.Context, id primitive.ObjectID, data *basesvc.UpdateData) (articulo, error) {
	f.lastID = id
	f.lastUpdate = data
	return f.stored, f.updateErr
}

func (f *fakeService) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (articulo, error) {
	f.lastFilter = filter
	return f.stored, f.updateErr
}

func (f *fakeService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	f.lastID = id
	return f.deleteErr
}

func (f *fakeService) DeleteOne(ctx context.Context, filter interface{}) error {
	f.lastFilter = filter
	return f.deleteErr
}

func (f *fakeService) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeService) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return len(f.items) > 0, nil
}

func newTestApp(svc *fakeService) *fiber.App {
	h := NewBaseHandler[articulo, articuloCreate, articuloUpdate](svc, "Articulo")

	app := fiber.New()
	app.Post("/articulos", h.InsertOne)
	app.Get("/articulos", h.FindAll)
	app.Get("/articulos/por-nombre/:id", h.FindOneByKey("nombre"))
	app.Get("/articulos/:id", h.FindOneById)
	app.Put("/articulos/:id", h.UpdateById)
	app.Delete("/articulos/:id", h.DeleteById)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

type envelopeResult struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelopeResult {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelopeResult
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestInsertOne_TraVe201VoiDocument(t *testing.T) {
	svc := &fakeService{stored: articulo{ID: primitive.NewObjectID()}}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodPost, "/articulos", articuloCreate{Nombre: "arroz", Precio: "1500"})

	assert.Equal(t, common.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, common.MsgResultadoExitoso, env.Msg)

	var data articulo
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "arroz", data.Nombre)
	assert.Equal(t, "arroz", svc.lastInserted.Nombre)
}

func TestInsertOne_BodyRongTraVe400(t *testing.T) {
	app := newTestApp(&fakeService{})

	req := httptest.NewRequest(fiber.MethodPost, "/articulos", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestInsertOne_JSONSaiTraVe400(t *testing.T) {
	app := newTestApp(&fakeService{})

	req := httptest.NewRequest(fiber.MethodPost, "/articulos", bytes.NewReader([]byte("{không phải json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
}

func TestFindOneById_ThanhCong(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{stored: articulo{ID: oid, Nombre: "arroz"}}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodGet, "/articulos/"+oid.Hex(), nil)

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, oid, svc.lastID)
}

func TestFindOneById_IdSaiDinhDangTraVe400(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := doRequest(t, app, fiber.MethodGet, "/articulos/abc", nil)

	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Contains(t, env.Msg, "không đúng định dạng")
}

func TestFindOneById_KhongTimThayTraVe404(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{findErr: common.ErrNotFound}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodGet, "/articulos/"+oid.Hex(), nil)

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, fmt.Sprintf("Articulo %s no encontrado", oid.Hex()), env.Msg)
}

func TestFindOneByKey_TraCuuTheoField(t *testing.T) {
	svc := &fakeService{stored: articulo{Nombre: "arroz"}}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodGet, "/articulos/por-nombre/arroz", nil)

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.Equal(t, bson.M{"nombre": "arroz"}, svc.lastFilter)
}

func TestFindAll_DataLuonLaMang(t *testing.T) {
	svc := &fakeService{items: []articulo{}}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodGet, "/articulos", nil)

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "[]", string(env.Data))
}

func TestFindAll_LoiStorageTraVe500(t *testing.T) {
	svc := &fakeService{findErr: assert.AnError}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodGet, "/articulos", nil)

	assert.Equal(t, common.StatusInternalServerError, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, common.MsgErrorResultado, env.Msg)
}

func TestUpdateById_ChiGhiFieldCoMat(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{stored: articulo{ID: oid, Nombre: "arroz", Precio: "1500"}}
	app := newTestApp(svc)

	precio := "2000"
	resp := doRequest(t, app, fiber.MethodPut, "/articulos/"+oid.Hex(), articuloUpdate{Precio: &precio})

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.lastUpdate)
	assert.Equal(t, map[string]interface{}{"precio": "2000"}, svc.lastUpdate.Set)
}

func TestUpdateById_PayloadRongKhongGhiGi(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{stored: articulo{ID: oid, Nombre: "arroz"}}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodPut, "/articulos/"+oid.Hex(), map[string]interface{}{})

	// Merge set rỗng vẫn trả về document hiện tại
	assert.Equal(t, common.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.lastUpdate)
	assert.True(t, svc.lastUpdate.IsEmpty())

	env := decodeEnvelope(t, resp)
	var data articulo
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "arroz", data.Nombre)
}

func TestDeleteById_TraVe204KhongCoBody(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodDelete, "/articulos/"+oid.Hex(), nil)

	assert.Equal(t, common.StatusNoContent, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.Equal(t, oid, svc.lastID)
}

func TestDeleteById_KhongTimThayTraVe404(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeService{deleteErr: common.ErrNotFound}
	app := newTestApp(svc)

	resp := doRequest(t, app, fiber.MethodDelete, "/articulos/"+oid.Hex(), nil)

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, fmt.Sprintf("Articulo %s no encontrado", oid.Hex()), env.Msg)
}
