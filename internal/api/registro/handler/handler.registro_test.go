package registrohdl

import (
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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
)

type fakeReactorStore struct {
	items     []models.Reactor
	findErr   error
	deleteErr error
	lastID    primitive.ObjectID
}

func (f *fakeReactorStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Reactor, error) {
	return f.items, f.findErr
}

func (f *fakeReactorStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	f.lastID = id
	return f.deleteErr
}

type fakeTipoReactorStore struct {
	tipos     []models.TipoReactor
	reactores []models.Reactor
	joinErr   error
	lastID    primitive.ObjectID
}

func (f *fakeTipoReactorStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.TipoReactor, error) {
	return f.tipos, nil
}

func (f *fakeTipoReactorStore) ReactoresPorTipo(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error) {
	f.lastID = id
	return f.reactores, f.joinErr
}

type fakeUbicacionStore struct {
	ubicaciones []models.Ubicacion
	stored      models.Ubicacion
	reactores   []models.Reactor
	findErr     error
	joinErr     error
}

func (f *fakeUbicacionStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Ubicacion, error) {
	return f.ubicaciones, nil
}

func (f *fakeUbicacionStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.Ubicacion, error) {
	return f.stored, f.findErr
}

func (f *fakeUbicacionStore) ReactoresEnUbicacion(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error) {
	return f.reactores, f.joinErr
}

type envelopeResult struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, envelopeResult) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelopeResult
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestReactorFindAll(t *testing.T) {
	store := &fakeReactorStore{items: []models.Reactor{
		{NombreReactor: "TRICO II", Pais: "Democratic Republic of the Congo", Ciudad: "Kinshasa", Tipo: "TRIGA MARK II", PotenciaTermica: 1000},
	}}
	app := fiber.New()
	app.Get("/reactores-registrados", NewReactorHandler(store).FindAll)

	resp, env := doGet(t, app, "/reactores-registrados")

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, common.MsgResultadoExitoso, env.Msg)

	var data []models.Reactor
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "TRICO II", data[0].NombreReactor)
}

func TestReactorDeleteById(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeReactorStore{}
	app := fiber.New()
	app.Delete("/eliminar-reactor/:id", NewReactorHandler(store).DeleteById)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/eliminar-reactor/"+oid.Hex(), nil))
	require.NoError(t, err)

	assert.Equal(t, common.StatusNoContent, resp.StatusCode)
	assert.Equal(t, oid, store.lastID)
}

func TestReactorDeleteById_KhongTimThay(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeReactorStore{deleteErr: common.ErrNotFound}
	app := fiber.New()
	app.Delete("/eliminar-reactor/:id", NewReactorHandler(store).DeleteById)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/eliminar-reactor/"+oid.Hex(), nil))
	require.NoError(t, err)

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelopeResult
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.False(t, env.Success)
	assert.Equal(t, fmt.Sprintf("Reactor %s no encontrado", oid.Hex()), env.Msg)
}

func TestReactorDeleteById_IdSaiDinhDang(t *testing.T) {
	store := &fakeReactorStore{}
	app := fiber.New()
	app.Delete("/eliminar-reactor/:id", NewReactorHandler(store).DeleteById)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/eliminar-reactor/abc", nil))
	require.NoError(t, err)

	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
}

func TestTipoReactorReactoresPorTipo(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeTipoReactorStore{reactores: []models.Reactor{
		{NombreReactor: "PBR Plum Brook Reactor", Tipo: "TANK"},
		{NombreReactor: "HFETR", Tipo: "TANK"},
	}}
	app := fiber.New()
	app.Get("/tipo-reactores-identificador/:id", NewTipoReactorHandler(store).ReactoresPorTipo)

	resp, env := doGet(t, app, "/tipo-reactores-identificador/"+oid.Hex())

	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.Equal(t, oid, store.lastID)

	var data []models.Reactor
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 2)
}

func TestTipoReactorReactoresPorTipo_TipoKhongTonTai(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeTipoReactorStore{joinErr: common.ErrNotFound}
	app := fiber.New()
	app.Get("/tipo-reactores-identificador/:id", NewTipoReactorHandler(store).ReactoresPorTipo)

	resp, env := doGet(t, app, "/tipo-reactores-identificador/"+oid.Hex())

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, fmt.Sprintf("Tipo de reactor %s no encontrado", oid.Hex()), env.Msg)
}

func TestUbicacionFindAll(t *testing.T) {
	store := &fakeUbicacionStore{ubicaciones: []models.Ubicacion{
		{NombrePais: "Algeria", NombreCiudad: "Algiers"},
	}}
	app := fiber.New()
	app.Get("/reactores-registrados-ubicacion", NewUbicacionHandler(store).FindAll)

	resp, env := doGet(t, app, "/reactores-registrados-ubicacion")

	assert.Equal(t, common.StatusOK, resp.StatusCode)

	var data []models.Ubicacion
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Algiers", data[0].NombreCiudad)
}

func TestUbicacionReactoresEnUbicacion(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeUbicacionStore{reactores: []models.Reactor{
		{NombreReactor: "TRICO I", Pais: "Democratic Republic of the Congo", Ciudad: "Kinshasa"},
	}}
	app := fiber.New()
	app.Get("/ubicaciones-reactores-registrados/:id", NewUbicacionHandler(store).ReactoresEnUbicacion)

	resp, env := doGet(t, app, "/ubicaciones-reactores-registrados/"+oid.Hex())

	assert.Equal(t, common.StatusOK, resp.StatusCode)

	var data []models.Reactor
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "TRICO I", data[0].NombreReactor)
}

func TestUbicacionFindOneById_KhongTimThay(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeUbicacionStore{findErr: common.ErrNotFound}
	app := fiber.New()
	app.Get("/ubicacion-reactor-identificador/:id", NewUbicacionHandler(store).FindOneById)

	resp, env := doGet(t, app, "/ubicacion-reactor-identificador/"+oid.Hex())

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Ubicacion %s no encontrado", oid.Hex()), env.Msg)
}
