package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductoUpdateInput_MergeSetChiChuaFieldCoMat(t *testing.T) {
	precio := "2000"
	in := ProductoUpdateInput{Precio: &precio}

	set := in.MergeSet()
	assert.Equal(t, map[string]interface{}{"precio": "2000"}, set)
}

func TestProductoUpdateInput_MergeSetRongKhiKhongCoField(t *testing.T) {
	in := ProductoUpdateInput{}
	assert.Empty(t, in.MergeSet())
}

func TestProductoUpdateInput_ChuoiRongVanDuocGhi(t *testing.T) {
	// Pointer tới chuỗi rỗng là giá trị có mặt trong payload,
	// khác với field vắng mặt (pointer nil)
	vacio := ""
	in := ProductoUpdateInput{SubTipo: &vacio}

	set := in.MergeSet()
	assert.Equal(t, map[string]interface{}{"sub_tipo": ""}, set)
}

func TestProductoCreateInput_ToModel(t *testing.T) {
	in := ProductoCreateInput{Nombre: "arroz", Tipo: "grano", SubTipo: "blanco", Precio: "1500", Imagen: "data"}

	m := in.ToModel()
	assert.Equal(t, "arroz", m.Nombre)
	assert.Equal(t, "grano", m.Tipo)
	assert.Equal(t, "blanco", m.SubTipo)
	assert.Equal(t, "1500", m.Precio)
	assert.Equal(t, "data", m.Imagen)
	assert.True(t, m.ID.IsZero())
}

func TestTiendaUpdateInput_MergeSetDungTenBson(t *testing.T) {
	idUsuario := "662d0d325363bbc93a0c0425"
	horaInicio := "08:00"
	in := TiendaUpdateInput{IdUsuarioTendero: &idUsuario, HoraInicio: &horaInicio}

	set := in.MergeSet()
	assert.Equal(t, map[string]interface{}{
		"id_usuario_tendero": "662d0d325363bbc93a0c0425",
		"hora_inicio":        "08:00",
	}, set)
}

func TestUsuarioUpdateInput_MergeSet(t *testing.T) {
	email := "nuevo@correo.com"
	in := UsuarioUpdateInput{Email: &email}

	set := in.MergeSet()
	assert.Equal(t, map[string]interface{}{"email": "nuevo@correo.com"}, set)
}

func TestInventarioUpdateInput_MergeSet(t *testing.T) {
	cantidad := "25"
	in := InventarioUpdateInput{CantidadDisponibles: &cantidad}

	set := in.MergeSet()
	assert.Equal(t, map[string]interface{}{"cantidad_disponibles": "25"}, set)
}

func TestPedidoCreateInput_ToModel(t *testing.T) {
	in := PedidoCreateInput{IdTienda: "t1", IdCliente: "c1", Productos: "arroz,frijol", PrecioTotal: "4500"}

	m := in.ToModel()
	assert.Equal(t, "t1", m.IdTienda)
	assert.Equal(t, "c1", m.IdCliente)
	assert.Equal(t, "arroz,frijol", m.Productos)
	assert.Equal(t, "4500", m.PrecioTotal)
}
