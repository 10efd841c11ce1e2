package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tienda là cửa hàng của một usuario tendero.
// Tra cứu point lookup dùng IdUsuarioTendero thay vì _id.
type Tienda struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	IdUsuarioTendero string `json:"id_usuario_tendero,omitempty" bson:"id_usuario_tendero,omitempty" index:"single"`
	Nombre           string `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Ciudad           string `json:"ciudad,omitempty" bson:"ciudad,omitempty" index:"compound:ciudad_pais"`
	Pais             string `json:"pais,omitempty" bson:"pais,omitempty" index:"compound:ciudad_pais"`
	Direccion        string `json:"direccion,omitempty" bson:"direccion,omitempty"`
	Telefono         string `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Celular          string `json:"celular,omitempty" bson:"celular,omitempty"`
	HoraInicio       string `json:"hora_inicio,omitempty" bson:"hora_inicio,omitempty"`
	HoraFin          string `json:"hora_fin,omitempty" bson:"hora_fin,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty" bson:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}
