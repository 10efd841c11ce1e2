package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Usuario là tài khoản người dùng (tendero hoặc cliente).
// Tra cứu iniciar-sesion dùng Email thay vì _id.
type Usuario struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	NombreCompleto string `json:"nombre_completo,omitempty" bson:"nombre_completo,omitempty"`
	Email          string `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password       string `json:"password,omitempty" bson:"password,omitempty"`
	Pais           string `json:"pais,omitempty" bson:"pais,omitempty"`
	Ciudad         string `json:"ciudad,omitempty" bson:"ciudad,omitempty"`
	Tipo           string `json:"tipo,omitempty" bson:"tipo,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty" bson:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}
