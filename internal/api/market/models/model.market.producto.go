// Package models định nghĩa các model MongoDB của domain market.
// Tên field giữ nguyên tiếng Tây Ban Nha vì đây là schema dữ liệu
// hiện có trong database, frontend đọc trực tiếp các field này.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Producto là sản phẩm bán trong minimarket
type Producto struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Nombre  string `json:"nombre,omitempty" bson:"nombre,omitempty" index:"single"`
	Imagen  string `json:"imagen,omitempty" bson:"imagen,omitempty"`
	Tipo    string `json:"tipo,omitempty" bson:"tipo,omitempty" index:"single"`
	SubTipo string `json:"sub_tipo,omitempty" bson:"sub_tipo,omitempty"`
	Precio  string `json:"precio,omitempty" bson:"precio,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty" bson:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}
