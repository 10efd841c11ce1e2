// Package models định nghĩa các model của registro hạt nhân legacy.
// Ba collection này đến từ template gốc của dự án và chỉ có read path
// (trừ route xóa reactor), không có timestamp fecha_creacion.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ubicacion là vị trí địa lý (pais + ciudad) của các reactor
type Ubicacion struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	NombrePais   string `json:"nombre_pais,omitempty" bson:"nombre_pais,omitempty"`
	NombreCiudad string `json:"nombre_ciudad,omitempty" bson:"nombre_ciudad,omitempty"`
}
