package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Inventario là tồn kho của một producto tại một tienda
type Inventario struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	IdProducto          string `json:"id_producto,omitempty" bson:"id_producto,omitempty" index:"compound:producto_tienda"`
	IdTienda            string `json:"id_tienda,omitempty" bson:"id_tienda,omitempty" index:"compound:producto_tienda"`
	CantidadDisponibles string `json:"cantidad_disponibles,omitempty" bson:"cantidad_disponibles,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty" bson:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}
