package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Pedido là đơn hàng của một cliente tại một tienda
type Pedido struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	IdTienda     string `json:"id_tienda,omitempty" bson:"id_tienda,omitempty" index:"single"`
	IdCliente    string `json:"id_cliente,omitempty" bson:"id_cliente,omitempty" index:"single"`
	Productos    string `json:"productos,omitempty" bson:"productos,omitempty"`
	PrecioTotal  string `json:"precio_total,omitempty" bson:"precio_total,omitempty"`
	Direccion    string `json:"direccion,omitempty" bson:"direccion,omitempty"`
	FechaEntrega string `json:"fecha_entrega,omitempty" bson:"fecha_entrega,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty" bson:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty" bson:"fecha_actualizacion,omitempty"`
}
