package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TipoReactor là loại reactor (TANK, HEAVY WATER, ...)
type TipoReactor struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Tipo string `json:"tipo,omitempty" bson:"tipo,omitempty"`
}
