package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Reactor là một reactor nghiên cứu trong registry IAEA
type Reactor struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	NombreReactor        string  `json:"nombre_reactor,omitempty" bson:"nombre_reactor,omitempty"`
	Pais                 string  `json:"pais,omitempty" bson:"pais,omitempty" index:"compound:pais_ciudad"`
	Ciudad               string  `json:"ciudad,omitempty" bson:"ciudad,omitempty" index:"compound:pais_ciudad"`
	Tipo                 string  `json:"tipo,omitempty" bson:"tipo,omitempty" index:"single"`
	PotenciaTermica      float64 `json:"potencia_termica,omitempty" bson:"potencia_termica,omitempty"`
	Estado               string  `json:"estado,omitempty" bson:"estado,omitempty"`
	FechaPrimeraReaccion string  `json:"fecha_primera_reaccion,omitempty" bson:"fecha_primera_reaccion,omitempty"`
}
