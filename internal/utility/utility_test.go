package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMap_TheoBsonTag(t *testing.T) {
	type doc struct {
		Nombre string `bson:"nombre"`
		Precio string `bson:"precio,omitempty"`
	}

	m, err := ToMap(doc{Nombre: "arroz", Precio: "1500"})
	require.NoError(t, err)
	assert.Equal(t, "arroz", m["nombre"])
	assert.Equal(t, "1500", m["precio"])
}

func TestToMap_OmitemptyBoQuaFieldRong(t *testing.T) {
	type doc struct {
		Nombre string `bson:"nombre"`
		Precio string `bson:"precio,omitempty"`
	}

	m, err := ToMap(doc{Nombre: "arroz"})
	require.NoError(t, err)
	_, hasPrecio := m["precio"]
	assert.False(t, hasPrecio)
}

func TestCustomBson_Set(t *testing.T) {
	type doc struct {
		Nombre string `bson:"nombre"`
	}

	cb := &CustomBson{}
	m, err := cb.Set(doc{Nombre: "arroz"})
	require.NoError(t, err)

	set, ok := m["$set"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "arroz", set["nombre"])
}

func TestNowRFC3339_ParseDuoc(t *testing.T) {
	s := NowRFC3339()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestString2ObjectID_RoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	s := ObjectID2String(oid)
	assert.Equal(t, oid, String2ObjectID(s))
}

func TestString2ObjectID_SaiDinhDangTraVeNil(t *testing.T) {
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("không phải hex"))
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	got := StringArray2ObjectIDArray([]string{a.Hex(), b.Hex()})
	assert.Equal(t, []primitive.ObjectID{a, b}, got)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.0 MB", FormatBytes(1024*1024))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
