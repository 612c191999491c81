package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductDocument_Decode(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"_id":        oid,
		"name":       "NPK 15-15-15",
		"category":   "Fertilizers",
		"price":      25000.5,
		"unit":       "per 50kg bag",
		"in_stock":   true,
		"created_at": created,
	})
	require.NoError(t, err)

	var doc productDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	p := doc.toModel()

	assert.Equal(t, oid.Hex(), p.ID)
	assert.Equal(t, "NPK 15-15-15", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("25000.5")))
	assert.True(t, p.InStock)
	assert.True(t, created.Equal(p.CreatedAt))
	assert.NoError(t, p.Validate())
}

func TestCalendarDocument_Decode(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"_id":       "cal-7",
		"crop_name": "Cassava",
		"activity":  "Harvest",
		"month":     11,
		"season":    "Dry",
	})
	require.NoError(t, err)

	var doc calendarDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	e := doc.toModel()

	assert.Equal(t, "cal-7", e.ID)
	assert.Equal(t, 11, e.Month)
	assert.NoError(t, e.Validate())
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "", documentID(nil))
	assert.Equal(t, "abc", documentID("abc"))
	assert.Equal(t, "42", documentID(int32(42)))
}
