package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/entity"
)

type widget struct {
	entity.BaseRecord
	Label  string  `db:"label"`
	Weight float64 `db:"weight"`
	Hidden string  // no db tag, not a column
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[widget]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "user_id")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")
	assert.Contains(t, cols, "label")
	assert.Contains(t, cols, "weight")
	assert.NotContains(t, cols, "Hidden")
	assert.NotContains(t, cols, "hidden")
}

func TestStructToMap(t *testing.T) {
	w := &widget{
		BaseRecord: entity.NewBaseRecord(),
		Label:      "gear",
		Weight:     2.5,
		Hidden:     "nope",
	}
	w.SetOwner("u1")

	m := StructToMap(w)
	require.NotNil(t, m)

	assert.Equal(t, "gear", m["label"])
	assert.Equal(t, 2.5, m["weight"])
	assert.Equal(t, w.ID, m["id"])
	assert.Equal(t, "u1", m["user_id"])
	assert.NotContains(t, m, "Hidden")
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
