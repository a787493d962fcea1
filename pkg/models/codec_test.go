package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

func TestDecodeObject(t *testing.T) {
	assert := assert.New(t)

	m, err := models.DecodeObject([]byte(`{"n": 42, "s": "x"}`))
	require.NoError(t, err)
	assert.Equal(json.Number("42"), m["n"])

	_, err = models.DecodeObject([]byte(`null`))
	assert.ErrorIs(err, models.ErrNotObject)

	_, err = models.DecodeObject([]byte(`[1, 2]`))
	assert.Error(err)

	_, err = models.DecodeObject([]byte(`{"a": 1} {"b": 2}`))
	assert.Error(err)

	_, err = models.DecodeObject([]byte(`{"a": `))
	assert.Error(err)
}

func TestReader_DoesNotModifySource(t *testing.T) {
	src := map[string]any{"connection_id": "c1", "state": "active", "foo": "bar"}
	_, err := models.ConnRecordFromMap(src)
	require.NoError(t, err)
	assert.Len(t, src, 3)
}

func TestReader_OptionalStates(t *testing.T) {
	assert := assert.New(t)

	r := models.NewReader("Test", map[string]any{"a": nil, "b": "x", "n": json.Number("7")})
	a := r.OptString("a")
	b := r.OptString("b")
	c := r.OptString("c")
	n := r.OptInt("n")
	require.NoError(t, r.Err())

	assert.True(a.IsNull())
	assert.Equal("x", b.OrElse(""))
	assert.False(c.IsSet())
	assert.Equal(7, n.OrElse(0))
	assert.Nil(r.Rest())
}

func TestReader_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  map[string]any
		read func(*models.Reader)
	}{
		{name: "string as number", src: map[string]any{"k": json.Number("1")}, read: func(r *models.Reader) { r.String("k") }},
		{name: "fractional int", src: map[string]any{"k": json.Number("1.5")}, read: func(r *models.Reader) { r.OptInt("k") }},
		{name: "mixed string list", src: map[string]any{"k": []any{"a", true}}, read: func(r *models.Reader) { r.OptStrings("k") }},
		{name: "object as string", src: map[string]any{"k": "x"}, read: func(r *models.Reader) { r.OptObject("k") }},
		{name: "required null", src: map[string]any{"k": nil}, read: func(r *models.Reader) { r.Bool("k") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.NewReader("Test", tt.src)
			tt.read(r)
			var typeErr *models.FieldTypeError
			require.ErrorAs(t, r.Err(), &typeErr)
			assert.Equal(t, "k", typeErr.Key)
			assert.ErrorIs(t, r.Err(), models.ErrFieldType)
		})
	}
}

func TestWriter_DeclaredFieldsWinOverExtras(t *testing.T) {
	rec := models.ConnRecord{
		ConnectionID:         "c1",
		State:                "active",
		AdditionalProperties: map[string]any{"state": "stale", "foo": 42},
	}
	assert.Equal(t, map[string]any{"connection_id": "c1", "state": "active", "foo": 42}, rec.ToMap())
}

func TestWriter_NullIsEmittedUnsetIsNot(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(map[string]any{"comment": nil}, models.PingRequest{Comment: types.Null[string]()}.ToMap())
	assert.Equal(map[string]any{}, models.PingRequest{}.ToMap())
	assert.Equal(map[string]any{"comment": ""}, models.PingRequest{Comment: types.Some("")}.ToMap())
}
