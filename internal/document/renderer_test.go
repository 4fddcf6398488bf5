package document_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiodesk/studiodesk/internal/document"
)

func newRenderer() *document.Renderer {
	return document.NewRenderer(document.Config{
		BusinessName: "StudioDesk Photography",
		ContactLine:  "bookings@studiodesk.example | +1 555 0100",
	})
}

func TestFieldsFromJSON_PreservesOrderAndBlanksFalsy(t *testing.T) {
	raw := []byte(`{"customerName":"Jane","unused":"","eventDate":"2026-09-12","deposit":0,"confirmed":true,"note":null}`)

	fields, err := document.FieldsFromJSON(raw)
	require.NoError(t, err)
	require.Len(t, fields, 6)

	assert.Equal(t, document.Field{Key: "customerName", Value: "Jane"}, fields[0])
	assert.Equal(t, document.Field{Key: "unused", Value: ""}, fields[1])
	assert.Equal(t, document.Field{Key: "eventDate", Value: "2026-09-12"}, fields[2])
	assert.Equal(t, document.Field{Key: "deposit", Value: ""}, fields[3])
	assert.Equal(t, document.Field{Key: "confirmed", Value: "true"}, fields[4])
	assert.Equal(t, document.Field{Key: "note", Value: ""}, fields[5])
}

func TestFieldsFromJSON_RejectsNonObject(t *testing.T) {
	_, err := document.FieldsFromJSON([]byte(`["a","b"]`))
	assert.Error(t, err)
}

func TestFieldsFromJSON_Empty(t *testing.T) {
	fields, err := document.FieldsFromJSON(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestRender_SkipsEmptyFields(t *testing.T) {
	out, err := newRenderer().Render([]document.Field{
		{Key: "name", Value: "A"},
		{Key: "unused", Value: ""},
	}, "Quote")
	require.NoError(t, err)

	// Compression is off, so text drawing operators are inspectable.
	assert.True(t, bytes.Contains(out, []byte("Name:  A")), "expected a line for Name")
	assert.False(t, bytes.Contains(out, []byte("Unused")), "expected no line for unused")
}

func TestRender_HumanizesKeys(t *testing.T) {
	out, err := newRenderer().Render([]document.Field{
		{Key: "customerName", Value: "Jane Doe"},
		{Key: "eventDate", Value: "2026-09-12"},
	}, "Wedding Confirmation")
	require.NoError(t, err)

	assert.True(t, bytes.Contains(out, []byte("Customer Name:  Jane Doe")))
	assert.True(t, bytes.Contains(out, []byte("Event Date:  2026-09-12")))
	assert.True(t, bytes.Contains(out, []byte("Wedding Confirmation")))
	assert.True(t, bytes.Contains(out, []byte("StudioDesk Photography")))
}

func TestRender_Deterministic(t *testing.T) {
	fields := []document.Field{
		{Key: "customerName", Value: "Jane Doe"},
		{Key: "package", Value: "Gold"},
	}

	r := newRenderer()

	first, err := r.Render(fields, "Quote")
	require.NoError(t, err)

	second, err := r.Render(fields, "Quote")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "repeated renders must be byte-identical")
}

func TestRender_FieldOrderFollowsInput(t *testing.T) {
	out, err := newRenderer().Render([]document.Field{
		{Key: "zulu", Value: "1"},
		{Key: "alpha", Value: "2"},
	}, "Quote")
	require.NoError(t, err)

	zulu := bytes.Index(out, []byte("Zulu:  1"))
	alpha := bytes.Index(out, []byte("Alpha:  2"))
	require.GreaterOrEqual(t, zulu, 0)
	require.GreaterOrEqual(t, alpha, 0)
	assert.Less(t, zulu, alpha, "fields must render in input order")
}
