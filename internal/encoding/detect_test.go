package encoding_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	enc "github.com/studiodesk/studiodesk/internal/encoding"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	r, err := enc.NewUTF8Reader(strings.NewReader("Person,Advance\nMaría,3000\n"))
	require.NoError(t, err)
	assert.Equal(t, "Person,Advance\nMaría,3000\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	in := "\xEF\xBB\xBFPerson\n"

	r, err := enc.NewUTF8Reader(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Person\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("Person,Total\n")
	require.NoError(t, err)

	r, err := enc.NewUTF8Reader(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Person,Total\n", readAll(t, r))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("Sessão de fotos")
	require.NoError(t, err)

	r, err := enc.NewUTF8Reader(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Sessão de fotos", readAll(t, r))
}
