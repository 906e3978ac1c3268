package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldString(t *testing.T) {
	assert.Equal(t, "lfd_nr", FieldSequenceNumber.String())
	assert.Equal(t, "pruefidentifikator", FieldCheckIdentifier.String())
	assert.Equal(t, "sparte_gas", FieldSectorGas.String())
	assert.Equal(t, "komm_an_schreibende_schnittstellen", FieldReceiverWritingAPIs.String())
	assert.Equal(t, "Field(26)", Field(FieldCount).String())
	assert.Len(t, Fields(), 26)
}

func TestFieldByName(t *testing.T) {
	f, ok := FieldByName("kapitel")
	assert.True(t, ok)
	assert.Equal(t, FieldChapter, f)

	_, ok = FieldByName("unknown")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"a\nb", "a, b"},
		{"a\r\nb", "a, b"},
		{"a\rb", "a, b"},
		{"a\n\nb", "a, , b"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNewShortRecord(t *testing.T) {
	rec := New(3, "1", "ahb", "line one\nline two")

	assert.Equal(t, 3, rec.Row)
	assert.Equal(t, 3, rec.Columns())
	assert.True(t, rec.Short())
	assert.Equal(t, "line one, line two", rec.Get(FieldDescription))

	v, ok := rec.Lookup(FieldCheckIdentifier)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Empty(t, rec.Get(FieldReceiverWritingAPIs))

	assert.Equal(t, map[string]string{
		"lfd_nr":       "1",
		"ahb":          "ahb",
		"beschreibung": "line one, line two",
	}, rec.Map())
}

func TestNewDropsExtraColumns(t *testing.T) {
	columns := make([]string, FieldCount+3)
	for i := range columns {
		columns[i] = "v"
	}

	rec := New(1, columns...)
	assert.Equal(t, FieldCount, rec.Columns())
	assert.False(t, rec.Short())
	assert.Len(t, rec.Map(), FieldCount)
}

func TestFromFields(t *testing.T) {
	rec := FromFields(4, map[Field]string{
		FieldLabel:     "Bestellung\nStart",
		Field(99):      "ignored",
		FieldSectorGas: "X",
	})

	assert.Equal(t, 4, rec.Row)
	assert.False(t, rec.Short())
	assert.Equal(t, "Bestellung, Start", rec.Get(FieldLabel))
	assert.Equal(t, "X", rec.Get(FieldSectorGas))

	v, ok := rec.Lookup(FieldAction)
	assert.True(t, ok)
	assert.Empty(t, v)
}
