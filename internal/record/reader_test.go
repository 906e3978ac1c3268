package record

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func collect(t *testing.T, r *Reader) []Record {
	t.Helper()

	var out []Record

	for rec, err := range r.All() {
		require.NoError(t, err)

		out = append(out, rec)
	}

	return out
}

func TestReaderReadsRowsInOrder(t *testing.T) {
	src := "1;a;erste\n2;b;zweite;12345\n"

	r, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)

	recs := collect(t, r)
	require.Len(t, recs, 2)

	assert.Equal(t, "1", recs[0].Get(FieldSequenceNumber))
	assert.Equal(t, "erste", recs[0].Get(FieldDescription))
	assert.Equal(t, 3, recs[0].Columns())
	assert.Equal(t, 1, recs[0].Row)

	assert.Equal(t, "12345", recs[1].Get(FieldCheckIdentifier))
	assert.Equal(t, 2, recs[1].Row)
}

func TestReaderFlattensQuotedLineBreaks(t *testing.T) {
	src := "1;;\"erste Zeile\nzweite Zeile\";PI\n"

	r, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)

	recs := collect(t, r)
	require.Len(t, recs, 1)
	assert.Equal(t, "erste Zeile, zweite Zeile", recs[0].Get(FieldDescription))
	assert.Equal(t, "PI", recs[0].Get(FieldCheckIdentifier))
}

func TestReaderSkipsBOM(t *testing.T) {
	src := "\ufeff7;ahb\n"

	r, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)

	recs := collect(t, r)
	require.Len(t, recs, 1)
	assert.Equal(t, "7", recs[0].Get(FieldSequenceNumber))
}

func TestReaderDecodesWindows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("1;;Prüfung")
	require.NoError(t, err)

	r, err := NewReader(strings.NewReader(encoded), WithEncoding(EncodingWindows1252))
	require.NoError(t, err)

	recs := collect(t, r)
	require.Len(t, recs, 1)
	assert.Equal(t, "Prüfung", recs[0].Get(FieldDescription))
}

func TestReaderUnknownEncoding(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), WithEncoding("ebcdic"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestReaderCustomComma(t *testing.T) {
	r, err := NewReader(strings.NewReader("1,ahb\n"), WithComma(','))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ahb", rec.Get(FieldAHB))

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSkipsEmptyLines(t *testing.T) {
	r, err := NewReader(strings.NewReader("1;a\n\n2;b\n"))
	require.NoError(t, err)

	recs := collect(t, r)
	require.Len(t, recs, 2)
	assert.Equal(t, 3, recs[1].Row)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestReaderSurfacesSourceErrors(t *testing.T) {
	r, err := NewReader(failingReader{})
	require.NoError(t, err)

	var seen []error
	for _, err := range r.All() {
		seen = append(seen, err)
	}

	require.Len(t, seen, 1)
	assert.ErrorContains(t, seen[0], "disk gone")

	var rerr *ReadError
	require.ErrorAs(t, seen[0], &rerr)
	assert.Equal(t, 1, rerr.Row)
}

func TestReaderReportsMalformedRow(t *testing.T) {
	r, err := NewReader(strings.NewReader("1;a\n2;b\n3;\"x\"y\"\n"))
	require.NoError(t, err)
	r.csv.LazyQuotes = false

	recs := 0
	var last error
	for _, err := range r.All() {
		if err != nil {
			last = err
			break
		}
		recs++
	}

	assert.Equal(t, 2, recs)

	var rerr *ReadError
	require.ErrorAs(t, last, &rerr)
	assert.Equal(t, 3, rerr.Row)

	var perr *csv.ParseError
	assert.ErrorAs(t, last, &perr)
}

func TestReaderAllStopsWhenConsumerBreaks(t *testing.T) {
	r, err := NewReader(strings.NewReader("1\n2\n3\n"))
	require.NoError(t, err)

	n := 0
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", rec.Get(FieldSequenceNumber))
}
