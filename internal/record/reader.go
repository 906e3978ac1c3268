package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the character set of the export.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingISO88591    Encoding = "iso-8859-1"
)

// DefaultComma is the column delimiter of the export.
const DefaultComma = ';'

// ErrUnknownEncoding is returned for an [Encoding] the reader cannot decode.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ReadError reports a record the reader could not read.
type ReadError struct {
	// Row is the source line the failing record starts on.
	Row int
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading record at line %d: %v", e.Row, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Option configures a [Reader].
type Option func(*options)

type options struct {
	encoding Encoding
	comma    rune
}

// WithEncoding sets the character set used to decode the source.
func WithEncoding(enc Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithComma overrides the column delimiter.
func WithComma(comma rune) Option {
	return func(o *options) {
		o.comma = comma
	}
}

// Reader yields records from a delimited source in input order.
type Reader struct {
	csv   *csv.Reader
	count int
}

// NewReader wraps src. A leading byte-order mark is dropped before decoding.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	o := options{encoding: EncodingUTF8, comma: DefaultComma}
	for _, opt := range opts {
		opt(&o)
	}

	dec, err := decoder(o.encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(src, unicode.BOMOverride(dec.NewDecoder())))
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return &Reader{csv: cr}, nil
}

func decoder(enc Encoding) (encoding.Encoding, error) {
	switch enc {
	case EncodingUTF8, "":
		return unicode.UTF8, nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	case EncodingISO88591:
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
	}
}

// Next returns the next record, or io.EOF when the source is exhausted.
func (r *Reader) Next() (Record, error) {
	columns, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}

		row := r.count + 1
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			row = perr.StartLine
		}

		return Record{}, &ReadError{Row: row, Err: err}
	}

	r.count++
	line, _ := r.csv.FieldPos(0)

	return New(line, columns...), nil
}

// All returns a lazy sequence over the remaining records. Iteration ends
// after the first error, which is yielded with a zero record.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(Record{}, err)
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}
