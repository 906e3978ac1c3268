package record

import "strings"

// Record is one row of the export mapped onto the positional fields.
type Record struct {
	// Row is the 1-based source line the row starts on.
	Row int

	values  [FieldCount]string
	columns int
}

// New builds a record from raw column values. Values are normalized the same
// way the reader normalizes them; columns beyond [FieldCount] are dropped.
func New(row int, columns ...string) Record {
	rec := Record{Row: row}

	n := min(len(columns), FieldCount)
	for i := range n {
		rec.values[i] = Normalize(columns[i])
	}

	rec.columns = n

	return rec
}

// FromFields builds a full-width record from named values. Fields missing
// from values are present but empty.
func FromFields(row int, values map[Field]string) Record {
	columns := make([]string, FieldCount)
	for f, v := range values {
		if f >= 0 && int(f) < FieldCount {
			columns[f] = v
		}
	}

	return New(row, columns...)
}

// Get returns the value of f, or "" when the row did not reach that column.
func (r Record) Get(f Field) string {
	v, _ := r.Lookup(f)
	return v
}

// Lookup returns the value of f and whether the row carried that column.
func (r Record) Lookup(f Field) (string, bool) {
	if f < 0 || int(f) >= r.columns {
		return "", false
	}

	return r.values[f], true
}

// Columns returns how many named fields the row carried.
func (r Record) Columns() int {
	return r.columns
}

// Short reports whether the row had fewer columns than there are fields.
func (r Record) Short() bool {
	return r.columns < FieldCount
}

// Map returns the present fields keyed by column alias.
func (r Record) Map() map[string]string {
	m := make(map[string]string, r.columns)
	for i := range r.columns {
		m[Field(i).String()] = r.values[i]
	}

	return m
}

var lineBreaks = strings.NewReplacer("\r\n", ", ", "\r", ", ", "\n", ", ")

// Normalize replaces every line break in v with ", ".
func Normalize(v string) string {
	if !strings.ContainsAny(v, "\r\n") {
		return v
	}

	return lineBreaks.Replace(v)
}
