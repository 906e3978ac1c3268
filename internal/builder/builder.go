package builder

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"processmap-generator/internal/derive"
	"processmap-generator/internal/diagnostic"
	"processmap-generator/internal/openapi"
	"processmap-generator/internal/record"
)

// ErrFinalized is returned when a finalized builder is used again.
var ErrFinalized = errors.New("builder already finalized")

// Options configures the document a [Builder] produces.
type Options struct {
	// OpenAPIVersion is written as the document's openapi field.
	OpenAPIVersion string
	// Info is the document's info block.
	Info openapi.Info
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		OpenAPIVersion: openapi.Version,
		Info:           openapi.DefaultInfo(),
	}
}

// Entry describes what a single record contributed.
type Entry struct {
	// Row is the source line of the record.
	Row    int
	Path   derive.PathKey
	Schema derive.SchemaKey
	// NewTag, NewPath and NewSchema report whether the record created the
	// tag, path entry or schema component.
	NewTag    bool
	NewPath   bool
	NewSchema bool
}

// Builder accumulates records into a document.
type Builder struct {
	doc       *openapi.Document
	tags      map[string]struct{}
	finalized bool
	diags     diagnostic.Diagnostics
}

// New creates an open builder holding an empty document.
func New(opts Options) *Builder {
	return &Builder{
		doc:  openapi.NewDocument(opts.OpenAPIVersion, opts.Info),
		tags: make(map[string]struct{}),
	}
}

// Add folds rec into the document.
func (b *Builder) Add(rec record.Record) (Entry, error) {
	if b.finalized {
		return Entry{}, ErrFinalized
	}

	if rec.Short() {
		b.diags.AddWarning(diagnostic.CodeShortRow,
			fmt.Sprintf("row has %d of %d columns, missing fields are empty", rec.Columns(), record.FieldCount),
			diagnostic.Location{Row: rec.Row})
	}

	entry := Entry{
		Row:    rec.Row,
		Path:   derive.Path(rec),
		Schema: derive.Schema(rec),
	}

	process := rec.Get(record.FieldProcessDescription)
	entry.NewTag = b.addTag(process)

	if entry.Path.Fallback {
		b.diags.AddInfo(diagnostic.CodeDefaultPath, "chapter and label are empty, using sequence number",
			diagnostic.Location{Row: rec.Row, Path: entry.Path.Key()})
	}

	item, ok := b.doc.Paths.Get(entry.Path.Key())
	if !ok {
		item = openapi.NewPathItem(entry.Path.Name, tableHeader, process)
		b.doc.Paths.Set(entry.Path.Key(), item)
		entry.NewPath = true
	}

	item.Options.Description += tableRow(
		entry.Schema.DisplayName,
		rec.Get(record.FieldSender),
		rec.Get(record.FieldReceiver),
		rec.Get(record.FieldDescription),
		rec.Get(record.FieldReaction),
		rec.Get(record.FieldProcessStep),
	)

	switch entry.Schema.Kind {
	case derive.KindReference:
		// documentation row only
	case derive.KindCheck:
		entry.NewSchema = b.addCheck(item, rec, entry)
	}

	return entry, nil
}

func (b *Builder) addTag(name string) bool {
	if _, ok := b.tags[name]; ok {
		return false
	}

	b.tags[name] = struct{}{}
	b.doc.Tags = append(b.doc.Tags, openapi.Tag{Name: name})

	return true
}

func (b *Builder) addCheck(item *openapi.PathItem, rec record.Record, entry Entry) bool {
	body := item.Body()
	example := body.DefaultExample()
	example.Value = append(example.Value, newExample(rec, entry.Schema))
	body.Schema.AnyOf = append(body.Schema.AnyOf, openapi.SchemaRef(entry.Schema.ID))

	schema := newSchema(rec)

	existing, ok := b.doc.Components.Schemas.Get(entry.Schema.ID)
	if !ok {
		b.doc.Components.Schemas.Set(entry.Schema.ID, schema)
		return true
	}

	if !sameSchema(existing, schema) {
		b.diags.AddWarning(diagnostic.CodeSchemaConflict,
			"row differs from the record that defined the schema, keeping the first definition",
			diagnostic.Location{Row: rec.Row, Path: entry.Path.Key(), Schema: entry.Schema.ID})
	}

	return false
}

// Diagnostics returns the findings collected so far.
func (b *Builder) Diagnostics() diagnostic.Diagnostics {
	return b.diags
}

// Finalize closes the builder and hands out the document.
func (b *Builder) Finalize() (*openapi.Document, error) {
	if b.finalized {
		return nil, ErrFinalized
	}

	b.finalized = true
	doc := b.doc
	b.doc = nil

	return doc, nil
}

// Build folds records into a new document. observe, if not nil, is called
// after each record and aborts the fold by returning an error. A record the
// source fails to yield is recorded as an error diagnostic and aborts the
// fold with the source's error.
func Build(ctx context.Context, opts Options, records iter.Seq2[record.Record, error], observe func(Entry) error) (*openapi.Document, diagnostic.Diagnostics, error) {
	b := New(opts)

	for rec, err := range records {
		if err != nil {
			loc := diagnostic.Location{}
			var rerr *record.ReadError
			if errors.As(err, &rerr) {
				loc.Row = rerr.Row
			}

			b.diags.AddError(diagnostic.CodeUnreadableRow, err.Error(), loc)

			return nil, b.Diagnostics(), err
		}

		if err := ctx.Err(); err != nil {
			return nil, b.Diagnostics(), err
		}

		entry, err := b.Add(rec)
		if err != nil {
			return nil, b.Diagnostics(), err
		}

		if observe != nil {
			if err := observe(entry); err != nil {
				return nil, b.Diagnostics(), err
			}
		}
	}

	doc, err := b.Finalize()

	return doc, b.Diagnostics(), err
}
