package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"processmap-generator/internal/builder"
	"processmap-generator/internal/config"
	"processmap-generator/internal/diagnostic"
	"processmap-generator/internal/openapi"
	"processmap-generator/internal/progress"
	"processmap-generator/internal/record"
)

// Fatal conditions of a conversion.
var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrSourceUnreadable = errors.New("source unreadable")
	ErrOutputUnwritable = errors.New("output unwritable")
)

// Result summarizes a finished conversion.
type Result struct {
	// Output is the resolved location of the written document.
	Output      string
	Records     int
	Paths       int
	Schemas     int
	Tags        int
	Diagnostics diagnostic.Diagnostics
}

// Converter runs conversions for one configuration.
type Converter struct {
	cfg     config.Config
	logger  zerolog.Logger
	sink    progress.Sink
	storage *storage
	now     func() time.Time
}

// Option configures a [Converter].
type Option func(*Converter)

// WithLogger sets the operator-facing logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithProgress sets the progress log sink.
func WithProgress(sink progress.Sink) Option {
	return func(c *Converter) {
		c.sink = sink
	}
}

// WithClock sets the time source used for the start line of the log.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// New creates a converter. Without options it logs nowhere and writes the
// progress log to cfg.LogFile.
func New(cfg config.Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:     cfg,
		logger:  zerolog.Nop(),
		sink:    progress.NewFileLog(cfg.LogFile),
		storage: newStorage(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run performs the conversion.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	if err := c.sink.Started(c.now()); err != nil {
		return nil, err
	}

	source := location(c.cfg.Source)
	output := location(c.cfg.Output)

	c.logger.Info().Str("source", source).Str("output", output).Msg("conversion started")

	data, err := c.storage.read(ctx, source)
	if err != nil {
		return nil, err
	}

	reader, err := record.NewReader(bytes.NewReader(data), record.WithEncoding(record.Encoding(c.cfg.Encoding)))
	if err != nil {
		return nil, err
	}

	opts := builder.Options{
		OpenAPIVersion: c.cfg.OpenAPIVersion,
		Info:           c.cfg.DocumentInfo(),
	}

	records := 0
	doc, diags, err := builder.Build(ctx, opts, sourceRecords(reader), func(entry builder.Entry) error {
		records++

		c.logger.Debug().
			Int("row", entry.Row).
			Str("path", entry.Path.Key()).
			Str("schema", entry.Schema.ID).
			Str("kind", entry.Schema.Kind.String()).
			Bool("new_path", entry.NewPath).
			Msg("record added")

		return c.sink.Added(entry.Path.Key(), entry.Schema.ID)
	})
	if err != nil {
		if diags.HasErrors() {
			c.logger.Error().Err(diags.Error()).Int("records", records).Msg("source rejected")
		}

		return nil, err
	}

	out, err := openapi.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}

	if err := c.storage.write(ctx, output, out); err != nil {
		return nil, err
	}

	if err := c.sink.Finished(c.cfg.Output); err != nil {
		return nil, err
	}

	res := &Result{
		Output:      output,
		Records:     records,
		Paths:       doc.Paths.Len(),
		Schemas:     doc.Components.Schemas.Len(),
		Tags:        len(doc.Tags),
		Diagnostics: diags,
	}

	c.report(res)

	return res, nil
}

// sourceRecords marks every error of the reader as a source failure.
func sourceRecords(r *record.Reader) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for rec, err := range r.All() {
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
			}

			if !yield(rec, err) {
				return
			}
		}
	}
}

func (c *Converter) report(res *Result) {
	for _, d := range res.Diagnostics.Warnings {
		c.logger.Warn().Str("code", d.Code).Int("row", d.Row).Str("schema", d.Schema).Msg(d.Message)
	}

	for _, d := range res.Diagnostics.Infos {
		c.logger.Info().Str("code", d.Code).Int("row", d.Row).Str("path", d.Path).Msg(d.Message)
	}

	c.logger.Info().
		Int("records", res.Records).
		Int("paths", res.Paths).
		Int("schemas", res.Schemas).
		Int("tags", res.Tags).
		Int("warnings", len(res.Diagnostics.Warnings)).
		Str("output", res.Output).
		Msg("conversion finished")
}
