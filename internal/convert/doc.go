// Package convert runs a complete conversion: it reads the process export,
// folds its records into an OpenAPI document, writes the document and keeps
// the progress log.
//
// Source and output are resolved through github.com/viant/afs, so either can
// be a local path or any URL afs supports. The output is uploaded next to its
// destination first and moved into place once complete; a failed run never
// leaves a half-written document behind.
package convert
