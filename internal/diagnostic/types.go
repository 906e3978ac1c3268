package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"processmap-generator/internal/common"
)

// Codes of the diagnostics emitted during a conversion.
const (
	CodeShortRow       = "SHORT_ROW"
	CodeDefaultPath    = "DEFAULT_PATH"
	CodeSchemaConflict = "SCHEMA_CONFLICT"
	CodeUnreadableRow  = "UNREADABLE_ROW"
)

// Diagnostics holds all diagnostic information from a conversion.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Row is the source line of the record this relates to (0 if none).
	Row int
	// Path is the document path this relates to (if any).
	Path string
	// Schema is the schema identifier this relates to (if any).
	Schema string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Location identifies what a diagnostic is about.
type Location struct {
	Row    int
	Path   string
	Schema string
}

func (d *Diagnostics) add(list *[]Diagnostic, sev Severity, code, message string, loc Location) {
	*list = append(*list, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Row:      loc.Row,
		Path:     loc.Path,
		Schema:   loc.Schema,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, loc Location) {
	d.add(&d.Errors, SeverityError, code, message, loc)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, loc Location) {
	d.add(&d.Warnings, SeverityWarning, code, message, loc)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, loc Location) {
	d.add(&d.Infos, SeverityInfo, code, message, loc)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// ByCode returns the diagnostics carrying code, in severity order.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	return common.Filter(d.All(), func(diag Diagnostic) bool {
		return diag.Code == code
	})
}

// Error returns a combined error from all error diagnostics, or nil if
// there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Row > 0 {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row))
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
