package derive

import (
	"regexp"
	"strings"

	"processmap-generator/internal/record"
)

// DefaultPathPrefix prefixes the synthetic path of a record whose grouping
// fields are empty.
const DefaultPathPrefix = "default_path_"

var (
	chapterPrefix = regexp.MustCompile(`^(.+Nr\.)`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// PathKey is the path a record is grouped under.
type PathKey struct {
	// Name is the path without the leading slash. It doubles as the summary
	// of the path entry.
	Name string
	// Fallback is set when Name was synthesized from the sequence number.
	Fallback bool
}

// Key returns the key used in the document's paths mapping.
func (p PathKey) Key() string {
	return "/" + p.Name
}

// Path derives the path key of rec. Gas-sector records are grouped by
// chapter, all others by label.
func Path(rec record.Record) PathKey {
	var name string

	if IsGasSector(rec) {
		name = Chapter(strings.TrimSpace(rec.Get(record.FieldChapter)))
	} else {
		name = underscore(strings.TrimSpace(rec.Get(record.FieldLabel)))
	}

	if strings.TrimSpace(name) == "" {
		return PathKey{Name: DefaultPathPrefix + rec.Get(record.FieldSequenceNumber), Fallback: true}
	}

	return PathKey{Name: name}
}

// IsGasSector reports whether the gas-sector flag of rec is set.
func IsGasSector(rec record.Record) bool {
	return strings.ToUpper(strings.TrimSpace(rec.Get(record.FieldSectorGas))) == "X"
}

// Chapter cuts a chapter title after its last "Nr." and replaces whitespace
// with underscores. Titles without "Nr." are kept whole.
func Chapter(chapter string) string {
	if m := chapterPrefix.FindStringSubmatch(chapter); m != nil {
		return underscore(m[1])
	}

	return underscore(chapter)
}

func underscore(s string) string {
	return whitespace.ReplaceAllString(s, "_")
}
