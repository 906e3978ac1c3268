package derive

import (
	"strings"

	"processmap-generator/internal/record"
)

// Identifier prefixes and markers.
const (
	CheckPrefix     = "PI"
	ReferencePrefix = "REF"
	ReferenceMarker = "--"
	Arrow           = "→"
)

// Kind distinguishes records that carry a check identifier from
// documentation-only references.
type Kind int

const (
	// KindCheck records contribute a schema component and an example.
	KindCheck Kind = iota
	// KindReference records only contribute a documentation row.
	KindReference
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCheck:
		return "check"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// SchemaKey identifies the schema a record belongs to.
type SchemaKey struct {
	Kind Kind
	// ID is the schema identifier, "PI<check>" or "REF<action>".
	ID string
	// DisplayName is shown in the documentation table.
	DisplayName string
}

// IsReference reports whether the key is documentation-only.
func (k SchemaKey) IsReference() bool {
	return k.Kind == KindReference
}

// Schema derives the schema key of rec.
func Schema(rec record.Record) SchemaKey {
	check := strings.TrimSpace(rec.Get(record.FieldCheckIdentifier))

	if check == ReferenceMarker {
		action := strings.TrimSpace(rec.Get(record.FieldAction))

		return SchemaKey{
			Kind:        KindReference,
			ID:          ReferencePrefix + action,
			DisplayName: Arrow + " " + action,
		}
	}

	id := CheckPrefix + check

	return SchemaKey{Kind: KindCheck, ID: id, DisplayName: id}
}
