// Package record reads the semicolon-delimited process export into
// positional records.
//
// The export has no header row. Each column maps onto a fixed [Field] in
// declaration order; rows with fewer columns leave the trailing fields
// absent, extra columns are ignored. Line breaks inside quoted values are
// flattened to ", " so that values can be placed into Markdown table cells.
//
//	r, err := record.NewReader(f, record.WithEncoding(record.EncodingWindows1252))
//	if err != nil {
//		return err
//	}
//
//	for rec, err := range r.All() {
//		if err != nil {
//			return err
//		}
//
//		fmt.Println(rec.Get(record.FieldCheckIdentifier))
//	}
package record
