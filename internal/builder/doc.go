// Package builder folds process records into an OpenAPI document.
//
// A [Builder] owns the document it grows. Records are added one at a time in
// source order:
//
//  1. the process description becomes a tag the first time it is seen
//  2. the record's path entry is created on first use, seeded with the header
//     of a Markdown table
//  3. a table row is appended to the path description for every record
//  4. check records (not references) append an example object and a schema
//     reference to the path, and register the schema component unless an
//     earlier record already did
//
// Paths, tags and schemas are never duplicated and a schema keeps the values
// of the record that created it. Later disagreeing records are reported as
// diagnostics, not applied.
//
// Once [Builder.Finalize] has handed the document out, the builder rejects
// further records.
package builder
