// Package openapi holds the subset of the OpenAPI 3.0 document model the
// generator produces, together with its YAML codec.
//
// Every mapping whose keys are data rather than schema (paths, schemas,
// properties, examples) is an [OrderedMap], so the serialized document keeps
// the order in which entries were first added and serializing the same
// document twice yields identical bytes.
package openapi
