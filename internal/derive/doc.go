// Package derive computes the grouping keys of a process record: the path a
// record is documented under and the schema identifier it contributes.
package derive
