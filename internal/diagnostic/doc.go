// Package diagnostic provides structured warnings and notes collected while
// folding process records into a document.
//
// Key capabilities:
//   - Short row warnings (rows that did not reach every column)
//   - Synthetic path notes (records grouped under a default path)
//   - Schema conflict warnings (later rows disagreeing with the first row
//     that defined a schema; the first definition is kept)
//
// None of these stop a conversion; they are reported alongside the result.
package diagnostic
