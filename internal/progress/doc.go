// Package progress writes the plain-text progress log of a conversion.
//
// The log has three kinds of lines: a start line with a timestamp, one line
// per processed record and a completion line. A [FileLog] opens the file for
// every line and closes it again, so a log left behind by an aborted run
// contains everything up to the failure.
package progress
