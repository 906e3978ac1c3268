package progress

import (
	"fmt"
	"os"
	"time"
)

const (
	filePerm        = 0o644
	timestampLayout = "2006-01-02T15:04:05.000000"
)

// Sink receives progress events of a conversion.
type Sink interface {
	// Started begins a new log.
	Started(at time.Time) error
	// Added records that a record was folded under path and schema.
	Added(path, schema string) error
	// Finished records that output was written.
	Finished(output string) error
}

// StartedLine formats the first line of a log.
func StartedLine(at time.Time) string {
	return fmt.Sprintf("Skript gestartet am %s", at.Format(timestampLayout))
}

// AddedLine formats the line logged for a processed record.
func AddedLine(path, schema string) string {
	return fmt.Sprintf("Pfad %s und Schema %s hinzugefügt.", path, schema)
}

// FinishedLine formats the last line of a successful run.
func FinishedLine(output string) string {
	return fmt.Sprintf("Generierung abgeschlossen. Die Datei %s wurde erstellt.", output)
}

// FileLog appends progress lines to a file.
type FileLog struct {
	path string
}

// NewFileLog returns a log writing to path.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Path returns the location of the log file.
func (l *FileLog) Path() string {
	return l.path
}

// Started truncates the log file and writes the start line.
func (l *FileLog) Started(at time.Time) error {
	return l.write(os.O_CREATE|os.O_WRONLY|os.O_TRUNC, StartedLine(at))
}

// Added appends a record line.
func (l *FileLog) Added(path, schema string) error {
	return l.write(os.O_CREATE|os.O_WRONLY|os.O_APPEND, AddedLine(path, schema))
}

// Finished appends the completion line.
func (l *FileLog) Finished(output string) error {
	return l.write(os.O_CREATE|os.O_WRONLY|os.O_APPEND, FinishedLine(output))
}

func (l *FileLog) write(flag int, line string) (err error) {
	f, err := os.OpenFile(l.path, flag, filePerm)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", l.path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log %s: %w", l.path, cerr)
		}
	}()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("writing log %s: %w", l.path, err)
	}

	return nil
}

// Discard is a sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Started(time.Time) error    { return nil }
func (discard) Added(string, string) error { return nil }
func (discard) Finished(string) error      { return nil }
