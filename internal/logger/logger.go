package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger provides key=value structured logging. Fields attached with With
// are written before the per-call fields on every line.
type Logger struct {
	writer io.Writer
	fields []Field
}

// New creates a logger writing to stderr so log lines stay out of the panel.
func New() *Logger {
	return &Logger{
		writer: os.Stderr,
	}
}

// NewWithWriter creates a logger with a custom writer
func NewWithWriter(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		writer: w,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard)
}

// With returns a child logger that carries the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{
		writer: l.writer,
		fields: merged,
	}
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARNING", msg, fields...)
}

// Debug logs debug messages
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields...)
}

func (l *Logger) log(level, msg string, fields ...Field) {
	var b strings.Builder
	fmt.Fprintf(&b, "LEVEL=%s MESSAGE=%s", level, msg)
	for _, field := range l.fields {
		fmt.Fprintf(&b, " %s=%v", field.Key, field.Value)
	}
	for _, field := range fields {
		fmt.Fprintf(&b, " %s=%v", field.Key, field.Value)
	}
	_, _ = fmt.Fprintln(l.writer, b.String())
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new field (shorthand)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors
func Action(value string) Field  { return F("ACTION", value) }
func Status(value string) Field  { return F("STATUS", value) }
func User(value string) Field    { return F("USER", value) }
func Space(value string) Field   { return F("SPACE", value) }
func Session(value string) Field { return F("SESSION", value) }
func Price(cents int64) Field    { return F("PRICE", formatCents(cents)) }
func Count(value int) Field      { return F("COUNT", value) }
func Error(value error) Field    { return F("ERROR", value) }
func Reason(value string) Field  { return F("REASON", value) }
func Path(value string) Field    { return F("PATH", value) }

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
