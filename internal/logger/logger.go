package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled, component-scoped lines. Debug and Info are only
// emitted when the verbose callback reports true.
type Logger struct {
	component string
	verbose   func() bool
	mu        *sync.Mutex
	writer    io.Writer
}

// Field is a key/value pair appended to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// New creates a logger writing to stderr.
func New(component string, verbose func() bool) *Logger {
	return &Logger{
		component: component,
		verbose:   verbose,
		mu:        &sync.Mutex{},
		writer:    os.Stderr,
	}
}

// Discard returns a logger that drops every line.
func Discard() *Logger {
	l := New("", nil)
	l.writer = io.Discard
	return l
}

// WithComponent returns a logger sharing the writer under a new component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component: component,
		verbose:   l.verbose,
		mu:        l.mu,
		writer:    l.writer,
	}
}

// WithWriter returns a copy of the logger that writes to w.
func (l *Logger) WithWriter(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		component: l.component,
		verbose:   l.verbose,
		mu:        &sync.Mutex{},
		writer:    w,
	}
}

func (l *Logger) isVerbose() bool {
	return l.verbose != nil && l.verbose()
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.write("DEBUG", fmt.Sprintf(msg, args...), nil)
	}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.write("INFO", fmt.Sprintf(msg, args...), nil)
	}
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.write("WARN", fmt.Sprintf(msg, args...), nil)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.write("ERROR", fmt.Sprintf(msg, args...), nil)
}

// InfoWithFields logs msg plus fields when verbose.
func (l *Logger) InfoWithFields(msg string, fields []Field) {
	if l.isVerbose() {
		l.write("INFO", msg, fields)
	}
}

// WarnWithFields logs msg plus fields unconditionally.
func (l *Logger) WarnWithFields(msg string, fields []Field) {
	l.write("WARN", msg, fields)
}

func (l *Logger) write(level, msg string, fields []Field) {
	component := l.component
	if component == "" {
		component = "main"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s [%s] %s", time.Now().Format("15:04:05.000"), level, component, msg)
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, fmt.Sprintf("%s=%v", field.Key, field.Value))
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, " "))
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.writer, b.String())
}

func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
