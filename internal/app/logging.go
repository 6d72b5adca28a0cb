package app

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the upper-case level name.
func (l LogLevel) String() string {
	if l < LogLevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel reads a level name as written in the [log] section or
// on the command line. An empty name means info. Unknown names yield
// LogLevelInfo and ok == false.
func ParseLogLevel(s string) (level LogLevel, ok bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LogLevelInfo, true
	case "WARNING":
		return LogLevelWarn, true
	}
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), true
		}
	}
	return LogLevelInfo, false
}

// logSink is the writer shared by a logger and every component logger
// derived from it, so a level change reaches all of them.
type logSink struct {
	mu     sync.Mutex
	level  LogLevel
	out    io.Writer
	prefix string
	now    func() time.Time
}

// Logger writes leveled lines tagged with the component that produced
// them ("accel", "menu", "lua", "watcher", ...).
type Logger struct {
	sink      *logSink
	component string
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer // nil discards
	Prefix string
}

// DefaultLoggerConfig returns the configuration used when nothing else is
// set. The screen owns the terminal, so output is discarded unless a log
// file is configured.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: io.Discard,
		Prefix: "accelmenu",
	}
}

// NewLogger creates a root logger.
func NewLogger(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	return &Logger{sink: &logSink{
		level:  cfg.Level,
		out:    out,
		prefix: cfg.Prefix,
		now:    time.Now,
	}}
}

// WithComponent returns a logger sharing l's output and level whose lines
// are tagged with name. Components nest with a dot: "config.watcher".
func (l *Logger) WithComponent(name string) *Logger {
	if l.component != "" {
		name = l.component + "." + name
	}
	return &Logger{sink: l.sink, component: name}
}

// Level returns the minimum level written.
func (l *Logger) Level() LogLevel {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

// SetLevel changes the minimum level for l and every logger sharing its
// output.
func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

func (l *Logger) Debug(msg string, args ...any) { l.write(LogLevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.write(LogLevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.write(LogLevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.write(LogLevelError, msg, args) }

// write formats one line as
//
//	2006-01-02T15:04:05.000 [LEVEL] prefix[component]: message
func (l *Logger) write(level LogLevel, msg string, args []any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(s.now().Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(s.prefix)
	if l.component != "" {
		b.WriteByte('[')
		b.WriteString(l.component)
		b.WriteByte(']')
	}
	if s.prefix != "" || l.component != "" {
		b.WriteString(": ")
	}
	b.WriteString(msg)
	b.WriteByte('\n')
	_, _ = io.WriteString(s.out, b.String())
}

// discardLogger stands in before bootstrap has built the real logger.
var discardLogger = NewLogger(LoggerConfig{Output: io.Discard})

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return discardLogger
	}
	return app.logger
}

// logComponentError logs err under the given component.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("%v", err)
	}
}

// applyLogLevel follows a [log] level change on reload. A level given on
// the command line keeps precedence.
func (app *Application) applyLogLevel(name string) {
	if app.opts.LogLevel != "" {
		return
	}
	level, ok := ParseLogLevel(name)
	if !ok {
		app.logger.Warn("unknown log level %q ignored", name)
		return
	}
	if level != app.logger.Level() {
		app.logger.SetLevel(level)
		app.logger.Info("log level set to %s", level)
	}
}
