package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink.
type Level logging.Level

const (
	Debug   = Level(logging.DEBUG)
	Info    = Level(logging.INFO)
	Notice  = Level(logging.NOTICE)
	Warning = Level(logging.WARNING)
	Error   = Level(logging.ERROR)
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{level}] [%{module}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is a named, leveled logger. Each package creates its own with
// New; verbosity and the output sink are controlled globally.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output and resets verbosity to Notice.
// The default sink is stderr so image data written to stdout stays
// clean.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(backend)
}

// SetLevel adjusts global logger verbosity.
func SetLevel(level Level) {
	backend.SetLevel(logging.Level(level), "")
}

func init() {
	SetSink(os.Stderr)
}
