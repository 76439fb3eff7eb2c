package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Output is where all component loggers write. Tests swap it out.
var Output io.Writer = os.Stderr

// NewLogger returns a console logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        Output,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(Output),
	}

	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// SetLevel sets the global log level by name ("debug", "info", "warn", ...).
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
