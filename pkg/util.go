package pkg

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitLog opens dest for appending and returns a logger writing JSON lines to
// it, tagged with component. An empty dest discards everything.
func InitLog(dest, level, component string) (zerolog.Logger, io.Closer, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if dest == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("error opening log file: %w", err)
	}
	log := zerolog.New(f).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return log, f, nil
}

// ConsoleLog is a human readable logger on out, coloured when out is a
// terminal.
func ConsoleLog(out *os.File, level, component string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	noColor := !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd())
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor}).
		Level(lvl).
		With().Timestamp().Str("component", component).
		Logger(), nil
}
