package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process wide logger. cmd adjusts its level from --log-level.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

// SetLevel parses a level name and applies it to Logger. Unknown names leave
// the level unchanged and return false.
func SetLevel(name string) bool {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return false
	}
	Logger = Logger.Level(lvl)
	return true
}

// DisableColor switches the console writer to plain output.
func DisableColor() {
	Logger = Logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
}

func With() zerolog.Context {
	return Logger.With()
}

func Trace() *zerolog.Event {
	return Logger.Trace()
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}

func Info() *zerolog.Event {
	return Logger.Info()
}

func Warn() *zerolog.Event {
	return Logger.Warn()
}

func Error() *zerolog.Event {
	return Logger.Error()
}

func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
