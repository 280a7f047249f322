package log

import (
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

// every module logger shares one base so level and hooks apply everywhere
var base = newBase()

func newBase() *log.Logger {
	base := log.New()
	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	base.SetOutput(os.Stderr)
	base.SetLevel(log.WarnLevel)
	return base
}

func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// SetLevel changes the level of every logger, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func GetLevel() log.Level {
	return base.GetLevel()
}
