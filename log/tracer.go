package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors every record into JSON files next to path:
// path.trace collects trace and debug records, path.warn the warnings and
// errors.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	base.Hooks.Add(hook)
}

// ResetHooks drops every hook added by AddTracer.
func ResetHooks() {
	base.ReplaceHooks(make(log.LevelHooks))
}
