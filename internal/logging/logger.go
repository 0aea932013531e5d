package logging

import (
	"encoding/json"
	"log"
	"os"
	"sync/atomic"
	"time"
)

type Fields map[string]interface{}

var debugEnabled atomic.Bool

// SetDebugEnabled toggles debug-level output. Debug is off by default and
// is normally enabled through the `trace` config key.
func SetDebugEnabled(on bool) { debugEnabled.Store(on) }

func output(level, msg string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Debug logs a debug message with optional fields. It is a no-op unless
// debug output has been enabled.
func Debug(msg string, fields Fields) {
	if !debugEnabled.Load() {
		return
	}
	output("debug", msg, fields)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output("error", msg, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output("fatal", msg, fields)
	os.Exit(1)
}
