package main // import "github.com/tonobo/gridsnake"

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	loggerMu     sync.RWMutex
	globalLogger = NewLogger(os.Stderr, "info")
)

// NewLogger builds a logfmt logger filtered at lvl (debug, info, warn,
// error or none).
func NewLogger(w io.Writer, lvl string) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = level.NewFilter(l, levelOption(lvl))
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	}
	return level.AllowInfo()
}

func GlobalLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

func SetGlobalLogger(l log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	globalLogger = l
}
