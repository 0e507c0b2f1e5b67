package log

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// InitLog configures the process logger. Level defaults to info when the
// string is empty or unrecognized.
func InitLog(appName string, logLevel string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)

	switch strings.ToLower(logLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Fatal(format string, args ...any) {
	logger.Fatalf(format, args...)
}
