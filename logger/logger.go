package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InfoLogger, WarnLogger and ErrorLogger are the shared loggers used across
// the application. They default to stdout; InitLoggers adds the rotated
// file outputs at startup.
var (
	InfoLogger  = newLogger(os.Stdout, logrus.InfoLevel)
	WarnLogger  = newLogger(os.Stdout, logrus.WarnLevel)
	ErrorLogger = newLogger(os.Stdout, logrus.ErrorLevel)
)

const logDir = "logs"

// InitLoggers points the shared loggers at their rotated files. It must be
// called once at startup.
func InitLoggers() {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		// Keep the stdout-only defaults if the log directory cannot be created.
		ErrorLogger.Errorf("Failed to create log directory %s: %v", logDir, err)
		return
	}

	InfoLogger = newLogger(rotatedOutput("info.log"), logrus.InfoLevel)
	WarnLogger = newLogger(rotatedOutput("warn.log"), logrus.WarnLevel)
	ErrorLogger = newLogger(rotatedOutput("error.log"), logrus.ErrorLevel)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

func rotatedOutput(name string) io.Writer {
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   filepath.Join(logDir, name),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	})
}
