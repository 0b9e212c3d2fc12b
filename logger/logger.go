package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Package-level loggers, usable before InitLoggers for tests.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLoggers attaches rotating file outputs (mirrored to stdout).
// LOG_DIR controls where the files land; defaults to ./logs.
func InitLoggers() {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}

	configure(InfoLogger, filepath.Join(dir, "info.log"), logrus.InfoLevel)
	configure(ErrorLogger, filepath.Join(dir, "error.log"), logrus.ErrorLevel)
}

func configure(l *logrus.Logger, path string, level logrus.Level) {
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}))
}
