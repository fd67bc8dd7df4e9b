// Copyright 2026 The Okteto Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package io

import (
	"fmt"
	"log/slog"
	"strings"

	sloglogrus "github.com/samber/slog-logrus/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DebugLevel is the debug level
	DebugLevel = "debug"

	// InfoLevel is the info level
	InfoLevel = "info"

	// WarnLevel is the warn level
	WarnLevel = "warn"

	// ErrorLevel is the error level
	ErrorLevel = "error"
)

var (
	// levelMap transforms a slog.Level to a logrus.Level
	levelMap = map[slog.Level]logrus.Level{
		slog.LevelDebug: logrus.DebugLevel,
		slog.LevelInfo:  logrus.InfoLevel,
		slog.LevelWarn:  logrus.WarnLevel,
		slog.LevelError: logrus.ErrorLevel,
	}

	// DefaultLogLevel is the default log level
	DefaultLogLevel = slog.LevelWarn
)

// oktetoLogger is used for recording and categorizing log messages at different levels (e.g., info, debug, warning).
// Messages with log levels lower than the user-defined log level are discarded.
// Records go through the embedded slog.Logger and are written by logrus, so
// their attributes end up as logrus fields.
type oktetoLogger struct {
	*slog.Logger
	slogLeveler *slog.LevelVar

	logrusLogger *logrus.Logger
}

// newOktetoLogger returns an initialised oktetoLogger that writes into the logrus default output (stderr)
func newOktetoLogger() *oktetoLogger {
	leveler := new(slog.LevelVar)
	leveler.Set(DefaultLogLevel)

	logrusLogger := logrus.New()
	logrusLogger.SetLevel(levelMap[DefaultLogLevel])
	logrusLogger.SetFormatter(&logrus.TextFormatter{})

	return wrapLogrus(logrusLogger, leveler)
}

// newFileLogger returns an initialised oktetoLogger that logs to file
func newFileLogger(logPath string) *oktetoLogger {
	leveler := new(slog.LevelVar)
	leveler.Set(slog.LevelDebug)

	logrusLogger := logrus.New()
	logrusLogger.SetLevel(levelMap[slog.LevelDebug])
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	rolling := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    1, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	logrusLogger.SetOutput(rolling)

	return wrapLogrus(logrusLogger, leveler)
}

func wrapLogrus(logrusLogger *logrus.Logger, leveler *slog.LevelVar) *oktetoLogger {
	logger := slog.New(sloglogrus.Option{Level: leveler, Logger: logrusLogger}.NewLogrusHandler())
	return &oktetoLogger{
		slogLeveler:  leveler,
		Logger:       logger,
		logrusLogger: logrusLogger,
	}
}

// SetLevel sets the level of the logger
func (ol *oktetoLogger) SetLevel(lvl string) error {
	slogLevel, err := parseLevel(lvl)
	if err != nil {
		return err
	}
	ol.slogLeveler.Set(slogLevel)
	ol.logrusLogger.SetLevel(levelMap[slogLevel])
	return nil
}

// InvalidLogLevelError is returned when the log level is invalid
type InvalidLogLevelError struct {
	level string
}

// Error returns the error message
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level '%s'", e.level)
}

// parseLevel transforms the level from a string to a slog.Level
func parseLevel(lvl string) (slog.Level, error) {
	switch strings.ToLower(lvl) {
	case DebugLevel:
		return slog.LevelDebug, nil
	case InfoLevel:
		return slog.LevelInfo, nil
	case WarnLevel:
		return slog.LevelWarn, nil
	case ErrorLevel:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, &InvalidLogLevelError{level: lvl}
	}
}
