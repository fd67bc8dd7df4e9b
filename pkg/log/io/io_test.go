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
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOControllerInitialisation(t *testing.T) {
	l := NewIOController()
	require.NotNil(t, l)
	require.Equal(t, os.Stdout, l.out.out)
	require.Equal(t, os.Stderr, l.out.errOut)
	require.Equal(t, os.Stderr, l.logrusLogger.Out)
}

func TestGetters(t *testing.T) {
	l := NewIOController()
	require.NotNil(t, l.Out())
	require.IsType(t, &OutputController{}, l.Out())

	require.NotNil(t, l.Logger())
	require.IsType(t, &oktetoLogger{}, l.Logger())
}

func TestSetLevel(t *testing.T) {
	l := NewIOController()
	assert.Equal(t, slog.LevelWarn, l.slogLeveler.Level())
	assert.Equal(t, logrus.WarnLevel, l.logrusLogger.GetLevel())

	require.NoError(t, l.SetLevel("debug"))
	assert.Equal(t, slog.LevelDebug, l.slogLeveler.Level())
	assert.Equal(t, logrus.DebugLevel, l.logrusLogger.GetLevel())

	require.NoError(t, l.SetLevel("ERROR"))
	assert.Equal(t, slog.LevelError, l.slogLeveler.Level())

	err := l.SetLevel("verbose")
	assert.EqualError(t, err, "invalid log level 'verbose'")
	assert.Equal(t, slog.LevelError, l.slogLeveler.Level())
}

func TestLoggerWritesToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewIOControllerWithOutput(&out, &errOut)

	l.Logger().Debug("hidden", "line", 1)
	assert.Empty(t, errOut.String())

	require.NoError(t, l.SetLevel(InfoLevel))
	l.Logger().Info("visible", "line", 2)
	assert.Contains(t, errOut.String(), "msg=visible")
	assert.Contains(t, errOut.String(), "line=2")
	assert.Empty(t, out.String())
}

func TestLoggerAttributes(t *testing.T) {
	tests := []struct {
		name  string
		level string
		log   func(l *IOController)
		want  []string
	}{
		{
			name:  "debug record with attributes",
			level: DebugLevel,
			log: func(l *IOController) {
				l.Logger().Debug("block flushed", "line", 2, "from", "pre block", "to", "central block")
			},
			want: []string{"level=debug", `msg="block flushed"`, "line=2", `from="pre block"`, `to="central block"`},
		},
		{
			name:  "info record",
			level: InfoLevel,
			log: func(l *IOController) {
				l.Logger().Info("splitting file", "path", "input.txt")
			},
			want: []string{"level=info", `msg="splitting file"`, "path=input.txt"},
		},
		{
			name:  "filtered out below the level",
			level: WarnLevel,
			log: func(l *IOController) {
				l.Logger().Info("splitting file", "path", "input.txt")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			l := NewIOControllerWithOutput(io.Discard, &errOut)
			require.NoError(t, l.SetLevel(tt.level))

			tt.log(l)

			if len(tt.want) == 0 {
				assert.Empty(t, errOut.String())
				return
			}
			for _, w := range tt.want {
				assert.Contains(t, errOut.String(), w)
			}
		})
	}
}

func TestOutputController(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewIOControllerWithOutput(&out, &errOut)

	n, err := l.Out().Write([]byte("=== Start: PRE-BLOCK ===\n"))
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	l.Out().Println("raw")
	assert.Equal(t, "=== Start: PRE-BLOCK ===\nraw\n", out.String())

	l.Out().Success("'%s' split successfully", "input.txt")
	l.Out().Fail("broken")
	l.Out().Hint("try again")
	assert.Equal(t, " ✓  'input.txt' split successfully\n x  broken\n    try again\n", errOut.String())
}

func TestConfigureFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "blocksplit.log")
	l := NewIOController()
	l.ConfigureFileLogger(logPath)

	assert.Equal(t, slog.LevelDebug, l.slogLeveler.Level())
	l.Logger().Debug("written to file", "path", logPath)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `msg="written to file"`)
}
