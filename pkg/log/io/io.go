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
	"io"
	"os"
)

// IOController manages the output and the logs of the CLI
type IOController struct {
	out *OutputController
	*oktetoLogger
}

// NewIOController returns a new controller that writes blocks to stdout and
// messages and logs to stderr
func NewIOController() *IOController {
	return NewIOControllerWithOutput(os.Stdout, os.Stderr)
}

// NewIOControllerWithOutput returns a new controller that writes blocks to out
// and messages and logs to errOut
func NewIOControllerWithOutput(out, errOut io.Writer) *IOController {
	logger := newOktetoLogger()
	logger.logrusLogger.SetOutput(errOut)
	return &IOController{
		out:          newOutputController(out, errOut),
		oktetoLogger: logger,
	}
}

// Out is used for displaying information to the user regardless of the log level set.
func (ioc *IOController) Out() *OutputController {
	return ioc.out
}

// Logger is used for recording and categorizing log messages at different levels (e.g., info, debug, warning).
// These log messages can be filtered based on the log level set by the user.
func (ioc *IOController) Logger() *oktetoLogger {
	return ioc.oktetoLogger
}

// ConfigureFileLogger configures the logger to log to a rotating file instead of stderr
func (ioc *IOController) ConfigureFileLogger(logPath string) {
	ioc.oktetoLogger = newFileLogger(logPath)
}
