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
	"io"
)

// OutputController manages the output for the CLI. Blocks are written to out,
// messages addressed to the user are decorated and written to errOut.
type OutputController struct {
	out    io.Writer
	errOut io.Writer

	decorator decorator
}

// newOutputController returns a new output controller
func newOutputController(out, errOut io.Writer) *OutputController {
	return &OutputController{
		out:       out,
		errOut:    errOut,
		decorator: newTTYDecorator(),
	}
}

// Write writes p into out without any decoration
func (oc *OutputController) Write(p []byte) (n int, err error) {
	return oc.out.Write(p)
}

// Println prints a line into out
func (oc *OutputController) Println(args ...any) {
	fmt.Fprintln(oc.out, args...)
}

// Success prints a success message to the user
func (oc *OutputController) Success(format string, args ...any) {
	fmt.Fprint(oc.errOut, oc.decorator.Success(fmt.Sprintf(format, args...)))
}

// Fail prints an error message to the user
func (oc *OutputController) Fail(format string, args ...any) {
	fmt.Fprint(oc.errOut, oc.decorator.Fail(fmt.Sprintf(format, args...)))
}

// Hint prints a hint after an error message
func (oc *OutputController) Hint(format string, args ...any) {
	fmt.Fprint(oc.errOut, oc.decorator.Hint(fmt.Sprintf(format, args...)))
}
