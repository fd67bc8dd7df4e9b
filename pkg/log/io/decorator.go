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

	"github.com/fatih/color"
)

var (
	// coloredSuccessSymbol represents the colored success symbol
	coloredSuccessSymbol = color.New(color.BgGreen, color.FgBlack).Sprint(" ✓ ")

	// coloredErrorSymbol represents the colored error symbol
	coloredErrorSymbol = color.New(color.BgHiRed, color.FgBlack).Sprint(" x ")

	// greenString is a function that returns a green string
	greenString = color.New(color.FgGreen).SprintfFunc()

	// redString is a function that returns a red string
	redString = color.New(color.FgHiRed).SprintfFunc()
)

// decorator is the interface for the decorator
type decorator interface {
	Success(string) string
	Fail(string) string
	Hint(string) string
}

// TTYDecorator is the decorator for the TTY. Colors are disabled when the
// output is not a terminal.
type TTYDecorator struct{}

// newTTYDecorator returns a new TTY decorator
func newTTYDecorator() *TTYDecorator {
	return &TTYDecorator{}
}

// Success decorates a success message
func (d *TTYDecorator) Success(msg string) string {
	return fmt.Sprintf("%s %s\n", coloredSuccessSymbol, greenString(msg))
}

// Fail decorates an error message
func (d *TTYDecorator) Fail(msg string) string {
	return fmt.Sprintf("%s %s\n", coloredErrorSymbol, redString(msg))
}

// Hint decorates a hint shown after an error
func (d *TTYDecorator) Hint(msg string) string {
	return fmt.Sprintf("    %s\n", msg)
}
