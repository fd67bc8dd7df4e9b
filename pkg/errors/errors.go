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

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// UserError is meant for errors displayed to the user. It can include a message and a hint
type UserError struct {
	E    error
	Hint string
}

// Error returns the error message
func (u UserError) Error() string {
	return u.E.Error()
}
func (e UserError) Unwrap() error {
	return e.E
}

// InvalidEncodingError is raised when a line of the input is not valid UTF-8
type InvalidEncodingError struct {
	Path string
	Line int
}

// Error returns the error message
func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("%s: line %d is not valid UTF-8", e.Path, e.Line)
}

func (InvalidEncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

var (
	// ErrInputPathNotFound is raised when the input file does not exist
	ErrInputPathNotFound = errors.New("the input file does not exist")

	// ErrInputPathIsDir is raised when the input path is a directory
	ErrInputPathIsDir = errors.New("the input path is a directory, not a file")

	// ErrInvalidEncoding is raised when the input is not valid UTF-8 text
	ErrInvalidEncoding = errors.New("invalid UTF-8 text")

	// ErrEmptySentinel is raised when a sentinel is empty or only contains whitespace
	ErrEmptySentinel = errors.New("sentinel can't be empty")

	// ErrSentinelWhitespace is raised when a sentinel starts or ends with whitespace
	ErrSentinelWhitespace = errors.New("sentinel can't start or end with whitespace")

	// ErrEqualSentinels is raised when the pre and post sentinels are the same
	ErrEqualSentinels = errors.New("pre and post sentinels must be different")

	// ErrLabelLineBreak is raised when a block label spans more than one line
	ErrLabelLineBreak = errors.New("label can't contain line breaks")

	// ErrConfigNotFound is raised when the configuration file doesn't exist
	ErrConfigNotFound = errors.New("configuration file not found")
)

// IsNotExist returns true if err is of the type does not exist
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, ErrInputPathNotFound),
		strings.Contains(err.Error(), "does not exist"),
		strings.Contains(err.Error(), "doesn't exist"),
		strings.Contains(err.Error(), "no such file or directory"):
		return true
	default:
		return false
	}
}

// GetHint returns the hint of err if it wraps a UserError
func GetHint(err error) string {
	var uErr UserError
	if errors.As(err, &uErr) {
		return uErr.Hint
	}
	return ""
}
