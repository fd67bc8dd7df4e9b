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

package textblock

import (
	"errors"
	"fmt"
)

var (
	// ErrParserFinished is returned when a parser is used after Finish
	ErrParserFinished = errors.New("parser already finished")

	// ErrMissingPreHandler is returned when no handler is bound to the pre block
	ErrMissingPreHandler = errors.New("pre block handler is required")
)

// HandlerError is returned when a BlockHandler fails while flushing a block
type HandlerError struct {
	Err   error
	State State
}

// Error returns the error message
func (e *HandlerError) Error() string {
	return fmt.Sprintf("failed to handle %s: %s", e.State, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsHandlerError returns true if err was raised by a BlockHandler
func IsHandlerError(err error) bool {
	var hErr *HandlerError
	return errors.As(err, &hErr)
}
