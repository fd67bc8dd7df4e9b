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
	"strings"
)

// State is the block the parser is currently accumulating
type State int

const (
	// PreBlock accumulates the lines before any sentinel
	PreBlock State = iota
	// CentralBlock accumulates the lines between the pre and the post sentinels
	CentralBlock
	// PostBlock accumulates the lines after the post sentinel
	PostBlock
	// Finished is reached after Finish, no more lines are accepted
	Finished
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case PreBlock:
		return "pre block"
	case CentralBlock:
		return "central block"
	case PostBlock:
		return "post block"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Parser is a state machine that splits lines into the pre, central and post
// blocks. A parser processes a single input and must be finished exactly once.
type Parser struct {
	preSentinel  string
	postSentinel string
	block        strings.Builder
	state        State
}

// NewParser returns a parser in the PreBlock state
func NewParser(preSentinel, postSentinel string) *Parser {
	return &Parser{
		preSentinel:  preSentinel,
		postSentinel: postSentinel,
		state:        PreBlock,
	}
}

// State returns the current state of the parser
func (p *Parser) State() State {
	return p.state
}

// ProcessLine consumes a single line. Matching a sentinel flushes the current
// block to its handler before moving to the next state.
func (p *Parser) ProcessLine(line string, h Handlers) error {
	if p.state == Finished {
		return ErrParserFinished
	}
	if err := h.Validate(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(line)
	switch p.state {
	case PreBlock:
		switch trimmed {
		case p.preSentinel:
			return p.flush(h, CentralBlock)
		case p.postSentinel:
			// central block is skipped when the post sentinel shows up first
			return p.flush(h, PostBlock)
		}
	case CentralBlock:
		if trimmed == p.postSentinel {
			return p.flush(h, PostBlock)
		}
	}

	appendLine(&p.block, line)
	return nil
}

// Finish flushes whatever is buffered to the handler of the current state and
// invalidates the parser.
func (p *Parser) Finish(h Handlers) error {
	if p.state == Finished {
		return ErrParserFinished
	}
	if err := h.Validate(); err != nil {
		return err
	}
	return p.flush(h, Finished)
}

// flush hands the block to the handler of the current state. The block is
// only reset and the state only advanced when the handler succeeds.
func (p *Parser) flush(h Handlers, next State) error {
	if handler := h.forState(p.state); handler != nil {
		if err := handler.Handle(p.block.String()); err != nil {
			return &HandlerError{State: p.state, Err: err}
		}
	}
	p.block.Reset()
	p.state = next
	return nil
}
