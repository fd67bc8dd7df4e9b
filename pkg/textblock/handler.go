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
	"fmt"
	"io"
)

// BlockHandler consumes the content of a flushed block
type BlockHandler interface {
	Handle(content string) error
}

// HandlerFunc adapts a function to the BlockHandler interface
type HandlerFunc func(content string) error

// Handle calls f(content)
func (f HandlerFunc) Handle(content string) error {
	return f(content)
}

// Handlers binds a handler to each block. Pre is mandatory, a nil Central or
// Post handler discards the content of that block.
type Handlers struct {
	Pre     BlockHandler
	Central BlockHandler
	Post    BlockHandler
}

// Validate checks the handlers can be used to process a file
func (h Handlers) Validate() error {
	if h.Pre == nil {
		return ErrMissingPreHandler
	}
	return nil
}

// forState returns the handler bound to the given state, nil if there is none
func (h Handlers) forState(s State) BlockHandler {
	switch s {
	case PreBlock:
		return h.Pre
	case CentralBlock:
		return h.Central
	case PostBlock:
		return h.Post
	default:
		return nil
	}
}

// PrintHandler writes every non-empty block surrounded by a labeled banner
type PrintHandler struct {
	out   io.Writer
	block *TextBlock
	label string
}

// NewPrintHandler returns a PrintHandler that writes into w. Newlines in
// label are dropped from the banners so each banner stays on one line.
func NewPrintHandler(label string, w io.Writer) *PrintHandler {
	return &PrintHandler{
		out:   w,
		label: label,
		block: NewTextBlock(
			fmt.Sprintf("=== Start: %s ===", label),
			fmt.Sprintf("===  End: %s  ===", label),
		),
	}
}

// Label returns the label printed in the banner
func (p *PrintHandler) Label() string {
	return p.label
}

// Handle writes the banner triple. Empty content writes nothing.
func (p *PrintHandler) Handle(content string) error {
	if len(content) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(p.out, p.block.WriteBlock(content))
	return err
}

// CaptureHandler keeps every block it receives, empty ones included
type CaptureHandler struct {
	blocks []string
}

// NewCaptureHandler returns an empty CaptureHandler
func NewCaptureHandler() *CaptureHandler {
	return &CaptureHandler{blocks: []string{}}
}

// Handle records the content
func (c *CaptureHandler) Handle(content string) error {
	c.blocks = append(c.blocks, content)
	return nil
}

// Blocks returns the captured blocks in the order they were received
func (c *CaptureHandler) Blocks() []string {
	return c.blocks
}

// Calls returns how many times the handler was invoked
func (c *CaptureHandler) Calls() int {
	return len(c.blocks)
}
