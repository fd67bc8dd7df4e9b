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

package processor

import (
	"io"

	"github.com/okteto/blocksplit/pkg/filesystem"
	"github.com/okteto/blocksplit/pkg/textblock"
	"github.com/spf13/afero"
)

// logger is satisfied by *slog.Logger
type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}

// Labels are the banner labels of the print handlers
type Labels struct {
	Pre     string
	Central string
	Post    string
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger logs the progress of the parser through l
func WithLogger(l logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithFs reads files from fs instead of the OS filesystem
func WithFs(fs afero.Fs) Option {
	return func(p *Processor) {
		p.fs = fs
	}
}

// Processor splits files into blocks and hands them to its handlers
type Processor struct {
	fs       afero.Fs
	logger   logger
	handlers textblock.Handlers
}

// New returns a processor that delivers the blocks to handlers
func New(handlers textblock.Handlers, opts ...Option) *Processor {
	p := &Processor{
		fs:       afero.NewOsFs(),
		logger:   noopLogger{},
		handlers: handlers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintOptions selects the print handlers bound by NewPrintProcessor
type PrintOptions struct {
	Labels      Labels
	SkipCentral bool
	SkipPost    bool
}

// NewPrintProcessor returns a processor that prints every block into w with
// its labeled banner. Skipped blocks are discarded.
func NewPrintProcessor(w io.Writer, printOpts PrintOptions, opts ...Option) *Processor {
	handlers := textblock.Handlers{
		Pre: textblock.NewPrintHandler(printOpts.Labels.Pre, w),
	}
	if !printOpts.SkipCentral {
		handlers.Central = textblock.NewPrintHandler(printOpts.Labels.Central, w)
	}
	if !printOpts.SkipPost {
		handlers.Post = textblock.NewPrintHandler(printOpts.Labels.Post, w)
	}
	return New(handlers, opts...)
}

// ProcessFile splits the file at path using the given sentinels. The file is
// closed before returning, whether processing succeeded or not.
func (p *Processor) ProcessFile(path, preSentinel, postSentinel string) error {
	if err := p.handlers.Validate(); err != nil {
		return err
	}

	p.logger.Info("splitting file", "path", path)
	parser := p.newParser(preSentinel, postSentinel)
	err := filesystem.ReadLines(p.fs, path, func(n int, line string) error {
		return p.processLine(parser, n, line)
	})
	if err != nil {
		return err
	}
	return p.finish(parser)
}

// ProcessLines splits lines using the given sentinels
func (p *Processor) ProcessLines(lines []string, preSentinel, postSentinel string) error {
	if err := p.handlers.Validate(); err != nil {
		return err
	}

	parser := p.newParser(preSentinel, postSentinel)
	for i, line := range lines {
		if err := p.processLine(parser, i+1, line); err != nil {
			return err
		}
	}
	return p.finish(parser)
}

func (p *Processor) newParser(preSentinel, postSentinel string) *textblock.Parser {
	p.logger.Debug("using sentinels", "pre", preSentinel, "post", postSentinel)
	return textblock.NewParser(preSentinel, postSentinel)
}

func (p *Processor) processLine(parser *textblock.Parser, n int, line string) error {
	from := parser.State()
	if err := parser.ProcessLine(line, p.handlers); err != nil {
		return err
	}
	if to := parser.State(); to != from {
		p.logger.Debug("block flushed", "line", n, "from", from.String(), "to", to.String())
	}
	return nil
}

func (p *Processor) finish(parser *textblock.Parser) error {
	from := parser.State()
	if err := parser.Finish(p.handlers); err != nil {
		return err
	}
	p.logger.Debug("block flushed at end of input", "from", from.String())
	return nil
}
