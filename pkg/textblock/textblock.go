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

// TextBlock wraps blocks of data with a known header and a known footer.
type TextBlock struct {
	start, end string
}

// NewTextBlock receives a header and footer strings and initializes a new
// TextBlock instance with them.
func NewTextBlock(start, end string) *TextBlock {
	return &TextBlock{
		strings.ReplaceAll(start, "\n", ""),
		strings.ReplaceAll(end, "\n", ""),
	}
}

// WriteBlock receives an input string and returns a string with the input
// wrapped by the header and footer configured in the TextBlock instance.
func (b *TextBlock) WriteBlock(input string) string {
	if input == "" {
		return strings.Join([]string{b.start, b.end}, "\n")
	}
	return strings.Join([]string{b.start, input, b.end}, "\n")
}

// appendLine adds a line to a block, separating it from the previous one
// with a single newline
func appendLine(block *strings.Builder, line string) {
	if block.Len() > 0 {
		block.WriteByte('\n')
	}
	block.WriteString(line)
}
