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

// Package textblock splits line-oriented text into three consecutive blocks
// delimited by two sentinel lines, a "pre" block, a "central" block and a
// "post" block, and hands every block to a pluggable BlockHandler.
//
// Example:
//
//	const data = `
//	header notes
//	--- PRE ---
//	the interesting part
//	--- POST ---
//	trailing notes
//	`
//
//	parser := textblock.NewParser("--- PRE ---", "--- POST ---")
//	handlers := textblock.Handlers{
//	    Pre:     textblock.NewPrintHandler("PRE-BLOCK", os.Stdout),
//	    Central: textblock.NewPrintHandler("CENTRAL-BLOCK", os.Stdout),
//	    Post:    textblock.NewPrintHandler("POST-BLOCK", os.Stdout),
//	}
//	for _, line := range strings.Split(data, "\n") {
//	    if err := parser.ProcessLine(line, handlers); err != nil {
//	        return err
//	    }
//	}
//	return parser.Finish(handlers)
//
// A sentinel matches a line when it equals the line with the surrounding
// whitespace removed. Only the first occurrence of each sentinel matters.
package textblock
