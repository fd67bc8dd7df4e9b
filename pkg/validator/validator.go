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

package validator

import (
	"fmt"
	"strings"

	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
)

// CheckSentinels returns an error when the sentinels can't split a file.
// Lines are trimmed before comparing, so a sentinel with surrounding
// whitespace would never match.
func CheckSentinels(pre, post string) error {
	for _, s := range []struct{ name, value string }{{"pre", pre}, {"post", post}} {
		if strings.TrimSpace(s.value) == "" {
			return oktetoErrors.UserError{
				E:    fmt.Errorf("%s %w", s.name, oktetoErrors.ErrEmptySentinel),
				Hint: fmt.Sprintf("Use '--%s' to set the %s sentinel line", s.name, s.name),
			}
		}
		if strings.TrimSpace(s.value) != s.value {
			return oktetoErrors.UserError{
				E:    fmt.Errorf("%s %w", s.name, oktetoErrors.ErrSentinelWhitespace),
				Hint: fmt.Sprintf("Did you mean '%s'?", strings.TrimSpace(s.value)),
			}
		}
	}

	if pre == post {
		return oktetoErrors.UserError{
			E:    oktetoErrors.ErrEqualSentinels,
			Hint: "Use '--pre' and '--post' to set two different sentinel lines",
		}
	}
	return nil
}

// CheckLabels returns an error when a banner label contains a line break,
// since a banner must be a single line
func CheckLabels(pre, central, post string) error {
	for _, l := range []struct{ name, value string }{{"pre", pre}, {"central", central}, {"post", post}} {
		if strings.ContainsAny(l.value, "\r\n") {
			return oktetoErrors.UserError{
				E:    fmt.Errorf("%s %w", l.name, oktetoErrors.ErrLabelLineBreak),
				Hint: fmt.Sprintf("Use '--%s-label' to set a single line label", l.name),
			}
		}
	}
	return nil
}
