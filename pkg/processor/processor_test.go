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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
	fakefs "github.com/okteto/blocksplit/pkg/filesystem/fake"
	"github.com/okteto/blocksplit/pkg/textblock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultLabels = Labels{Pre: "PRE-BLOCK", Central: "CENTRAL-BLOCK", Post: "POST-BLOCK"}

// newRecordingLogger returns a debug slog.Logger whose records are written
// into buf without timestamps
func newRecordingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func logLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func writeFile(t *testing.T, fs afero.Fs, path string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0600))
}

func Test_ProcessFile(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		opts  PrintOptions
		want  []string
	}{
		{
			name: "all-blocks",
			lines: []string{
				"pre-block line 1",
				"pre-block line 2",
				"*pre*",
				"central-block line 1",
				"*post*",
				"post-block line 1",
			},
			opts: PrintOptions{Labels: defaultLabels},
			want: []string{
				"=== Start: PRE-BLOCK ===",
				"pre-block line 1",
				"pre-block line 2",
				"===  End: PRE-BLOCK  ===",
				"=== Start: CENTRAL-BLOCK ===",
				"central-block line 1",
				"===  End: CENTRAL-BLOCK  ===",
				"=== Start: POST-BLOCK ===",
				"post-block line 1",
				"===  End: POST-BLOCK  ===",
			},
		},
		{
			name:  "pre-block-only",
			lines: []string{"Only pre-block content", "More pre_block"},
			opts:  PrintOptions{Labels: defaultLabels},
			want: []string{
				"=== Start: PRE-BLOCK ===",
				"Only pre-block content",
				"More pre_block",
				"===  End: PRE-BLOCK  ===",
			},
		},
		{
			name:  "post-sentinel-first",
			lines: []string{"*post*", "q"},
			opts:  PrintOptions{Labels: defaultLabels},
			want: []string{
				"=== Start: POST-BLOCK ===",
				"q",
				"===  End: POST-BLOCK  ===",
			},
		},
		{
			name:  "empty-central-is-not-printed",
			lines: []string{"a", "*pre*", "*post*", "b"},
			opts:  PrintOptions{Labels: defaultLabels},
			want: []string{
				"=== Start: PRE-BLOCK ===",
				"a",
				"===  End: PRE-BLOCK  ===",
				"=== Start: POST-BLOCK ===",
				"b",
				"===  End: POST-BLOCK  ===",
			},
		},
		{
			name:  "skip-central-and-post",
			lines: []string{"x", "*pre*", "y", "*post*", "z"},
			opts:  PrintOptions{Labels: defaultLabels, SkipCentral: true, SkipPost: true},
			want: []string{
				"=== Start: PRE-BLOCK ===",
				"x",
				"===  End: PRE-BLOCK  ===",
			},
		},
		{
			name:  "custom-labels",
			lines: []string{"x", "*pre*", "y"},
			opts:  PrintOptions{Labels: Labels{Pre: "HEAD", Central: "BODY", Post: "TAIL"}},
			want: []string{
				"=== Start: HEAD ===",
				"x",
				"===  End: HEAD  ===",
				"=== Start: BODY ===",
				"y",
				"===  End: BODY  ===",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "input.txt", tt.lines...)

			var out bytes.Buffer
			p := NewPrintProcessor(&out, tt.opts, WithFs(fs))
			require.NoError(t, p.ProcessFile("input.txt", "*pre*", "*post*"))

			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", out.String())
		})
	}
}

func Test_ProcessFile_CapturedBlocks(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "input.txt", "x", "*pre*", "y", "*post*", "z")

	pre, central, post := textblock.NewCaptureHandler(), textblock.NewCaptureHandler(), textblock.NewCaptureHandler()
	p := New(textblock.Handlers{Pre: pre, Central: central, Post: post}, WithFs(fs))
	require.NoError(t, p.ProcessFile("input.txt", "*pre*", "*post*"))

	assert.Equal(t, []string{"x"}, pre.Blocks())
	assert.Equal(t, []string{"y"}, central.Blocks())
	assert.Equal(t, []string{"z"}, post.Blocks())
}

func Test_ProcessFile_HandlerErrorStopsProcessing(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "input.txt", "x", "*pre*", "y", "*post*", "z")

	errBoom := errors.New("boom")
	post := textblock.NewCaptureHandler()
	p := New(textblock.Handlers{
		Pre:     textblock.NewCaptureHandler(),
		Central: textblock.HandlerFunc(func(string) error { return errBoom }),
		Post:    post,
	}, WithFs(fs))

	err := p.ProcessFile("input.txt", "*pre*", "*post*")
	assert.ErrorIs(t, err, errBoom)
	assert.True(t, textblock.IsHandlerError(err))
	assert.Equal(t, 0, post.Calls())
}

func Test_ProcessFile_FileErrors(t *testing.T) {
	t.Run("not-found", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrintProcessor(&out, PrintOptions{Labels: defaultLabels}, WithFs(afero.NewMemMapFs()))

		err := p.ProcessFile("missing.txt", "*pre*", "*post*")
		require.Error(t, err)
		assert.True(t, oktetoErrors.IsNotExist(err))
		assert.Empty(t, out.String())
	})

	t.Run("open-error", func(t *testing.T) {
		fs := fakefs.NewFakeFs(afero.NewMemMapFs())
		writeFile(t, fs, "input.txt", "a")
		fs.SetOpenError(assert.AnError)

		p := New(textblock.Handlers{Pre: textblock.NewCaptureHandler()}, WithFs(fs))
		assert.ErrorIs(t, p.ProcessFile("input.txt", "*pre*", "*post*"), assert.AnError)
	})

	t.Run("invalid-encoding", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "input.txt", []byte("a\n*pre*\n\xff\n"), 0600))

		pre := textblock.NewCaptureHandler()
		central := textblock.NewCaptureHandler()
		p := New(textblock.Handlers{Pre: pre, Central: central}, WithFs(fs))

		err := p.ProcessFile("input.txt", "*pre*", "*post*")
		assert.ErrorIs(t, err, oktetoErrors.ErrInvalidEncoding)
		assert.Equal(t, []string{"a"}, pre.Blocks())
		assert.Equal(t, 0, central.Calls())
	})
}

func Test_ProcessFile_MissingPreHandler(t *testing.T) {
	p := New(textblock.Handlers{}, WithFs(afero.NewMemMapFs()))
	assert.ErrorIs(t, p.ProcessFile("input.txt", "*pre*", "*post*"), textblock.ErrMissingPreHandler)
	assert.ErrorIs(t, p.ProcessLines([]string{"a"}, "*pre*", "*post*"), textblock.ErrMissingPreHandler)
}

func Test_ProcessLines(t *testing.T) {
	pre, post := textblock.NewCaptureHandler(), textblock.NewCaptureHandler()
	var log bytes.Buffer
	p := New(textblock.Handlers{Pre: pre, Post: post}, WithLogger(newRecordingLogger(&log)))

	require.NoError(t, p.ProcessLines([]string{"a", "b"}, "*pre*", "*post*"))
	assert.Equal(t, []string{"a\nb"}, pre.Blocks())
	assert.Equal(t, 0, post.Calls())
	assert.Equal(t, []string{
		`level=DEBUG msg="using sentinels" pre=*pre* post=*post*`,
		`level=DEBUG msg="block flushed at end of input" from="pre block"`,
	}, logLines(&log))
}

func Test_ProcessFile_Logs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "input.txt", "x", "*pre*", "y", "*post*", "z")

	var log bytes.Buffer
	p := New(textblock.Handlers{Pre: textblock.NewCaptureHandler()}, WithFs(fs), WithLogger(newRecordingLogger(&log)))
	require.NoError(t, p.ProcessFile("input.txt", "*pre*", "*post*"))

	assert.Equal(t, []string{
		`level=INFO msg="splitting file" path=input.txt`,
		`level=DEBUG msg="using sentinels" pre=*pre* post=*post*`,
		`level=DEBUG msg="block flushed" line=2 from="pre block" to="central block"`,
		`level=DEBUG msg="block flushed" line=4 from="central block" to="post block"`,
		`level=DEBUG msg="block flushed at end of input" from="post block"`,
	}, logLines(&log))
}
