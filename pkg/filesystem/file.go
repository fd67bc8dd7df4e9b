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

package filesystem

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// LineFunc is called for every line read from a file. n is 1-based.
type LineFunc func(n int, line string) error

// FileExistsWithFilesystem return true if the file exists or if there is an error.
func FileExistsWithFilesystem(path string, fs afero.Fs) bool {
	_, err := fs.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir return true if the path exists and it's a directory
func IsDir(path string, fs afero.Fs) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExistsAndNotDir checks if the file exists, and it's not a dir
func FileExistsAndNotDir(path string, fs afero.Fs) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadLines calls fn for every line of the file in order. Line endings ("\n"
// or "\r\n") are stripped and every line must be valid UTF-8. Reading stops at
// the first error returned by fn. The file is always closed before returning.
func ReadLines(fs afero.Fs, path string, fn LineFunc) (err error) {
	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open '%s'", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			cerr = errors.Wrapf(cerr, "failed to close '%s'", path)
			if err == nil {
				err = cerr
				return
			}
			err = multierror.Append(err, cerr)
		}
	}()

	return scanLines(f, path, fn)
}

func scanLines(r io.Reader, path string, fn LineFunc) error {
	reader := bufio.NewReader(r)
	n := 0
	for {
		line, rerr := reader.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return errors.Wrapf(rerr, "failed to read '%s'", path)
		}
		if line == "" && rerr == io.EOF {
			return nil
		}

		n++
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
		}
		if !utf8.ValidString(line) {
			return oktetoErrors.InvalidEncodingError{Path: path, Line: n}
		}
		if err := fn(n, line); err != nil {
			return err
		}

		if rerr == io.EOF {
			return nil
		}
	}
}
