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
	"os"

	"github.com/spf13/afero"
)

// FakeFs wraps an afero.Fs and makes the files it opens fail on demand
type FakeFs struct {
	afero.Fs
	openErr  error
	readErr  error
	closeErr error
}

// NewFakeFs returns a FakeFs backed by fs
func NewFakeFs(fs afero.Fs) *FakeFs {
	return &FakeFs{Fs: fs}
}

// SetOpenError makes Open return err
func (ffs *FakeFs) SetOpenError(err error) {
	ffs.openErr = err
}

// SetReadError makes every Read on an opened file return err
func (ffs *FakeFs) SetReadError(err error) {
	ffs.readErr = err
}

// SetCloseError makes Close on an opened file return err
func (ffs *FakeFs) SetCloseError(err error) {
	ffs.closeErr = err
}

// Open opens the file in the wrapped filesystem
func (ffs *FakeFs) Open(name string) (afero.File, error) {
	if ffs.openErr != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: ffs.openErr}
	}
	f, err := ffs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &fakeFile{File: f, readErr: ffs.readErr, closeErr: ffs.closeErr}, nil
}

type fakeFile struct {
	afero.File
	readErr  error
	closeErr error
}

func (f *fakeFile) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.File.Read(p)
}

func (f *fakeFile) Close() error {
	if err := f.File.Close(); err != nil {
		return err
	}
	return f.closeErr
}
