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
	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
	"github.com/okteto/blocksplit/pkg/filesystem"
	"github.com/spf13/afero"
)

// FileArgumentIsNotDir validates the input file argument
// errors: ErrInputPathNotFound, ErrInputPathIsDir
func FileArgumentIsNotDir(fs afero.Fs, file string) error {
	if !filesystem.FileExistsWithFilesystem(file, fs) {
		return oktetoErrors.UserError{
			E:    oktetoErrors.ErrInputPathNotFound,
			Hint: "Check the path of the file to split: " + file,
		}
	}
	if filesystem.IsDir(file, fs) {
		return oktetoErrors.UserError{
			E:    oktetoErrors.ErrInputPathIsDir,
			Hint: "Pass the path of a text file, not a directory: " + file,
		}
	}

	return nil
}
