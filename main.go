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

package main

import (
	"os"

	"github.com/okteto/blocksplit/cmd"
	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
	oktetoLog "github.com/okteto/blocksplit/pkg/log/io"
	"github.com/spf13/afero"
)

func main() {
	ioCtrl := oktetoLog.NewIOController()

	if err := cmd.NewRoot(ioCtrl, afero.NewOsFs()).Execute(); err != nil {
		ioCtrl.Out().Fail(err.Error())
		if hint := oktetoErrors.GetHint(err); hint != "" {
			ioCtrl.Out().Hint(hint)
		}
		os.Exit(1)
	}
}
