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

package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/okteto/blocksplit/pkg/config"
	oktetoLog "github.com/okteto/blocksplit/pkg/log/io"
	"github.com/spf13/cobra"
)

// Version returns information about the binary
func Version(ioCtrl *oktetoLog.IOController) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "View the version of the blocksplit binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ioCtrl.Out().Println(fmt.Sprintf("%s version %s", config.GetBinaryName(), getVersion()))
			return nil
		},
	}
}

// getVersion returns the version injected at build time, "dev" for local builds
func getVersion() string {
	v, err := semver.NewVersion(config.VersionString)
	if err != nil {
		return "dev"
	}
	return v.String()
}
