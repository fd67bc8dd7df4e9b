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

	"github.com/okteto/blocksplit/pkg/config"
	oktetoLog "github.com/okteto/blocksplit/pkg/log/io"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRoot returns the root command with every subcommand attached
func NewRoot(ioCtrl *oktetoLog.IOController, fs afero.Fs) *cobra.Command {
	var logLevel string
	var logFile string

	root := &cobra.Command{
		Use:           fmt.Sprintf("%s COMMAND [ARG...]", config.GetBinaryName()),
		Short:         "Split text files into pre, central and post blocks",
		SilenceErrors: true,
		PersistentPreRunE: func(ccmd *cobra.Command, args []string) error {
			ccmd.SilenceUsage = true
			return configureLogging(ioCtrl, logLevel, logFile, ccmd.Flags().Changed("loglevel"))
		},
	}

	root.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", oktetoLog.WarnLevel, "amount of information outputted (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs into a rotating file instead of stderr, at debug level unless --loglevel is set")
	root.AddCommand(Split(ioCtrl, fs))
	root.AddCommand(Version(ioCtrl))
	return root
}

// configureLogging validates level before switching to the file logger.
// The file logger records debug messages unless the level was set explicitly.
func configureLogging(ioCtrl *oktetoLog.IOController, level, logFile string, levelChanged bool) error {
	if err := ioCtrl.SetLevel(level); err != nil {
		return err
	}
	if logFile == "" {
		return nil
	}

	ioCtrl.ConfigureFileLogger(logFile)
	if levelChanged {
		return ioCtrl.SetLevel(level)
	}
	return nil
}
