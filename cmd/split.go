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
	"github.com/okteto/blocksplit/pkg/config"
	oktetoLog "github.com/okteto/blocksplit/pkg/log/io"
	"github.com/okteto/blocksplit/pkg/processor"
	"github.com/okteto/blocksplit/pkg/validator"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type splitOptions struct {
	configFile   string
	preSentinel  string
	postSentinel string
	preLabel     string
	centralLabel string
	postLabel    string
	skipCentral  bool
	skipPost     bool
}

// Split splits a file into its pre, central and post blocks and prints them
func Split(ioCtrl *oktetoLog.IOController, fs afero.Fs) *cobra.Command {
	options := &splitOptions{}

	cmd := &cobra.Command{
		Args:  cobra.ExactArgs(1),
		Use:   "split FILE",
		Short: "Print the pre, central and post blocks of a file",
		Long: `Print the pre, central and post blocks of a file.

The pre block ends at the first pre sentinel line, the central block ends at
the first post sentinel line and the post block runs to the end of the file.
If the post sentinel shows up before the pre sentinel there is no central block.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fs, options.configFile)
			if err != nil {
				return err
			}
			options.apply(cmd.Flags(), cfg)

			if err := validator.CheckSentinels(cfg.PreSentinel, cfg.PostSentinel); err != nil {
				return err
			}
			if err := validator.CheckLabels(cfg.Labels.Pre, cfg.Labels.Central, cfg.Labels.Post); err != nil {
				return err
			}
			file := args[0]
			if err := validator.FileArgumentIsNotDir(fs, file); err != nil {
				return err
			}

			p := processor.NewPrintProcessor(
				ioCtrl.Out(),
				processor.PrintOptions{
					Labels: processor.Labels{
						Pre:     cfg.Labels.Pre,
						Central: cfg.Labels.Central,
						Post:    cfg.Labels.Post,
					},
					SkipCentral: cfg.SkipCentral,
					SkipPost:    cfg.SkipPost,
				},
				processor.WithFs(fs),
				processor.WithLogger(ioCtrl.Logger()),
			)
			if err := p.ProcessFile(file, cfg.PreSentinel, cfg.PostSentinel); err != nil {
				return err
			}

			ioCtrl.Out().Success("'%s' split successfully", file)
			return nil
		},
	}

	addSplitFlags(cmd.Flags(), options)
	return cmd
}

func addSplitFlags(flags *pflag.FlagSet, options *splitOptions) {
	flags.StringVarP(&options.configFile, "config", "c", "", "the path to a blocksplit configuration file")
	flags.StringVar(&options.preSentinel, "pre", "", "the line that ends the pre block (default \"--- PRE ---\")")
	flags.StringVar(&options.postSentinel, "post", "", "the line that starts the post block (default \"--- POST ---\")")
	flags.StringVar(&options.preLabel, "pre-label", "", "the banner label of the pre block")
	flags.StringVar(&options.centralLabel, "central-label", "", "the banner label of the central block")
	flags.StringVar(&options.postLabel, "post-label", "", "the banner label of the post block")
	flags.BoolVar(&options.skipCentral, "skip-central", false, "discard the central block")
	flags.BoolVar(&options.skipPost, "skip-post", false, "discard the post block")
}

// apply overrides cfg with the flags set in the command line
func (o *splitOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("pre") {
		cfg.PreSentinel = o.preSentinel
	}
	if flags.Changed("post") {
		cfg.PostSentinel = o.postSentinel
	}
	if flags.Changed("pre-label") {
		cfg.Labels.Pre = o.preLabel
	}
	if flags.Changed("central-label") {
		cfg.Labels.Central = o.centralLabel
	}
	if flags.Changed("post-label") {
		cfg.Labels.Post = o.postLabel
	}
	if flags.Changed("skip-central") {
		cfg.SkipCentral = o.skipCentral
	}
	if flags.Changed("skip-post") {
		cfg.SkipPost = o.skipPost
	}
}
