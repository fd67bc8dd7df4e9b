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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/okteto/blocksplit/pkg/constants"
	"github.com/okteto/blocksplit/pkg/env"
	oktetoErrors "github.com/okteto/blocksplit/pkg/errors"
	"github.com/okteto/blocksplit/pkg/filesystem"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

// VersionString the version of the cli
var VersionString string

// Config holds the sentinels and labels used to split a file
type Config struct {
	PreSentinel  string `yaml:"pre,omitempty"`
	PostSentinel string `yaml:"post,omitempty"`
	Labels       Labels `yaml:"labels,omitempty"`
	SkipCentral  bool   `yaml:"skipCentral,omitempty"`
	SkipPost     bool   `yaml:"skipPost,omitempty"`
}

// Labels are printed in the banner of every block
type Labels struct {
	Pre     string `yaml:"pre,omitempty"`
	Central string `yaml:"central,omitempty"`
	Post    string `yaml:"post,omitempty"`
}

// GetBinaryName returns the name of the binary
func GetBinaryName() string {
	return filepath.Base(os.Args[0])
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		PreSentinel:  constants.DefaultPreSentinel,
		PostSentinel: constants.DefaultPostSentinel,
		Labels: Labels{
			Pre:     constants.DefaultPreLabel,
			Central: constants.DefaultCentralLabel,
			Post:    constants.DefaultPostLabel,
		},
	}
}

// Load returns the configuration from the defaults, the configuration file and
// the environment, in increasing order of precedence. When path is empty the
// file is taken from BLOCKSPLIT_CONFIG, and no file is read if that is unset too.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = env.LoadStringOrDefault(constants.ConfigFileEnvVar, "")
	}
	if path != "" {
		fileCfg, err := read(fs, path)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(fs afero.Fs, path string) (*Config, error) {
	if !filesystem.FileExistsAndNotDir(path, fs) {
		return nil, oktetoErrors.UserError{
			E:    fmt.Errorf("%w: '%s'", oktetoErrors.ErrConfigNotFound, path),
			Hint: fmt.Sprintf("Check the value of '--config' or %s", constants.ConfigFileEnvVar),
		}
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	expanded, err := ExpandEnv(string(b))
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, oktetoErrors.UserError{
			E:    fmt.Errorf("invalid configuration file '%s': %w", path, err),
			Hint: "Valid fields are 'pre', 'post', 'labels', 'skipCentral' and 'skipPost'",
		}
	}
	return cfg, nil
}

// ExpandEnv expands the environment variables of value supporting the notation "${var:-$DEFAULT}"
func ExpandEnv(value string) (string, error) {
	result, err := envsubst.String(value)
	if err != nil {
		return "", fmt.Errorf("error expanding environment on '%s': %s", value, err.Error())
	}
	return result, nil
}

func (c *Config) merge(other *Config) {
	if other.PreSentinel != "" {
		c.PreSentinel = other.PreSentinel
	}
	if other.PostSentinel != "" {
		c.PostSentinel = other.PostSentinel
	}
	if other.Labels.Pre != "" {
		c.Labels.Pre = other.Labels.Pre
	}
	if other.Labels.Central != "" {
		c.Labels.Central = other.Labels.Central
	}
	if other.Labels.Post != "" {
		c.Labels.Post = other.Labels.Post
	}
	c.SkipCentral = c.SkipCentral || other.SkipCentral
	c.SkipPost = c.SkipPost || other.SkipPost
}

func (c *Config) loadEnv() error {
	c.PreSentinel = env.LoadStringOrDefault(constants.PreSentinelEnvVar, c.PreSentinel)
	c.PostSentinel = env.LoadStringOrDefault(constants.PostSentinelEnvVar, c.PostSentinel)

	var err error
	if c.SkipCentral, err = env.LoadBooleanOrDefault(constants.SkipCentralEnvVar, c.SkipCentral); err != nil {
		return err
	}
	if c.SkipPost, err = env.LoadBooleanOrDefault(constants.SkipPostEnvVar, c.SkipPost); err != nil {
		return err
	}
	return nil
}
