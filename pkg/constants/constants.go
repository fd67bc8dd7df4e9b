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

package constants

const (
	// DefaultPreSentinel is the line that closes the pre block
	DefaultPreSentinel = "--- PRE ---"

	// DefaultPostSentinel is the line that opens the post block
	DefaultPostSentinel = "--- POST ---"

	// DefaultPreLabel is the banner label of the pre block
	DefaultPreLabel = "PRE-BLOCK"

	// DefaultCentralLabel is the banner label of the central block
	DefaultCentralLabel = "CENTRAL-BLOCK"

	// DefaultPostLabel is the banner label of the post block
	DefaultPostLabel = "POST-BLOCK"

	// PreSentinelEnvVar overrides the pre sentinel
	PreSentinelEnvVar = "BLOCKSPLIT_PRE_SENTINEL"

	// PostSentinelEnvVar overrides the post sentinel
	PostSentinelEnvVar = "BLOCKSPLIT_POST_SENTINEL"

	// SkipCentralEnvVar discards the central block when true
	SkipCentralEnvVar = "BLOCKSPLIT_SKIP_CENTRAL"

	// SkipPostEnvVar discards the post block when true
	SkipPostEnvVar = "BLOCKSPLIT_SKIP_POST"

	// ConfigFileEnvVar defines the path of the configuration file
	ConfigFileEnvVar = "BLOCKSPLIT_CONFIG"
)
