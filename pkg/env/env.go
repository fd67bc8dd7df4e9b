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

package env

import (
	"fmt"
	"os"
	"strconv"
)

// InvalidBooleanError is returned when an environment variable can't be parsed as a boolean
type InvalidBooleanError struct {
	Name  string
	Value string
}

// Error returns the error message
func (e InvalidBooleanError) Error() string {
	return fmt.Sprintf("'%s' is not a valid value for environment variable %s", e.Value, e.Name)
}

// LoadStringOrDefault loads a string environment variable and returns it value
// If the variable is not defined or empty, it returns the default value
func LoadStringOrDefault(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

// LoadBooleanOrDefault loads a boolean environment variable and returns it value
// If the variable is not defined, it returns the default value
func LoadBooleanOrDefault(k string, d bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return d, nil
	}

	h, err := strconv.ParseBool(v)
	if err != nil {
		return d, InvalidBooleanError{Name: k, Value: v}
	}

	return h, nil
}
