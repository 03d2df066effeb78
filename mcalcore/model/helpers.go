/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Value is the part of Model that is available on a value receiver: the
// Unmarshal methods of a Model need a pointer, everything else does not.
type Value interface {
	Validatable
	Loggable
	Identifiable
}

// Ptr constrains a pointer to T that implements Model, so that decoders
// can be called as FromJSON(data, &v) for a value type T.
type Ptr[T any] interface {
	*T
	Model
}

// ValidateAll validates every model in the slice and returns one combined
// error listing all failures, or nil when all of them are valid.
//
// Each failure is wrapped with its index and TypeName, so a batch of Long
// Counts read from a file reports exactly which entries are broken:
//
//	model[2] (LongCount): mcal: invalid LongCount.Winal: must be in [0,17]
//
// The whole slice is always processed. Empty slices are valid.
func ValidateAll[T Value](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate returns m unchanged if it is valid and panics otherwise.
//
// Use it only where an invalid value is a programming error: package-level
// tables, test fixtures, hardcoded constants.
func MustValidate[T Value](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted(), or m.String() when unsafe is true.
func SafeString[T Value](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it as JSON.
//
// Invalid models are never encoded: the validation error is returned wrapped
// with the model's TypeName.
func ToJSON[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// FromJSON decodes JSON data into *m and validates the result.
//
// If FromJSON returns an error, *m MUST NOT be used.
func FromJSON[T any, P Ptr[T]](data []byte, m P) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// ToYAML validates m and encodes it as YAML.
func ToYAML[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromYAML decodes YAML data into *m and validates the result.
//
// This is the entry point used to load configuration documents.
func FromYAML[T any, P Ptr[T]](data []byte, m P) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// ToMsgpack validates m and encodes it with MessagePack.
//
// Types that implement msgpack.CustomEncoder (LongCount, civil.Date,
// maya.Date) control their own compact layout; other models fall back to
// the library's reflection-based encoding.
func ToMsgpack[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return msgpack.Marshal(m)
}

// FromMsgpack decodes MessagePack data into *m and validates the result.
func FromMsgpack[T any, P Ptr[T]](data []byte, m P) error {
	if err := msgpack.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal MessagePack: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
