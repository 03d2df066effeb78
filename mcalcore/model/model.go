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

// Package model defines the contracts shared by every mcal value type.
//
// Calendar values in mcal (civil dates, correlations, Long Counts, Tzolk'in
// and Haab positions, aggregate Mayan dates) are small immutable values. Each
// of them implements Model so that callers can validate, serialize, log and
// identify them in a uniform way, and so that the generic helpers in this
// package (ValidateAll, MustValidate, ToJSON, FromYAML, ToMsgpack, ...) apply
// to all of them.
//
// Model values are safe for concurrent reads. Unmarshal methods mutate their
// receiver and require exclusive access.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required of an mcal
// value type: validation, JSON and YAML round trips, safe and full string
// forms, a canonical type name and zero detection.
//
// Implementations are expected to be value types whose methods never mutate
// the receiver (other than the Unmarshal methods).
//
//	var _ model.Model = (*LongCount)(nil) // compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that can check their own invariants.
//
// Validate returns nil if and only if the value is fully consistent. It MUST
// be deterministic, side-effect free and cheap: no I/O and no clock reads.
// Errors SHOULD name the offending field, for example
// "mcal: invalid LongCount.Winal: must be in [0,17]".
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types with JSON and YAML round trips.
//
// Marshal methods MUST refuse invalid values. Unmarshal methods MUST
// validate what they decoded and return the validation error when the input
// is well-formed but inconsistent. Implementations typically use a local
// alias type to avoid recursing into their own methods.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that expose two text forms.
//
// Redacted is the form intended for logs. String is the full human-readable
// form. Calendar values hold no secrets, so the two usually coincide, but
// call sites that log SHOULD still use Redacted (or SafeString) so the
// decision stays visible.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable is implemented by types that report a constant CamelCase
// type name without package prefix (for example "LongCount"). The name is
// used in error messages and log attributes.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can tell whether they hold
// their zero value.
//
// For several calendar types the zero value is meaningful (the zero
// Correlation is GMT 584283, the zero LongCount is the epoch itself), so
// IsZero answering true does not imply that Validate fails.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is implemented by value types with a custom equality, such as
// civil dates that compare by Julian Day Number rather than by field.
type Comparable[T any] interface {
	Equal(other T) bool
}
