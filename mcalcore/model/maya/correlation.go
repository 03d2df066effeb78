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

package maya

import (
	"encoding/json"
	"time"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model"
	"dirpx.dev/mcal/mcalcore/model/civil"
	"gopkg.in/yaml.v3"
)

// Correlation selects the civil day that carries Long Count 0.0.0.0.0.0.
//
// Both supported constants belong to the Goodman-Martinez-Thompson (GMT)
// family and differ by two days. The number in each name is the Julian Day
// Number of the epoch. A chain of conversions MUST use a single
// Correlation; Date carries its Correlation so that this is checked.
type Correlation int

const (
	// GMT584283 puts the epoch on Julian -3113-09-06 (Gregorian 3114 BCE
	// August 11). It is the zero value and the default.
	GMT584283 Correlation = iota

	// GMT584285 puts the epoch on Julian -3113-09-08 (Gregorian 3114 BCE
	// August 13).
	GMT584285
)

// String constants for Correlation values.
const (
	GMT584283Str = "gmt-584283"
	GMT584285Str = "gmt-584285"
)

// ParseCorrelation converts a textual representation into a Correlation.
//
//	"gmt-584283", "GMT-584283", "gmt584283", "584283" -> GMT584283
//	"gmt-584285", "GMT-584285", "gmt584285", "584285" -> GMT584285
func ParseCorrelation(s string) (Correlation, error) {
	switch s {
	case GMT584283Str, "GMT-584283", "gmt584283", "GMT584283", "584283":
		return GMT584283, nil
	case GMT584285Str, "GMT-584285", "gmt584285", "GMT584285", "584285":
		return GMT584285, nil
	default:
		return GMT584283, &errors.ParseError{Type: "Correlation", Value: s}
	}
}

// JDN returns the Julian Day Number of the epoch. Undefined values fall
// back to GMT584283; call Validate first on values from untrusted input.
func (c Correlation) JDN() int {
	if c == GMT584285 {
		return 584285
	}
	return 584283
}

// Epoch returns the epoch as a Julian calendar date, the form in which the
// correlation constants are defined. Undefined values fall back to
// GMT584283, as in JDN.
func (c Correlation) Epoch() civil.Date {
	if c == GMT584285 {
		return civil.Date{Year: -3113, Month: time.September, Day: 8, Calendar: civil.Julian}
	}
	return civil.Date{Year: -3113, Month: time.September, Day: 6, Calendar: civil.Julian}
}

// GregorianEpoch returns the epoch in the proleptic Gregorian calendar.
func (c Correlation) GregorianEpoch() civil.Date {
	return c.Epoch().In(civil.Gregorian)
}

// String returns the canonical name, or "unknown" for undefined values.
func (c Correlation) String() string {
	switch c {
	case GMT584283:
		return GMT584283Str
	case GMT584285:
		return GMT584285Str
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined constants.
func (c Correlation) Valid() bool {
	return c == GMT584283 || c == GMT584285
}

// Other returns the second supported correlation. It is used to diagnose
// values that were derived under the wrong constant.
func (c Correlation) Other() Correlation {
	if c == GMT584285 {
		return GMT584283
	}
	return GMT584285
}

// TypeName returns "Correlation".
func (c Correlation) TypeName() string {
	return "Correlation"
}

// Redacted returns the same string as String.
func (c Correlation) Redacted() string {
	return c.String()
}

// IsZero reports whether c is GMT584283. The zero value is valid.
func (c Correlation) IsZero() bool {
	return c == GMT584283
}

// Equal reports whether other is a Correlation or *Correlation with the
// same value.
func (c Correlation) Equal(other any) bool {
	switch v := other.(type) {
	case Correlation:
		return c == v
	case *Correlation:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if c is not a defined constant.
func (c Correlation) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Correlation",
			Reason: "invalid Correlation value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON encodes a valid Correlation as its canonical name.
func (c Correlation) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Correlation", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts a name understood by ParseCorrelation, or the
// correlation number itself (584283 or 584285) as a JSON number.
func (c *Correlation) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Correlation", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Correlation", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseCorrelation(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Correlation", Data: data, Reason: err.Error()}
	}
	switch n {
	case 584283:
		*c = GMT584283
	case 584285:
		*c = GMT584285
	default:
		return &errors.UnmarshalError{Type: "Correlation", Data: data, Reason: "unknown correlation number"}
	}
	return nil
}

// MarshalYAML encodes a valid Correlation as its canonical name.
func (c Correlation) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Correlation", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseCorrelation. A bare number such
// as 584285 is accepted as well.
func (c *Correlation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Correlation", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseCorrelation(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Correlation) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Correlation", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCorrelation.
func (c *Correlation) UnmarshalText(text []byte) error {
	parsed, err := ParseCorrelation(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time check that Correlation implements model.Model interface.
var _ model.Model = (*Correlation)(nil)
