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

package civil

import (
	"encoding/json"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model"
	"gopkg.in/yaml.v3"
)

// Calendar selects how a (year, month, day) triple is read.
//
// The same day can be written differently in the Julian and Gregorian
// calendars; the correlation constants of the Long Count are defined as
// Julian dates, while modern dates are normally written in the Gregorian
// calendar. Calendar removes that ambiguity from every civil.Date.
type Calendar int

const (
	// Reform reads dates before 1582-10-15 as Julian and dates from
	// 1582-10-15 on as Gregorian, following the Italian adoption of the
	// Gregorian calendar. The ten days 1582-10-05 through 1582-10-14 do not
	// exist in this calendar.
	//
	// Reform is the zero value and the default for conversions: it reads
	// ancient dates (including the correlation epochs) and modern dates the
	// way historians write them.
	Reform Calendar = iota

	// Julian is the proleptic Julian calendar: a leap year every four years,
	// extended backwards and forwards without a reform gap.
	Julian

	// Gregorian is the proleptic Gregorian calendar, extended backwards
	// before 1582. This is the calendar used by time.Time.
	Gregorian
)

// String constants for Calendar values used in serialization, parsing and
// configuration files.
const (
	ReformStr    = "reform"
	JulianStr    = "julian"
	GregorianStr = "gregorian"
)

// ParseCalendar converts a textual representation into a Calendar value.
//
//	"reform",    "Reform",    "REFORM"    -> Reform
//	"julian",    "Julian",    "JULIAN"    -> Julian
//	"gregorian", "Gregorian", "GREGORIAN" -> Gregorian
//
// Any other input yields a *ParseError.
func ParseCalendar(s string) (Calendar, error) {
	switch s {
	case ReformStr, "Reform", "REFORM":
		return Reform, nil
	case JulianStr, "Julian", "JULIAN":
		return Julian, nil
	case GregorianStr, "Gregorian", "GREGORIAN":
		return Gregorian, nil
	default:
		return Reform, &errors.ParseError{Type: "Calendar", Value: s}
	}
}

// String returns the canonical lowercase name of the calendar, or
// "unknown" for values outside the defined constants.
func (c Calendar) String() string {
	switch c {
	case Reform:
		return ReformStr
	case Julian:
		return JulianStr
	case Gregorian:
		return GregorianStr
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined constants.
func (c Calendar) Valid() bool {
	return c == Reform || c == Julian || c == Gregorian
}

// TypeName returns "Calendar".
func (c Calendar) TypeName() string {
	return "Calendar"
}

// Redacted returns the same string as String.
func (c Calendar) Redacted() string {
	return c.String()
}

// IsZero reports whether c is Reform. The zero value is valid.
func (c Calendar) IsZero() bool {
	return c == Reform
}

// Equal reports whether other is a Calendar or *Calendar with the same value.
func (c Calendar) Equal(other any) bool {
	switch v := other.(type) {
	case Calendar:
		return c == v
	case *Calendar:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if c is not a defined constant.
func (c Calendar) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Calendar",
			Reason: "invalid Calendar value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON encodes a valid Calendar as its lowercase name.
func (c Calendar) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Calendar", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts either a name understood by ParseCalendar or the
// numeric constant (0, 1, 2).
func (c *Calendar) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Calendar", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Calendar", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseCalendar(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Calendar", Data: data, Reason: err.Error()}
	}
	if !Calendar(i).Valid() {
		return &errors.UnmarshalError{Type: "Calendar", Data: data, Reason: "invalid numeric value"}
	}
	*c = Calendar(i)
	return nil
}

// MarshalYAML encodes a valid Calendar as its lowercase name.
func (c Calendar) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Calendar", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML decodes a scalar name via ParseCalendar.
func (c *Calendar) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Calendar", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseCalendar(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Calendar) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Calendar", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCalendar.
func (c *Calendar) UnmarshalText(text []byte) error {
	parsed, err := ParseCalendar(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time check that Calendar implements model.Model interface.
var _ model.Model = (*Calendar)(nil)
