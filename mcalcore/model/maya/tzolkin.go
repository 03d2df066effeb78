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
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/internal/floor"
	"dirpx.dev/mcal/mcalcore/model"
	"gopkg.in/yaml.v3"
)

// DaySign is one of the 20 named days of the Tzolk'in, Imix through Ajaw.
type DaySign int

// Day signs in cycle order.
const (
	Imix DaySign = iota
	Ik
	Akbal
	Kan
	Chickchan
	Kimi
	Manik
	Lamat
	Muluk
	Ok
	Chuwen
	Eb
	Ben
	Ix
	Men
	Kib
	Kaban
	Etznab
	Kawak
	Ajaw
)

// daySignNames holds the display names. Apostrophes mark glottal stops and
// are part of the text.
var daySignNames = [20]string{
	"Imix", "I'k", "Ak'bal", "Kan", "Chickchan", "Kimi", "Manik'", "Lamat", "Muluk", "Ok",
	"Chuwen", "Eb", "Ben", "Ix", "Men", "Kib", "Kaban", "Etz'nab", "Kawak", "Ajaw",
}

var daySignIndex = nameIndex(daySignNames[:])

// DaySignNames returns the 20 day sign names in cycle order. The slice is a
// fresh copy.
func DaySignNames() []string {
	out := make([]string, len(daySignNames))
	copy(out, daySignNames[:])
	return out
}

// ParseDaySign resolves a day sign name. Matching ignores case and
// apostrophes, so "Akbal", "ak'bal" and "Ak'bal" are all Akbal.
func ParseDaySign(s string) (DaySign, error) {
	if i, ok := daySignIndex[foldName(s)]; ok {
		return DaySign(i), nil
	}
	return Imix, &errors.ParseError{Type: "DaySign", Value: s}
}

// String returns the display name, or "unknown" for undefined values.
func (s DaySign) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return daySignNames[s]
}

// Valid reports whether s is one of the 20 day signs.
func (s DaySign) Valid() bool {
	return s >= Imix && s <= Ajaw
}

// TypeName returns "DaySign".
func (s DaySign) TypeName() string { return "DaySign" }

// Redacted returns the same string as String.
func (s DaySign) Redacted() string { return s.String() }

// IsZero reports whether s is Imix. The zero value is valid.
func (s DaySign) IsZero() bool { return s == Imix }

// Validate returns a *ValidationError if s is not a defined day sign.
func (s DaySign) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{Type: "DaySign", Reason: "invalid DaySign value", Value: int(s)}
	}
	return nil
}

// MarshalJSON encodes s as its display name.
func (s DaySign) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "DaySign", Value: int(s)}
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a name via ParseDaySign.
func (s *DaySign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "DaySign", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseDaySign(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes s as its display name.
func (s DaySign) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "DaySign", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a scalar name via ParseDaySign.
func (s *DaySign) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDaySign(node.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Tzolkin is a position in the 260-day ritual cycle: a number paired with
// a day sign. Both advance by one each day.
//
// Number holds (days+4) mod 13, a value in [0,12]. The traditional count
// runs 1..13; the two agree except that the traditional 13 is stored as 0.
// String prints the stored value. Use Traditional for the 1..13 form.
type Tzolkin struct {
	Number int
	Sign   DaySign
}

// TzolkinFromDays returns the Tzolk'in position of the day that lies days
// days after the correlation epoch. The epoch itself is 4 Ajaw.
func TzolkinFromDays(days int) Tzolkin {
	return Tzolkin{
		Number: floor.Mod(days+tzolkinNumberShift, TzolkinNumbers),
		Sign:   DaySign(floor.Mod(days+tzolkinSignShift, len(daySignNames))),
	}
}

// Traditional returns Number in the conventional 1..13 range.
func (t Tzolkin) Traditional() int {
	if t.Number == 0 {
		return TzolkinNumbers
	}
	return t.Number
}

// String renders t as "Number-Sign", for example "4-Ajaw".
func (t Tzolkin) String() string {
	return strconv.Itoa(t.Number) + "-" + t.Sign.String()
}

// ParseTzolkin parses the "Number-Sign" form. A number of 13 is read as 0,
// so both numbering conventions are accepted.
func ParseTzolkin(s string) (Tzolkin, error) {
	num, name, ok := strings.Cut(s, "-")
	if !ok {
		return Tzolkin{}, &errors.ParseError{Type: "Tzolkin", Value: s}
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Tzolkin{}, &errors.ParseError{Type: "Tzolkin", Value: s}
	}
	if n == TzolkinNumbers {
		n = 0
	}
	sign, err := ParseDaySign(name)
	if err != nil {
		return Tzolkin{}, err
	}
	t := Tzolkin{Number: n, Sign: sign}
	if err := t.Validate(); err != nil {
		return Tzolkin{}, err
	}
	return t, nil
}

// Redacted returns the same text as String.
func (t Tzolkin) Redacted() string { return t.String() }

// TypeName returns "Tzolkin".
func (t Tzolkin) TypeName() string { return "Tzolkin" }

// IsZero reports whether t is 0-Imix.
func (t Tzolkin) IsZero() bool { return t == Tzolkin{} }

// Validate checks Number is in [0,12] and Sign is defined.
func (t Tzolkin) Validate() error {
	if t.Number < 0 || t.Number >= TzolkinNumbers {
		return &errors.ValidationError{
			Type:   "Tzolkin",
			Field:  "Number",
			Reason: fmt.Sprintf("must be in [0,%d]", TzolkinNumbers-1),
			Value:  t.Number,
		}
	}
	return t.Sign.Validate()
}

// MarshalJSON encodes t as its text form, for example "4-Ajaw".
func (t Tzolkin) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the text form via ParseTzolkin.
func (t *Tzolkin) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Tzolkin", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseTzolkin(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes t as its text form.
func (t Tzolkin) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String(), nil
}

// UnmarshalYAML decodes the text form via ParseTzolkin.
func (t *Tzolkin) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseTzolkin(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Compile-time checks that DaySign and Tzolkin implement model.Model.
var (
	_ model.Model = (*DaySign)(nil)
	_ model.Model = (*Tzolkin)(nil)
)
