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

// Month is one of the 19 months of the Haab: 18 months of 20 days
// followed by Wayeb, which has 5.
type Month int

// Haab months in order.
const (
	Pop Month = iota
	Wo
	Sip
	Sots
	Sek
	Xul
	Yaxkin
	Mol
	Chen
	Yax
	Sak
	Keh
	Mak
	Kankin
	Muwan
	Pax
	Kayab
	Kumku
	Wayeb
)

var monthNames = [19]string{
	"Pop", "Wo", "Sip", "Sots", "Sek", "Xul", "Yaxk'in", "Mol", "Che'n", "Yax",
	"Sak", "Keh", "Mak", "K'ank'in", "Muwan", "Pax", "K'ayab", "Kumk'u", "Wayeb",
}

var monthIndex = nameIndex(monthNames[:])

// Month lengths.
const (
	MonthDays = 20
	WayebDays = 5
)

// haabSequence lists every Haab position in order, 1-Pop through 5-Wayeb.
var haabSequence = buildHaabSequence()

func buildHaabSequence() [HaabDays]Haab {
	var seq [HaabDays]Haab
	i := 0
	for m := Pop; m <= Wayeb; m++ {
		for d := 1; d <= m.Days(); d++ {
			seq[i] = Haab{Day: d, Month: m}
			i++
		}
	}
	return seq
}

// HaabSequence returns the 365 Haab positions in cycle order: Pop 1..20,
// Wo 1..20, ..., Kumk'u 1..20, Wayeb 1..5. The array is a copy.
func HaabSequence() [HaabDays]Haab {
	return haabSequence
}

// MonthNames returns the 19 month names in order. The slice is a fresh copy.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// ParseMonth resolves a month name, ignoring case and apostrophes.
func ParseMonth(s string) (Month, error) {
	if i, ok := monthIndex[foldName(s)]; ok {
		return Month(i), nil
	}
	return Pop, &errors.ParseError{Type: "Month", Value: s}
}

// Days returns the number of days in m: 20, or 5 for Wayeb. Undefined
// months have 0 days.
func (m Month) Days() int {
	switch {
	case m == Wayeb:
		return WayebDays
	case m.Valid():
		return MonthDays
	default:
		return 0
	}
}

// String returns the display name, or "unknown" for undefined values.
func (m Month) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return monthNames[m]
}

// Valid reports whether m is one of the 19 months.
func (m Month) Valid() bool {
	return m >= Pop && m <= Wayeb
}

// TypeName returns "Month".
func (m Month) TypeName() string { return "Month" }

// Redacted returns the same string as String.
func (m Month) Redacted() string { return m.String() }

// IsZero reports whether m is Pop. The zero value is valid.
func (m Month) IsZero() bool { return m == Pop }

// Validate returns a *ValidationError if m is not a defined month.
func (m Month) Validate() error {
	if !m.Valid() {
		return &errors.ValidationError{Type: "Month", Reason: "invalid Month value", Value: int(m)}
	}
	return nil
}

// MarshalJSON encodes m as its display name.
func (m Month) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Month", Value: int(m)}
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a name via ParseMonth.
func (m *Month) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return &errors.UnmarshalError{Type: "Month", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseMonth(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes m as its display name.
func (m Month) MarshalYAML() (any, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "Month", Value: int(m)}
	}
	return m.String(), nil
}

// UnmarshalYAML decodes a scalar name via ParseMonth.
func (m *Month) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseMonth(node.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Haab is a position in the 365-day civil cycle. Day counts from 1.
type Haab struct {
	Day   int
	Month Month
}

// HaabFromDays returns the Haab position of the day that lies days days
// after the correlation epoch. The epoch itself is 8 Kumk'u.
func HaabFromDays(days int) Haab {
	return haabSequence[floor.Mod(days+haabShift, HaabDays)]
}

// String renders h as "Day-Month", for example "8-Kumk'u".
func (h Haab) String() string {
	return strconv.Itoa(h.Day) + "-" + h.Month.String()
}

// ParseHaab parses the "Day-Month" form.
func ParseHaab(s string) (Haab, error) {
	day, name, ok := strings.Cut(s, "-")
	if !ok {
		return Haab{}, &errors.ParseError{Type: "Haab", Value: s}
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Haab{}, &errors.ParseError{Type: "Haab", Value: s}
	}
	m, err := ParseMonth(name)
	if err != nil {
		return Haab{}, err
	}
	h := Haab{Day: d, Month: m}
	if err := h.Validate(); err != nil {
		return Haab{}, err
	}
	return h, nil
}

// Redacted returns the same text as String.
func (h Haab) Redacted() string { return h.String() }

// TypeName returns "Haab".
func (h Haab) TypeName() string { return "Haab" }

// IsZero reports whether h holds its zero value (which is not a valid
// position, since days count from 1).
func (h Haab) IsZero() bool { return h == Haab{} }

// Validate checks that Month is defined and Day fits in it.
func (h Haab) Validate() error {
	if err := h.Month.Validate(); err != nil {
		return err
	}
	if n := h.Month.Days(); h.Day < 1 || h.Day > n {
		return &errors.ValidationError{
			Type:   "Haab",
			Field:  "Day",
			Reason: fmt.Sprintf("must be in [1,%d]", n),
			Value:  h.Day,
		}
	}
	return nil
}

// MarshalJSON encodes h as its text form, for example "8-Kumk'u".
func (h Haab) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes the text form via ParseHaab.
func (h *Haab) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Haab", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseHaab(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalYAML encodes h as its text form.
func (h Haab) MarshalYAML() (any, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.String(), nil
}

// UnmarshalYAML decodes the text form via ParseHaab.
func (h *Haab) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseHaab(node.Value)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Compile-time checks that Month and Haab implement model.Model.
var (
	_ model.Model = (*Month)(nil)
	_ model.Model = (*Haab)(nil)
)
