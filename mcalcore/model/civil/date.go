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

// Package civil models calendar dates in the Julian and Gregorian calendars
// and converts them to and from Julian Day Numbers.
//
// A Julian Day Number (JDN) is a plain integer day count; two civil dates
// name the same day exactly when their JDNs are equal, whatever calendar
// they are written in. All Long Count arithmetic in mcal is performed on
// JDN differences, so this package is the only place that knows about
// month lengths, leap years and the 1582 reform.
//
// Years are astronomical: year 0 is 1 BCE and year -3113 is 3114 BCE.
package civil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/internal/floor"
	"dirpx.dev/mcal/mcalcore/model"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Date is a day written as (Year, Month, Day) in a stated Calendar.
//
// Date is an immutable value type. Use NewDate or FromJDN to obtain valid
// values; a literal Date{} is 0000-00-00 and fails Validate.
type Date struct {
	// Year is the astronomical year (0 = 1 BCE).
	Year int

	// Month is the month of the year, January = 1.
	Month time.Month

	// Day is the day of the month, starting at 1.
	Day int

	// Calendar states how Year, Month and Day are read.
	Calendar Calendar
}

// NewDate returns the Date for year, month and day in cal, or a
// *ValidationError when the triple does not exist in that calendar
// (for example February 29 of a non-leap year, or 1582-10-10 in Reform).
func NewDate(year int, month time.Month, day int, cal Calendar) (Date, error) {
	d := Date{Year: year, Month: month, Day: day, Calendar: cal}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// FromJDN returns the day with Julian Day Number jdn written in cal.
func FromJDN(jdn int, cal Calendar) Date {
	var y int
	var m time.Month
	var d int
	switch {
	case cal == Julian, cal == Reform && jdn < ReformJDN:
		y, m, d = jdnToJulian(jdn)
	default:
		y, m, d = jdnToGregorian(jdn)
	}
	return Date{Year: y, Month: m, Day: d, Calendar: cal}
}

// FromTime returns the Gregorian date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d, Calendar: Gregorian}
}

// ParseDate parses "YYYY-MM-DD" (with an optional leading sign on the year,
// for example "-3113-09-06") as a date in cal.
func ParseDate(s string, cal Calendar) (Date, error) {
	body := s
	sign := 1
	switch {
	case strings.HasPrefix(body, "-"):
		sign = -1
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return Date{}, &errors.ParseError{Type: "Date", Value: s}
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" || p[0] == '+' || p[0] == '-' {
			return Date{}, &errors.ParseError{Type: "Date", Value: s}
		}
		nums[i] = n
	}

	return NewDate(sign*nums[0], time.Month(nums[1]), nums[2], cal)
}

// effective returns Julian or Gregorian: the calendar that actually governs
// this triple. For Reform it depends on which side of 1582-10-15 the
// triple falls.
func (d Date) effective() Calendar {
	if d.Calendar != Reform {
		return d.Calendar
	}
	if beforeReform(d.Year, d.Month, d.Day) {
		return Julian
	}
	return Gregorian
}

// JDN returns the Julian Day Number of d. The result is only meaningful
// for valid dates.
func (d Date) JDN() int {
	if d.effective() == Julian {
		return julianToJDN(d.Year, d.Month, d.Day)
	}
	return gregorianToJDN(d.Year, d.Month, d.Day)
}

// In returns the same day written in cal.
func (d Date) In(cal Calendar) Date {
	return FromJDN(d.JDN(), cal)
}

// AddDays returns the date n days after d (before d if n is negative),
// written in d's calendar.
func (d Date) AddDays(n int) Date {
	return FromJDN(d.JDN()+n, d.Calendar)
}

// DaysSince returns the signed number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return d.JDN() - other.JDN()
}

// Compare returns -1, 0 or +1 as d is before, the same day as, or after
// other. Dates in different calendars are compared by day.
func (d Date) Compare(other Date) int {
	a, b := d.JDN(), other.JDN()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and other name the same day, regardless of the
// calendar they are written in. Use == for field equality.
func (d Date) Equal(other Date) bool {
	return d.JDN() == other.JDN()
}

// Time returns midnight UTC of d as a time.Time (which is always
// Gregorian).
func (d Date) Time() time.Time {
	g := d.In(Gregorian)
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	// JDN 0 is a Monday.
	return time.Weekday(floor.Mod(d.JDN()+1, 7))
}

// String returns d as "YYYY-MM-DD"; negative years carry a leading "-".
// The calendar is not part of the text.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Redacted returns the same text as String.
func (d Date) Redacted() string {
	return d.String()
}

// TypeName returns "Date".
func (d Date) TypeName() string {
	return "Date"
}

// IsZero reports whether all fields hold their zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0 && d.Calendar == Reform
}

// Validate checks that Calendar is defined, Month is 1..12 and Day exists
// in that month of that calendar. In Reform, 1582-10-05..14 are rejected.
func (d Date) Validate() error {
	if err := d.Calendar.Validate(); err != nil {
		return err
	}
	if d.Month < time.January || d.Month > time.December {
		return &errors.ValidationError{
			Type:   "Date",
			Field:  "Month",
			Reason: "must be in [1,12]",
			Value:  int(d.Month),
		}
	}
	if d.Calendar == Reform && inReformGap(d.Year, d.Month, d.Day) {
		return &errors.ValidationError{
			Type:   "Date",
			Field:  "Day",
			Reason: "falls in the 1582 reform gap",
			Value:  d.Day,
		}
	}
	if n := daysIn(d.effective(), d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &errors.ValidationError{
			Type:   "Date",
			Field:  "Day",
			Reason: fmt.Sprintf("must be in [1,%d]", n),
			Value:  d.Day,
		}
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (d Date) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("date", d.String()),
		slog.String("calendar", d.Calendar.String()),
		slog.Int("jdn", d.JDN()),
	)
}

type dateWire struct {
	Year     int      `json:"year" yaml:"year"`
	Month    int      `json:"month" yaml:"month"`
	Day      int      `json:"day" yaml:"day"`
	Calendar Calendar `json:"calendar" yaml:"calendar"`
}

func (d Date) wire() dateWire {
	return dateWire{Year: d.Year, Month: int(d.Month), Day: d.Day, Calendar: d.Calendar}
}

func (w dateWire) date() Date {
	return Date{Year: w.Year, Month: time.Month(w.Month), Day: w.Day, Calendar: w.Calendar}
}

// MarshalJSON encodes d as {"year":..,"month":..,"day":..,"calendar":".."}.
func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(d.wire())
}

// UnmarshalJSON decodes the object form written by MarshalJSON. A missing
// calendar means Reform.
func (d *Date) UnmarshalJSON(data []byte) error {
	var w dateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Date", Data: data, Reason: err.Error()}
	}
	parsed := w.date()
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a mapping with year, month, day and calendar.
func (d Date) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.wire(), nil
}

// UnmarshalYAML accepts either the mapping form or a scalar "YYYY-MM-DD",
// which is read in the Reform calendar.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseDate(node.Value, Reform)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var w dateWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Date", Reason: err.Error()}
	}
	parsed := w.date()
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder as the array
// [year, month, day, calendar].
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	for _, v := range []int{d.Year, int(d.Month), d.Day, int(d.Calendar)} {
		if err := enc.EncodeInt(int64(v)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder for the layout written by
// EncodeMsgpack.
func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return &errors.UnmarshalError{Type: "Date", Reason: err.Error()}
	}
	if n != 4 {
		return &errors.UnmarshalError{Type: "Date", Reason: fmt.Sprintf("got %d fields, want 4", n)}
	}
	var v [4]int64
	for i := range v {
		if v[i], err = dec.DecodeInt64(); err != nil {
			return &errors.UnmarshalError{Type: "Date", Reason: err.Error()}
		}
	}
	parsed := Date{Year: int(v[0]), Month: time.Month(v[1]), Day: int(v[2]), Calendar: Calendar(v[3])}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that Date implements model.Model interface.
var _ model.Model = (*Date)(nil)

var (
	_ msgpack.CustomEncoder = Date{}
	_ msgpack.CustomDecoder = (*Date)(nil)
)
