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
	"dirpx.dev/mcal/mcalcore/clock"
	"dirpx.dev/mcal/mcalcore/model/civil"
)

// Converter maps civil dates to Mayan dates and back under one
// Correlation.
//
// Every Date a Converter produces records that Correlation, and every
// civil date it produces from a Long Count is written in the Converter's
// Calendar. The zero Converter uses GMT584283 and the Reform calendar.
//
// Converter is an immutable value and safe for concurrent use.
type Converter struct {
	correlation Correlation
	calendar    civil.Calendar
}

// Option configures a Converter.
type Option func(*Converter)

// WithCalendar sets the calendar in which decoded civil dates are written.
func WithCalendar(cal civil.Calendar) Option {
	return func(c *Converter) {
		c.calendar = cal
	}
}

// NewConverter returns a Converter bound to corr. It fails when corr or an
// option's calendar is not a defined constant.
func NewConverter(corr Correlation, opts ...Option) (Converter, error) {
	c := Converter{correlation: corr}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.correlation.Validate(); err != nil {
		return Converter{}, err
	}
	if err := c.calendar.Validate(); err != nil {
		return Converter{}, err
	}
	return c, nil
}

// Correlation returns the correlation the Converter is bound to.
func (c Converter) Correlation() Correlation {
	return c.correlation
}

// Calendar returns the calendar of decoded civil dates.
func (c Converter) Calendar() civil.Calendar {
	return c.calendar
}

// Days returns the signed number of days from the epoch to date. Dates
// before the epoch give negative counts.
func (c Converter) Days(date civil.Date) int {
	return date.JDN() - c.correlation.JDN()
}

// DateOf returns the civil date that lies days days after the epoch,
// written in the Converter's calendar.
func (c Converter) DateOf(days int) civil.Date {
	return civil.FromJDN(c.correlation.JDN()+days, c.calendar)
}

// Encode returns the canonical Long Count of date.
func (c Converter) Encode(date civil.Date) LongCount {
	return LongCountFromDays(c.Days(date))
}

// Decode returns the civil date lc denotes. Non-canonical digits are
// accepted; only their total number of days matters.
func (c Converter) Decode(lc LongCount) civil.Date {
	return c.DateOf(lc.Days())
}

// Tzolkin returns the Tzolk'in position of date.
func (c Converter) Tzolkin(date civil.Date) Tzolkin {
	return TzolkinFromDays(c.Days(date))
}

// Haab returns the Haab position of date.
func (c Converter) Haab(date civil.Date) Haab {
	return HaabFromDays(c.Days(date))
}

// FromCivil builds the full Mayan Date of a civil date. The Long Count,
// Tzolk'in and Haab are each derived from date independently. Civil keeps
// date exactly as given, including its calendar.
func (c Converter) FromCivil(date civil.Date) Date {
	return Date{
		Correlation: c.correlation,
		Civil:       date,
		LongCount:   c.Encode(date),
		Tzolkin:     c.Tzolkin(date),
		Haab:        c.Haab(date),
	}
}

// FromLongCount builds the full Mayan Date from Long Count digits, most
// significant first. Five digits (baktun..kin) get a piktun of 0; six
// digits are piktun..kin; other lengths fail with ErrInvalidDigitCount.
//
// The civil date is decoded first and the Tzolk'in and Haab are derived
// from it. The stored LongCount is canonical, so digits that overflow
// their position (a kin of 25, say) are carried.
func (c Converter) FromLongCount(digits []int) (Date, error) {
	lc, err := NewLongCount(digits...)
	if err != nil {
		return Date{}, err
	}
	return c.FromLongCountValue(lc), nil
}

// FromLongCountValue is FromLongCount for an already built LongCount.
func (c Converter) FromLongCountValue(lc LongCount) Date {
	return c.FromCivil(c.Decode(lc))
}

// Today returns the Mayan Date of the current day as reported by clk,
// with the civil date written in the Converter's calendar.
func (c Converter) Today(clk clock.Clock) Date {
	return c.FromCivil(civil.FromTime(clk.Now()).In(c.calendar))
}
