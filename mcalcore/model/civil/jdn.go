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
	"time"

	"dirpx.dev/mcal/mcalcore/internal/floor"
)

// ReformJDN is the Julian Day Number of 1582-10-15 (Gregorian), the first
// day read as Gregorian by the Reform calendar. The day before it,
// JDN 2299160, is 1582-10-04 (Julian).
const ReformJDN = 2299161

// The integer algorithms below count months from March so the leap day
// falls at the end of the year. All divisions floor, which keeps them exact
// for years before -4800 and for negative day numbers.

func gregorianToJDN(year int, month time.Month, day int) int {
	a := floor.Div(14-int(month), 12)
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + floor.Div(153*m+2, 5) + 365*y +
		floor.Div(y, 4) - floor.Div(y, 100) + floor.Div(y, 400) - 32045
}

func julianToJDN(year int, month time.Month, day int) int {
	a := floor.Div(14-int(month), 12)
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + floor.Div(153*m+2, 5) + 365*y + floor.Div(y, 4) - 32083
}

func jdnToGregorian(jdn int) (int, time.Month, int) {
	a := jdn + 32044
	b := floor.Div(4*a+3, 146097)
	c := a - floor.Div(146097*b, 4)
	d := floor.Div(4*c+3, 1461)
	e := c - floor.Div(1461*d, 4)
	m := floor.Div(5*e+2, 153)

	day := e - floor.Div(153*m+2, 5) + 1
	month := time.Month(m + 3 - 12*floor.Div(m, 10))
	year := 100*b + d - 4800 + floor.Div(m, 10)
	return year, month, day
}

func jdnToJulian(jdn int) (int, time.Month, int) {
	c := jdn + 32082
	d := floor.Div(4*c+3, 1461)
	e := c - floor.Div(1461*d, 4)
	m := floor.Div(5*e+2, 153)

	day := e - floor.Div(153*m+2, 5) + 1
	month := time.Month(m + 3 - 12*floor.Div(m, 10))
	year := d - 4800 + floor.Div(m, 10)
	return year, month, day
}

func isLeap(cal Calendar, year int) bool {
	if floor.Mod(year, 4) != 0 {
		return false
	}
	if cal == Julian {
		return true
	}
	return floor.Mod(year, 100) != 0 || floor.Mod(year, 400) == 0
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the length of the month in the given effective calendar
// (Julian or Gregorian, never Reform).
func daysIn(cal Calendar, year int, month time.Month) int {
	if month == time.February && isLeap(cal, year) {
		return 29
	}
	return monthDays[month]
}

// beforeReform reports whether the triple sorts before 1582-10-15.
func beforeReform(year int, month time.Month, day int) bool {
	if year != 1582 {
		return year < 1582
	}
	if month != time.October {
		return month < time.October
	}
	return day < 15
}

// inReformGap reports whether the triple names one of the ten days dropped
// by the 1582 reform.
func inReformGap(year int, month time.Month, day int) bool {
	return year == 1582 && month == time.October && day >= 5 && day <= 14
}
