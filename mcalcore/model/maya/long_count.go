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
	"log/slog"
	"strconv"
	"strings"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/internal/floor"
	"dirpx.dev/mcal/mcalcore/model"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// LongCount is a day count since the correlation epoch written in the
// mixed-radix positions piktun.baktun.katun.tun.winal.kin.
//
// A LongCount on its own is a pure number of days (see Days). It names a
// civil date only together with a Correlation; Converter.Decode performs
// that step.
//
// The canonical form, produced by LongCountFromDays, keeps every position
// below piktun in range: kin and tun and katun in [0,19], winal in [0,17],
// baktun in [0,12]. Piktun carries the rest and is negative for days before
// the epoch. Values outside these ranges can be built by hand and are valid
// input to Days and Converter.FromLongCount, but fail Validate.
type LongCount struct {
	Piktun int
	Baktun int
	Katun  int
	Tun    int
	Winal  int
	Kin    int
}

// LongCountFormat selects the text rendering of a LongCount.
type LongCountFormat int

const (
	// FormatDefault renders baktun.katun.tun.winal.kin.
	FormatDefault LongCountFormat = iota

	// FormatIncludePiktun renders piktun.baktun.katun.tun.winal.kin.
	FormatIncludePiktun
)

// NewLongCount builds a LongCount from its digits, most significant first.
//
// Five digits are read as baktun..kin with piktun 0; six digits as
// piktun..kin. Any other length yields a *DigitCountError, which matches
// ErrInvalidDigitCount. Digit values are not range-checked.
func NewLongCount(digits ...int) (LongCount, error) {
	switch len(digits) {
	case 5:
		return LongCount{Baktun: digits[0], Katun: digits[1], Tun: digits[2], Winal: digits[3], Kin: digits[4]}, nil
	case 6:
		return LongCount{Piktun: digits[0], Baktun: digits[1], Katun: digits[2], Tun: digits[3], Winal: digits[4], Kin: digits[5]}, nil
	default:
		return LongCount{}, &errors.DigitCountError{Got: len(digits)}
	}
}

// LongCountFromDays decomposes a signed day count into canonical Long Count
// digits, dividing by each coefficient from piktun down with floor
// division.
func LongCountFromDays(days int) LongCount {
	var d [6]int
	rest := days
	for i, c := range coefficients {
		d[i] = floor.Div(rest, c)
		rest -= d[i] * c
	}
	return LongCount{Piktun: d[0], Baktun: d[1], Katun: d[2], Tun: d[3], Winal: d[4], Kin: d[5]}
}

// Days returns the number of days since the epoch that lc denotes:
// the sum of each digit times its coefficient. The display rule for
// baktun plays no part here; a stored baktun of 0 contributes 0 days.
func (lc LongCount) Days() int {
	sum := 0
	for i, v := range lc.Digits() {
		sum += v * coefficients[i]
	}
	return sum
}

// Digits returns the six digits, piktun first.
func (lc LongCount) Digits() []int {
	return []int{lc.Piktun, lc.Baktun, lc.Katun, lc.Tun, lc.Winal, lc.Kin}
}

// Normalize returns the canonical LongCount for the same number of days.
func (lc LongCount) Normalize() LongCount {
	return LongCountFromDays(lc.Days())
}

// Add returns the canonical LongCount d.Days() days after lc (a posterior
// Distance Number). Carries propagate across all positions.
func (lc LongCount) Add(d Distance) LongCount {
	return LongCountFromDays(lc.Days() + d.Days())
}

// Sub returns the canonical LongCount d.Days() days before lc (an anterior
// Distance Number).
func (lc LongCount) Sub(d Distance) LongCount {
	return LongCountFromDays(lc.Days() - d.Days())
}

// Compare returns -1, 0 or +1 as lc denotes fewer, as many, or more days
// than other.
func (lc LongCount) Compare(other LongCount) int {
	a, b := lc.Days(), other.Days()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether lc and other denote the same number of days.
func (lc LongCount) Equal(other LongCount) bool {
	return lc.Days() == other.Days()
}

// displayBaktun applies the convention of writing a zero baktun as 13.
func (lc LongCount) displayBaktun() int {
	if lc.Baktun == 0 {
		return 13
	}
	return lc.Baktun
}

// Format renders lc with dots between digits. In both formats a stored
// baktun of 0 is written as 13.
func (lc LongCount) Format(f LongCountFormat) string {
	s := fmt.Sprintf("%d.%d.%d.%d.%d", lc.displayBaktun(), lc.Katun, lc.Tun, lc.Winal, lc.Kin)
	if f == FormatIncludePiktun {
		return strconv.Itoa(lc.Piktun) + "." + s
	}
	return s
}

// String renders lc as baktun.katun.tun.winal.kin, for example
// "13.0.0.0.0" for the epoch. Piktun is omitted.
func (lc LongCount) String() string {
	return lc.Format(FormatDefault)
}

// ParseLongCount parses five or six dot-separated integers.
//
// A baktun written as 13 is read back as 0, reversing the display rule, so
// ParseLongCount(lc.Format(FormatIncludePiktun)) == lc for every canonical
// lc. Non-canonical digits (for example a kin of 25) are rejected.
func ParseLongCount(s string) (LongCount, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 5 && len(parts) != 6 {
		return LongCount{}, &errors.ParseError{Type: "LongCount", Value: s}
	}

	digits := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return LongCount{}, &errors.ParseError{Type: "LongCount", Value: s}
		}
		digits[i] = n
	}

	lc, err := NewLongCount(digits...)
	if err != nil {
		return LongCount{}, err
	}
	if lc.Baktun == 13 {
		lc.Baktun = 0
	}
	if err := lc.Validate(); err != nil {
		return LongCount{}, err
	}
	return lc, nil
}

// Redacted returns the same text as String.
func (lc LongCount) Redacted() string {
	return lc.String()
}

// TypeName returns "LongCount".
func (lc LongCount) TypeName() string {
	return "LongCount"
}

// IsZero reports whether all digits are zero, i.e. lc is the epoch.
func (lc LongCount) IsZero() bool {
	return lc == LongCount{}
}

// Validate checks that lc is canonical: every position below piktun is
// within its range.
func (lc LongCount) Validate() error {
	checks := []struct {
		field string
		value int
		max   int
	}{
		{"Baktun", lc.Baktun, BaktunPlaces - 1},
		{"Katun", lc.Katun, KatunPlaces - 1},
		{"Tun", lc.Tun, TunPlaces - 1},
		{"Winal", lc.Winal, WinalPlaces - 1},
		{"Kin", lc.Kin, KinPlaces - 1},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return &errors.ValidationError{
				Type:   "LongCount",
				Field:  c.field,
				Reason: fmt.Sprintf("must be in [0,%d]", c.max),
				Value:  c.value,
			}
		}
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (lc LongCount) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("long_count", lc.Format(FormatIncludePiktun)),
		slog.Int("days", lc.Days()),
	)
}

// MarshalJSON encodes lc as an array of six digits, piktun first.
func (lc LongCount) MarshalJSON() ([]byte, error) {
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(lc.Digits())
}

// UnmarshalJSON accepts an array of five or six digits, or a string in
// the form accepted by ParseLongCount.
func (lc *LongCount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "LongCount", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLongCount(s)
		if err != nil {
			return err
		}
		*lc = parsed
		return nil
	}

	var digits []int
	if err := json.Unmarshal(data, &digits); err != nil {
		return &errors.UnmarshalError{Type: "LongCount", Data: data, Reason: err.Error()}
	}
	return lc.setDigits(digits)
}

func (lc *LongCount) setDigits(digits []int) error {
	parsed, err := NewLongCount(digits...)
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*lc = parsed
	return nil
}

// MarshalYAML encodes lc as a scalar in the piktun-inclusive text form,
// for example "1.13.0.0.0.0".
func (lc LongCount) MarshalYAML() (any, error) {
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return lc.Format(FormatIncludePiktun), nil
}

// UnmarshalYAML accepts the scalar text form or a sequence of five or six
// digits.
func (lc *LongCount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var digits []int
		if err := node.Decode(&digits); err != nil {
			return &errors.UnmarshalError{Type: "LongCount", Reason: err.Error()}
		}
		return lc.setDigits(digits)
	}

	parsed, err := ParseLongCount(node.Value)
	if err != nil {
		return err
	}
	*lc = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler with the piktun-inclusive
// text form.
func (lc LongCount) MarshalText() ([]byte, error) {
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return []byte(lc.Format(FormatIncludePiktun)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseLongCount.
func (lc *LongCount) UnmarshalText(text []byte) error {
	parsed, err := ParseLongCount(string(text))
	if err != nil {
		return err
	}
	*lc = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder as an array of six
// integers, piktun first.
func (lc LongCount) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(6); err != nil {
		return err
	}
	for _, v := range lc.Digits() {
		if err := enc.EncodeInt(int64(v)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (lc *LongCount) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return &errors.UnmarshalError{Type: "LongCount", Reason: err.Error()}
	}
	if n < 0 {
		return &errors.UnmarshalError{Type: "LongCount", Reason: "nil array"}
	}
	if n != 5 && n != 6 {
		return &errors.DigitCountError{Got: n}
	}
	var buf [6]int
	digits := buf[:n]
	for i := range digits {
		v, err := dec.DecodeInt64()
		if err != nil {
			return &errors.UnmarshalError{Type: "LongCount", Reason: err.Error()}
		}
		digits[i] = int(v)
	}
	return lc.setDigits(digits)
}

// Compile-time check that LongCount implements model.Model interface.
var _ model.Model = (*LongCount)(nil)

var (
	_ msgpack.CustomEncoder = LongCount{}
	_ msgpack.CustomDecoder = (*LongCount)(nil)
)
