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

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model"
	"dirpx.dev/mcal/mcalcore/model/civil"
	"dirpx.dev/rxmerr"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Date is one day seen through every calendar this package knows: the
// civil date it was built from or decoded to, its Long Count, and its
// Tzolk'in and Haab positions, all under one Correlation.
//
// Dates are built by a Converter (FromCivil, FromLongCount, Today) and are
// complete from the start. Arithmetic returns new Dates; nothing mutates a
// Date in place.
type Date struct {
	Correlation Correlation
	Civil       civil.Date
	LongCount   LongCount
	Tzolkin     Tzolkin
	Haab        Haab
}

// converter returns the Converter that produced d, writing decoded dates in
// the calendar of d.Civil.
func (d Date) converter() Converter {
	return Converter{correlation: d.Correlation, calendar: d.Civil.Calendar}
}

// AddDistance returns the Date dist.Days() days after d (a posterior
// Distance Number). The result keeps d's Correlation and calendar. An
// undefined Correlation is carried over unchanged, so the result fails
// Validate; AddDistanceDigits reports it as an error instead.
func (d Date) AddDistance(dist Distance) Date {
	return d.converter().FromLongCountValue(d.LongCount.Add(dist))
}

// SubDistance returns the Date dist.Days() days before d (an anterior
// Distance Number).
func (d Date) SubDistance(dist Distance) Date {
	return d.converter().FromLongCountValue(d.LongCount.Sub(dist))
}

// AddDistanceDigits is AddDistance for a raw Distance Number, least
// significant component first: [kin, winal, tun, katun, baktun, piktun].
// Missing components are zero; more than six fail with
// ErrInvalidDistanceLength.
func (d Date) AddDistanceDigits(components ...int) (Date, error) {
	if err := d.Correlation.Validate(); err != nil {
		return Date{}, err
	}
	dist, err := NewDistance(components...)
	if err != nil {
		return Date{}, err
	}
	return d.AddDistance(dist), nil
}

// SubDistanceDigits is SubDistance for a raw Distance Number, least
// significant component first.
func (d Date) SubDistanceDigits(components ...int) (Date, error) {
	if err := d.Correlation.Validate(); err != nil {
		return Date{}, err
	}
	dist, err := NewDistance(components...)
	if err != nil {
		return Date{}, err
	}
	return d.SubDistance(dist), nil
}

func (d Date) sameCorrelation(op string, other Date) error {
	if err := d.Correlation.Validate(); err != nil {
		return err
	}
	if d.Correlation != other.Correlation {
		return &errors.CorrelationError{Op: op, Want: d.Correlation.String(), Got: other.Correlation.String()}
	}
	return nil
}

// DistanceTo returns the normalized Distance from d to other: positive
// when other is later. Both Dates must share a Correlation.
func (d Date) DistanceTo(other Date) (Distance, error) {
	if err := d.sameCorrelation("DistanceTo", other); err != nil {
		return Distance{}, err
	}
	return DistanceFromDays(other.LongCount.Days() - d.LongCount.Days()), nil
}

// DistanceBetween returns the normalized Distance from a to b. It fails
// with ErrInvalidCorrelation when a and b use different correlations.
func DistanceBetween(a, b Date) (Distance, error) {
	if err := a.sameCorrelation("DistanceBetween", b); err != nil {
		return Distance{}, err
	}
	return DistanceFromDays(b.LongCount.Days() - a.LongCount.Days()), nil
}

// Compare returns -1, 0 or +1 as d is before, the same day as, or after
// other. Dates under different correlations are not comparable.
func (d Date) Compare(other Date) (int, error) {
	if err := d.sameCorrelation("Compare", other); err != nil {
		return 0, err
	}
	return d.LongCount.Compare(other.LongCount), nil
}

// Equal reports whether d and other share a Correlation and name the same
// day. The calendar of Civil does not matter.
func (d Date) Equal(other Date) bool {
	return d.Correlation == other.Correlation &&
		d.Civil.Equal(other.Civil) &&
		d.LongCount.Equal(other.LongCount)
}

// Format renders d as "<long count> <tzolkin> / <haab>" with the Long
// Count written in format f.
func (d Date) Format(f LongCountFormat) string {
	return d.LongCount.Format(f) + " " + d.Tzolkin.String() + " / " + d.Haab.String()
}

// String renders d as "<long count> <tzolkin> / <haab>", for example
// "13.0.0.0.0 4-Ajaw / 3-K'ank'in" for 2012-12-21 under GMT584283.
func (d Date) String() string {
	return d.Format(FormatDefault)
}

// Redacted returns the same text as String.
func (d Date) Redacted() string {
	return d.String()
}

// TypeName returns "MayanDate".
func (d Date) TypeName() string {
	return "MayanDate"
}

// IsZero reports whether d holds the zero value. The zero Date is not
// valid: its Haab day is 0.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Validate checks every field on its own and then checks that LongCount,
// Tzolkin and Haab are the ones Correlation assigns to Civil. Fields that
// were derived under the other correlation yield a *CorrelationError.
func (d Date) Validate() error {
	c := rxmerr.NewCollector()
	for _, m := range []interface{ Validate() error }{d.Correlation, d.Civil, d.LongCount, d.Tzolkin, d.Haab} {
		if err := m.Validate(); err != nil {
			c.Append(err)
		}
	}
	if err := c.Err(); err != nil {
		return err
	}

	if d.derivedFrom(d.Correlation) {
		return nil
	}
	if other := d.Correlation.Other(); d.derivedFrom(other) {
		return &errors.CorrelationError{Op: "Validate", Want: d.Correlation.String(), Got: other.String()}
	}
	return &errors.ValidationError{
		Type:   "MayanDate",
		Reason: "fields do not match civil date " + d.Civil.String(),
		Value:  d.String(),
	}
}

func (d Date) derivedFrom(corr Correlation) bool {
	want := Converter{correlation: corr}.FromCivil(d.Civil)
	return d.LongCount == want.LongCount && d.Tzolkin == want.Tzolkin && d.Haab == want.Haab
}

// LogValue implements slog.LogValuer.
func (d Date) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("correlation", d.Correlation.String()),
		slog.Any("civil", d.Civil),
		slog.String("long_count", d.LongCount.Format(FormatIncludePiktun)),
		slog.String("tzolkin", d.Tzolkin.String()),
		slog.String("haab", d.Haab.String()),
	)
}

// dateWire is the JSON and YAML shape of a Date. On input only one of
// Civil and LongCount is required; the rest is derived and, when present,
// must agree.
type dateWire struct {
	Correlation Correlation `json:"correlation" yaml:"correlation"`
	Civil       *civil.Date `json:"civil,omitempty" yaml:"civil,omitempty"`
	LongCount   *LongCount  `json:"long_count,omitempty" yaml:"long_count,omitempty"`
	Tzolkin     *Tzolkin    `json:"tzolkin,omitempty" yaml:"tzolkin,omitempty"`
	Haab        *Haab       `json:"haab,omitempty" yaml:"haab,omitempty"`
}

func (d Date) wire() dateWire {
	return dateWire{
		Correlation: d.Correlation,
		Civil:       &d.Civil,
		LongCount:   &d.LongCount,
		Tzolkin:     &d.Tzolkin,
		Haab:        &d.Haab,
	}
}

func (w dateWire) date() (Date, error) {
	if err := w.Correlation.Validate(); err != nil {
		return Date{}, err
	}
	conv := Converter{correlation: w.Correlation}

	var d Date
	switch {
	case w.Civil != nil:
		d = conv.FromCivil(*w.Civil)
	case w.LongCount != nil:
		d = conv.FromLongCountValue(*w.LongCount)
	default:
		return Date{}, &errors.UnmarshalError{Type: "MayanDate", Reason: "civil or long_count is required"}
	}

	if w.LongCount != nil {
		d.LongCount = *w.LongCount
	}
	if w.Tzolkin != nil {
		d.Tzolkin = *w.Tzolkin
	}
	if w.Haab != nil {
		d.Haab = *w.Haab
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// MarshalJSON encodes d as an object with correlation, civil, long_count,
// tzolkin and haab keys.
func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(d.wire())
}

// UnmarshalJSON decodes the object written by MarshalJSON. Either civil or
// long_count may be omitted, and so may tzolkin and haab.
func (d *Date) UnmarshalJSON(data []byte) error {
	var w dateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "MayanDate", Data: data, Reason: err.Error()}
	}
	parsed, err := w.date()
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a mapping with the same keys as MarshalJSON.
func (d Date) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.wire(), nil
}

// UnmarshalYAML decodes the mapping written by MarshalYAML.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var w dateWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "MayanDate", Reason: err.Error()}
	}
	parsed, err := w.date()
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder as the array
// [correlation, civil, long count]. Tzolk'in and Haab are derived on
// decode.
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(d.Correlation)); err != nil {
		return err
	}
	if err := enc.Encode(d.Civil); err != nil {
		return err
	}
	return enc.Encode(d.LongCount)
}

// DecodeMsgpack implements msgpack.CustomDecoder for the layout written by
// EncodeMsgpack.
func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return &errors.UnmarshalError{Type: "MayanDate", Reason: err.Error()}
	}
	if n != 3 {
		return &errors.UnmarshalError{Type: "MayanDate", Reason: fmt.Sprintf("got %d fields, want 3", n)}
	}

	corr, err := dec.DecodeInt64()
	if err != nil {
		return &errors.UnmarshalError{Type: "MayanDate", Reason: err.Error()}
	}
	var w dateWire
	w.Correlation = Correlation(corr)
	w.Civil = new(civil.Date)
	w.LongCount = new(LongCount)
	if err := dec.Decode(w.Civil); err != nil {
		return err
	}
	if err := dec.Decode(w.LongCount); err != nil {
		return err
	}

	parsed, err := w.date()
	if err != nil {
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
