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

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model"
	"gopkg.in/yaml.v3"
)

// Distance is a Distance Number: an interval expressed in Long Count units.
//
// Inscriptions record Distance Numbers least significant first (kin,
// winal, tun, ...), and so do NewDistance and Components. Components are
// not range-checked and may be negative; a kin of 25 simply means 25 days.
// Only the total, Days, matters for arithmetic.
type Distance struct {
	Kin    int
	Winal  int
	Tun    int
	Katun  int
	Baktun int
	Piktun int
}

// NewDistance builds a Distance from up to six components, kin first.
// Missing components are zero. More than six components yield a
// *DistanceLengthError.
func NewDistance(components ...int) (Distance, error) {
	if len(components) > 6 {
		return Distance{}, &errors.DistanceLengthError{Got: len(components)}
	}
	var c [6]int
	copy(c[:], components)
	return Distance{Kin: c[0], Winal: c[1], Tun: c[2], Katun: c[3], Baktun: c[4], Piktun: c[5]}, nil
}

// DistanceFromDays returns the normalized Distance spanning days. For a
// negative count every component is negative (or zero), so that
// DistanceFromDays(-n) == DistanceFromDays(n).Neg().
func DistanceFromDays(days int) Distance {
	// Truncated division keeps every component on the sign of days and
	// never negates, so math.MinInt is handled too.
	var d [6]int
	rest := days
	for i, c := range coefficients {
		d[i] = rest / c
		rest -= d[i] * c
	}
	return Distance{Piktun: d[0], Baktun: d[1], Katun: d[2], Tun: d[3], Winal: d[4], Kin: d[5]}
}

// Days returns the total number of days: the sum of each component times
// its coefficient.
func (d Distance) Days() int {
	return d.Kin*KinDays + d.Winal*WinalDays + d.Tun*TunDays +
		d.Katun*KatunDays + d.Baktun*BaktunDays + d.Piktun*PiktunDays
}

// Components returns the six components, kin first.
func (d Distance) Components() []int {
	return []int{d.Kin, d.Winal, d.Tun, d.Katun, d.Baktun, d.Piktun}
}

// Neg returns the Distance with every component negated.
func (d Distance) Neg() Distance {
	return Distance{Kin: -d.Kin, Winal: -d.Winal, Tun: -d.Tun, Katun: -d.Katun, Baktun: -d.Baktun, Piktun: -d.Piktun}
}

// Normalize returns the normalized Distance spanning the same days; for
// example 25 kin becomes 1 winal 5 kin.
func (d Distance) Normalize() Distance {
	return DistanceFromDays(d.Days())
}

// String renders d most significant first as piktun.baktun.katun.tun.winal.kin,
// without the baktun display rule of LongCount.
func (d Distance) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d.%d", d.Piktun, d.Baktun, d.Katun, d.Tun, d.Winal, d.Kin)
}

// Redacted returns the same text as String.
func (d Distance) Redacted() string {
	return d.String()
}

// TypeName returns "Distance".
func (d Distance) TypeName() string {
	return "Distance"
}

// IsZero reports whether all components are zero.
func (d Distance) IsZero() bool {
	return d == Distance{}
}

// Validate always returns nil: every combination of components is a
// meaningful Distance Number.
func (d Distance) Validate() error {
	return nil
}

// MarshalJSON encodes d as an array of six components, kin first.
func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Components())
}

// UnmarshalJSON accepts an array of at most six components, kin first.
func (d *Distance) UnmarshalJSON(data []byte) error {
	var c []int
	if err := json.Unmarshal(data, &c); err != nil {
		return &errors.UnmarshalError{Type: "Distance", Data: data, Reason: err.Error()}
	}
	parsed, err := NewDistance(c...)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a sequence of six components, kin first.
func (d Distance) MarshalYAML() (any, error) {
	return d.Components(), nil
}

// UnmarshalYAML accepts a sequence of at most six components, kin first.
func (d *Distance) UnmarshalYAML(node *yaml.Node) error {
	var c []int
	if err := node.Decode(&c); err != nil {
		return &errors.UnmarshalError{Type: "Distance", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewDistance(c...)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that Distance implements model.Model interface.
var _ model.Model = (*Distance)(nil)
