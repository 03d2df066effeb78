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

package maya_test

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"testing"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model/maya"
	"gopkg.in/yaml.v3"
)

func TestNewDistance(t *testing.T) {
	tests := []struct {
		name       string
		components []int
		want       maya.Distance
		wantDays   int
	}{
		{"empty", nil, maya.Distance{}, 0},
		{"kin only", []int{1}, maya.Distance{Kin: 1}, 1},
		{"overflowing kin", []int{25}, maya.Distance{Kin: 25}, 25},
		{"kin and winal", []int{5, 1}, maya.Distance{Kin: 5, Winal: 1}, 25},
		{"all six", []int{1, 1, 1, 1, 1, 1}, maya.Distance{Kin: 1, Winal: 1, Tun: 1, Katun: 1, Baktun: 1, Piktun: 1}, 2023581},
		{"negative", []int{0, -2}, maya.Distance{Winal: -2}, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := maya.NewDistance(tt.components...)
			if err != nil {
				t.Fatalf("NewDistance(%v) error = %v", tt.components, err)
			}
			if got != tt.want {
				t.Errorf("NewDistance(%v) = %+v, want %+v", tt.components, got, tt.want)
			}
			if d := got.Days(); d != tt.wantDays {
				t.Errorf("Days() = %d, want %d", d, tt.wantDays)
			}
		})
	}

	_, err := maya.NewDistance(1, 2, 3, 4, 5, 6, 7)
	if !stderrors.Is(err, errors.ErrInvalidDistanceLength) {
		t.Errorf("NewDistance with 7 components error = %v, want ErrInvalidDistanceLength", err)
	}
}

func TestDistanceFromDays(t *testing.T) {
	tests := []struct {
		days int
		want maya.Distance
	}{
		{0, maya.Distance{}},
		{25, maya.Distance{Kin: 5, Winal: 1}},
		{-25, maya.Distance{Kin: -5, Winal: -1}},
		{1872000, maya.Distance{Piktun: 1}},
		{-1, maya.Distance{Kin: -1}},
	}

	for _, tt := range tests {
		got := maya.DistanceFromDays(tt.days)
		if got != tt.want {
			t.Errorf("DistanceFromDays(%d) = %+v, want %+v", tt.days, got, tt.want)
		}
		if got.Days() != tt.days {
			t.Errorf("DistanceFromDays(%d).Days() = %d", tt.days, got.Days())
		}
	}
}

func TestDistanceFromDays_Extremes(t *testing.T) {
	for _, days := range []int{math.MinInt, math.MinInt + 1, math.MaxInt, -maya.PiktunDays - 1} {
		got := maya.DistanceFromDays(days)
		if got.Days() != days {
			t.Errorf("DistanceFromDays(%d).Days() = %d", days, got.Days())
		}
		for _, c := range got.Components() {
			if (days < 0 && c > 0) || (days > 0 && c < 0) {
				t.Errorf("DistanceFromDays(%d) = %+v has a component of the wrong sign", days, got)
				break
			}
		}
	}

	if got, want := maya.DistanceFromDays(-maya.PiktunDays-1), maya.DistanceFromDays(maya.PiktunDays+1).Neg(); got != want {
		t.Errorf("DistanceFromDays(-n) = %+v, want %+v", got, want)
	}
	if got, want := maya.DistanceFromDays(math.MinInt+1), maya.DistanceFromDays(math.MaxInt).Neg(); got != want {
		t.Errorf("DistanceFromDays(MinInt+1) = %+v, want %+v", got, want)
	}
}

func TestDistance_NormalizeAndNeg(t *testing.T) {
	d := maya.Distance{Kin: 25}
	if got, want := d.Normalize(), (maya.Distance{Kin: 5, Winal: 1}); got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if got := d.Neg().Days(); got != -25 {
		t.Errorf("Neg().Days() = %d, want -25", got)
	}
	if got, want := d.String(), "0.0.0.0.0.25"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !(maya.Distance{}).IsZero() || d.IsZero() {
		t.Error("IsZero() mismatch")
	}
	if d.Validate() != nil {
		t.Error("Validate() should accept every Distance")
	}
}

func TestDistance_Serialization(t *testing.T) {
	d := maya.Distance{Kin: 5, Winal: 1, Baktun: 2}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal error = %v", err)
	}
	if string(data) != "[5,1,0,0,2,0]" {
		t.Errorf("json.Marshal = %s, want [5,1,0,0,2,0]", data)
	}

	var fromJSON maya.Distance
	if err := json.Unmarshal([]byte("[5,1,0,0,2]"), &fromJSON); err != nil || fromJSON != d {
		t.Errorf("json.Unmarshal = %+v, %v", fromJSON, err)
	}
	if err := json.Unmarshal([]byte("[1,2,3,4,5,6,7]"), &fromJSON); !stderrors.Is(err, errors.ErrInvalidDistanceLength) {
		t.Errorf("json.Unmarshal too long error = %v", err)
	}

	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("yaml.Marshal error = %v", err)
	}
	var fromYAML maya.Distance
	if err := yaml.Unmarshal(out, &fromYAML); err != nil || fromYAML != d {
		t.Errorf("yaml round trip = %+v, %v", fromYAML, err)
	}
}
