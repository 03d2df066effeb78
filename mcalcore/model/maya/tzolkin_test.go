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
	"testing"

	"dirpx.dev/mcal/mcalcore/model/maya"
	"gopkg.in/yaml.v3"
)

func TestDaySignNames(t *testing.T) {
	names := maya.DaySignNames()
	if len(names) != 20 {
		t.Fatalf("len(DaySignNames()) = %d, want 20", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate day sign %q", n)
		}
		seen[n] = true
	}
	if names[0] != "Imix" || names[19] != "Ajaw" {
		t.Errorf("first/last = %q/%q, want Imix/Ajaw", names[0], names[19])
	}

	names[0] = "changed"
	if maya.DaySignNames()[0] != "Imix" {
		t.Error("DaySignNames() must return a copy")
	}
}

func TestParseDaySign(t *testing.T) {
	tests := []struct {
		input   string
		want    maya.DaySign
		wantErr bool
	}{
		{"Imix", maya.Imix, false},
		{"Ak'bal", maya.Akbal, false},
		{"akbal", maya.Akbal, false},
		{"ETZ'NAB", maya.Etznab, false},
		{" Ajaw ", maya.Ajaw, false},
		{"Manik", maya.Manik, false},
		{"Ahau", maya.Imix, true},
		{"", maya.Imix, true},
	}

	for _, tt := range tests {
		got, err := maya.ParseDaySign(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDaySign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDaySign(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDaySign_StringValid(t *testing.T) {
	for i, name := range maya.DaySignNames() {
		s := maya.DaySign(i)
		if !s.Valid() || s.String() != name {
			t.Errorf("DaySign(%d) = %q (valid %v), want %q", i, s.String(), s.Valid(), name)
		}
	}
	for _, s := range []maya.DaySign{-1, 20} {
		if s.Valid() || s.String() != "unknown" || s.Validate() == nil {
			t.Errorf("DaySign(%d) should be invalid", s)
		}
		if _, err := json.Marshal(s); err == nil {
			t.Errorf("json.Marshal(DaySign(%d)) should fail", s)
		}
	}
}

func TestTzolkinFromDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "4-Ajaw"},
		{1, "5-Imix"},
		{9, "0-Muluk"},
		{25, "3-Chickchan"},
		{-1, "3-Kawak"},
		{1386478, "6-Etz'nab"},
		{1714878, "0-Etz'nab"},
		{1867262, "11-I'k"},
		{1872000, "4-Ajaw"},
	}

	for _, tt := range tests {
		if got := maya.TzolkinFromDays(tt.days).String(); got != tt.want {
			t.Errorf("TzolkinFromDays(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestTzolkin_Period(t *testing.T) {
	for days := -600; days <= 600; days++ {
		a := maya.TzolkinFromDays(days)
		b := maya.TzolkinFromDays(days + maya.TzolkinDays)
		if a != b {
			t.Fatalf("TzolkinFromDays(%d) = %v, TzolkinFromDays(%d) = %v", days, a, days+maya.TzolkinDays, b)
		}
		if err := a.Validate(); err != nil {
			t.Fatalf("TzolkinFromDays(%d) invalid: %v", days, err)
		}
	}

	seen := make(map[maya.Tzolkin]bool)
	for days := 0; days < maya.TzolkinDays; days++ {
		seen[maya.TzolkinFromDays(days)] = true
	}
	if len(seen) != maya.TzolkinDays {
		t.Errorf("distinct positions in one cycle = %d, want %d", len(seen), maya.TzolkinDays)
	}
}

func TestTzolkin_Traditional(t *testing.T) {
	if got := (maya.Tzolkin{Number: 0, Sign: maya.Chuwen}).Traditional(); got != 13 {
		t.Errorf("Traditional() of 0 = %d, want 13", got)
	}
	if got := (maya.Tzolkin{Number: 4, Sign: maya.Ajaw}).Traditional(); got != 4 {
		t.Errorf("Traditional() of 4 = %d, want 4", got)
	}
}

func TestParseTzolkin(t *testing.T) {
	tests := []struct {
		input   string
		want    maya.Tzolkin
		wantErr bool
	}{
		{"4-Ajaw", maya.Tzolkin{Number: 4, Sign: maya.Ajaw}, false},
		{"0-Chuwen", maya.Tzolkin{Number: 0, Sign: maya.Chuwen}, false},
		{"13-Chuwen", maya.Tzolkin{Number: 0, Sign: maya.Chuwen}, false},
		{"6-etznab", maya.Tzolkin{Number: 6, Sign: maya.Etznab}, false},
		{"14-Ajaw", maya.Tzolkin{}, true},
		{"4 Ajaw", maya.Tzolkin{}, true},
		{"x-Ajaw", maya.Tzolkin{}, true},
		{"4-Nothing", maya.Tzolkin{}, true},
	}

	for _, tt := range tests {
		got, err := maya.ParseTzolkin(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTzolkin(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTzolkin(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestTzolkin_Serialization(t *testing.T) {
	tz := maya.Tzolkin{Number: 11, Sign: maya.Ik}

	data, err := json.Marshal(tz)
	if err != nil {
		t.Fatalf("json.Marshal error = %v", err)
	}
	if string(data) != `"11-I'k"` {
		t.Errorf("json.Marshal = %s, want \"11-I'k\"", data)
	}
	var fromJSON maya.Tzolkin
	if err := json.Unmarshal(data, &fromJSON); err != nil || fromJSON != tz {
		t.Errorf("json round trip = %+v, %v", fromJSON, err)
	}

	out, err := yaml.Marshal(tz)
	if err != nil {
		t.Fatalf("yaml.Marshal error = %v", err)
	}
	var fromYAML maya.Tzolkin
	if err := yaml.Unmarshal(out, &fromYAML); err != nil || fromYAML != tz {
		t.Errorf("yaml round trip = %+v, %v", fromYAML, err)
	}

	if _, err := json.Marshal(maya.Tzolkin{Number: 13}); err == nil {
		t.Error("json.Marshal of number 13 should fail")
	}
}
