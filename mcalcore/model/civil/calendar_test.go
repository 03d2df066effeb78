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
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseCalendar(t *testing.T) {
	tests := []struct {
		in      string
		want    Calendar
		wantErr bool
	}{
		{"reform", Reform, false},
		{"Reform", Reform, false},
		{"JULIAN", Julian, false},
		{"gregorian", Gregorian, false},
		{"Gregorian", Gregorian, false},
		{"", Reform, true},
		{"hebrew", Reform, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCalendar(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCalendar(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCalendar(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCalendar_StringValid(t *testing.T) {
	tests := []struct {
		c         Calendar
		want      string
		wantValid bool
	}{
		{Reform, "reform", true},
		{Julian, "julian", true},
		{Gregorian, "gregorian", true},
		{Calendar(3), "unknown", false},
		{Calendar(-1), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.c.Valid(); got != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", got, tt.wantValid)
			}
			if (tt.c.Validate() == nil) != tt.wantValid {
				t.Errorf("Validate() = %v, want valid %v", tt.c.Validate(), tt.wantValid)
			}
		})
	}
}

func TestCalendar_ModelMethods(t *testing.T) {
	if got := Julian.TypeName(); got != "Calendar" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := Julian.Redacted(); got != "julian" {
		t.Errorf("Redacted() = %q", got)
	}
	if !Reform.IsZero() || Julian.IsZero() {
		t.Error("IsZero() mismatch")
	}
	g := Gregorian
	if !Gregorian.Equal(g) || !Gregorian.Equal(&g) || Gregorian.Equal(Julian) || Gregorian.Equal("gregorian") {
		t.Error("Equal() mismatch")
	}
	var nilCal *Calendar
	if Gregorian.Equal(nilCal) {
		t.Error("Equal(nil pointer) = true")
	}
}

func TestCalendar_JSON(t *testing.T) {
	data, err := json.Marshal(Gregorian)
	if err != nil || string(data) != `"gregorian"` {
		t.Fatalf("Marshal() = %s, %v", data, err)
	}
	if _, err := json.Marshal(Calendar(7)); err == nil {
		t.Error("Marshal(invalid) should fail")
	}

	tests := []struct {
		in      string
		want    Calendar
		wantErr bool
	}{
		{`"julian"`, Julian, false},
		{`2`, Gregorian, false},
		{`0`, Reform, false},
		{`5`, Reform, true},
		{`"maya"`, Reform, true},
		{`true`, Reform, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Calendar
			err := json.Unmarshal([]byte(tt.in), &c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && c != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, c, tt.want)
			}
		})
	}
}

func TestCalendar_YAMLAndText(t *testing.T) {
	data, err := yaml.Marshal(Julian)
	if err != nil || string(data) != "julian\n" {
		t.Fatalf("yaml.Marshal() = %q, %v", data, err)
	}
	var c Calendar
	if err := yaml.Unmarshal([]byte("GREGORIAN"), &c); err != nil || c != Gregorian {
		t.Errorf("yaml.Unmarshal() = %v, %v", c, err)
	}
	if err := yaml.Unmarshal([]byte("nope"), &c); err == nil {
		t.Error("yaml.Unmarshal(nope) should fail")
	}

	text, err := Reform.MarshalText()
	if err != nil || string(text) != "reform" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if err := c.UnmarshalText([]byte("julian")); err != nil || c != Julian {
		t.Errorf("UnmarshalText() = %v, %v", c, err)
	}
	if _, err := Calendar(4).MarshalText(); err == nil {
		t.Error("MarshalText(invalid) should fail")
	}
}
