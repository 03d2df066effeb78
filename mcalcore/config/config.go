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

// Package config holds the settings that select how civil dates are mapped
// to the Mayan calendars.
//
// A configuration document is small:
//
//	correlation: gmt-584285
//	calendar: gregorian
//
// Both keys are optional. A missing correlation means GMT 584283 and a
// missing calendar means the Reform calendar (Julian before 1582-10-15,
// Gregorian from then on).
package config

import (
	"encoding/json"
	"log/slog"

	"dirpx.dev/mcal/mcalcore/errors"
	"dirpx.dev/mcal/mcalcore/model"
	"dirpx.dev/mcal/mcalcore/model/civil"
	"dirpx.dev/mcal/mcalcore/model/maya"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Config selects the correlation constant and the calendar in which decoded
// civil dates are written.
type Config struct {
	Correlation maya.Correlation `json:"correlation" yaml:"correlation"`
	Calendar    civil.Calendar   `json:"calendar" yaml:"calendar"`
}

// Default returns the configuration used when none is given: GMT 584283
// and the Reform calendar. It equals the zero Config.
func Default() Config {
	return Config{Correlation: maya.GMT584283, Calendar: civil.Reform}
}

// Load parses a YAML document. Empty input yields Default.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := model.FromYAML(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadJSON parses a JSON document. Empty input yields Default.
func LoadJSON(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := model.FromJSON(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Converter returns a maya.Converter configured by c.
func (c Config) Converter() (maya.Converter, error) {
	return maya.NewConverter(c.Correlation, maya.WithCalendar(c.Calendar))
}

// String returns "correlation=<name> calendar=<name>".
func (c Config) String() string {
	return "correlation=" + c.Correlation.String() + " calendar=" + c.Calendar.String()
}

// Redacted returns the same text as String.
func (c Config) Redacted() string {
	return c.String()
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether c equals Default.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Validate reports every undefined field at once.
func (c Config) Validate() error {
	col := rxmerr.NewCollector()
	if err := c.Correlation.Validate(); err != nil {
		col.Append(err)
	}
	if err := c.Calendar.Validate(); err != nil {
		col.Append(err)
	}
	return col.Err()
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("correlation", c.Correlation.String()),
		slog.String("calendar", c.Calendar.String()),
	)
}

// MarshalJSON encodes c as {"correlation":"..","calendar":".."}.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes the object form. Missing keys keep their current
// values.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "Config", Data: data, Reason: err.Error()}
	}
	return c.Validate()
}

// MarshalYAML encodes c as a mapping with correlation and calendar keys.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return alias(c), nil
}

// UnmarshalYAML decodes the mapping form. Missing keys keep their current
// values.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type alias Config
	if err := node.Decode((*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "Config", Reason: err.Error()}
	}
	return c.Validate()
}

// Compile-time check that Config implements model.Model interface.
var _ model.Model = (*Config)(nil)
