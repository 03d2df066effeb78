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

package clock

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	want := time.Date(2012, time.December, 21, 12, 0, 0, 0, time.UTC)
	c := NewFixed(want)
	for i := 0; i < 3; i++ {
		if got := c.Now(); !got.Equal(want) {
			t.Fatalf("Now() = %v, want %v", got, want)
		}
	}
}

func TestFuncClock(t *testing.T) {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	c := NewFunc(func() time.Time {
		calls++
		return base.AddDate(0, 0, calls)
	})
	if got := c.Now(); got.Day() != 2 {
		t.Errorf("first Now() = %v", got)
	}
	if got := c.Now(); got.Day() != 3 {
		t.Errorf("second Now() = %v", got)
	}
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := NewReal().Now()
	if got.Before(before) {
		t.Errorf("Now() = %v is before %v", got, before)
	}
}
