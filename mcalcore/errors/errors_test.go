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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"correlation",
			&ParseError{Type: "Correlation", Value: "gmt-1"},
			"mcal: invalid Correlation value: gmt-1",
		},
		{
			"long count",
			&ParseError{Type: "LongCount", Value: "13.0.x.0.0"},
			"mcal: invalid LongCount value: 13.0.x.0.0",
		},
		{
			"empty value",
			&ParseError{Type: "Calendar", Value: ""},
			"mcal: invalid Calendar value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "DaySign", Value: 20},
			"mcal: cannot marshal invalid DaySign value: 20",
		},
		{
			"negative value",
			&MarshalError{Type: "Month", Value: -1},
			"mcal: cannot marshal invalid Month value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Calendar", Value: 42},
			"mcal: cannot marshal invalid Calendar value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Correlation", Data: []byte{}, Reason: "empty data"},
			"mcal: cannot unmarshal Correlation: empty data",
		},
		{
			"json syntax error",
			&UnmarshalError{Type: "Date", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"mcal: cannot unmarshal Date: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "LongCount", Field: "Winal", Reason: "must be in [0,17]", Value: 18},
			"mcal: invalid LongCount.Winal: must be in [0,17]",
		},
		{
			"without field",
			&ValidationError{Type: "Correlation", Reason: "invalid Correlation value"},
			"mcal: invalid Correlation: invalid Correlation value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			"digit count",
			&DigitCountError{Got: 4},
			ErrInvalidDigitCount,
			"mcal: invalid Long Count digit count: got 4, want 5 or 6",
		},
		{
			"distance length",
			&DistanceLengthError{Got: 7},
			ErrInvalidDistanceLength,
			"mcal: invalid Distance Number length: got 7, want at most 6",
		},
		{
			"correlation with op",
			&CorrelationError{Op: "Compare", Want: "gmt-584283", Got: "gmt-584285"},
			ErrInvalidCorrelation,
			"mcal: invalid correlation: Compare: want gmt-584283, got gmt-584285",
		},
		{
			"correlation without op",
			&CorrelationError{Want: "gmt-584285", Got: "gmt-584283"},
			ErrInvalidCorrelation,
			"mcal: invalid correlation: want gmt-584285, got gmt-584283",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !stderrors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

func TestDomainErrors_DoNotCrossMatch(t *testing.T) {
	if stderrors.Is(&DigitCountError{Got: 3}, ErrInvalidCorrelation) {
		t.Error("DigitCountError must not match ErrInvalidCorrelation")
	}
	if stderrors.Is(&CorrelationError{}, ErrInvalidDigitCount) {
		t.Error("CorrelationError must not match ErrInvalidDigitCount")
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*DigitCountError)(nil)
	var _ error = (*DistanceLengthError)(nil)
	var _ error = (*CorrelationError)(nil)
}
