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

// Package errors provides the error types shared by the mcal model packages.
//
// Two families of errors live here.
//
// The first family are plain value carriers used when parsing, marshaling,
// unmarshaling and validating model values (calendars, correlations, day
// signs, Long Counts and so on). They have stable message formats and are
// meant to be recognized with errors.As.
//
//   - ParseError
//     Returned when a textual value cannot be interpreted (for example an
//     unknown correlation name or a malformed Long Count "13.0.0.0.x").
//
//   - MarshalError
//     Returned when an enum-like value outside its defined constants is
//     marshaled.
//
//   - UnmarshalError
//     Returned when JSON, YAML, text or MessagePack input cannot be decoded.
//
//   - ValidationError
//     Returned by Validate methods to report a violated invariant.
//
// The second family describes domain failures of calendar computations. Each
// error type matches a sentinel via errors.Is, so callers can branch on the
// kind of failure without caring about the carried details:
//
//   - DigitCountError          matches ErrInvalidDigitCount
//   - DistanceLengthError      matches ErrInvalidDistanceLength
//   - CorrelationError         matches ErrInvalidCorrelation
//
// # Usage
//
//	cd, err := conv.FromLongCount(digits)
//	if errors.Is(err, mcalerrors.ErrInvalidDigitCount) {
//	    // ask for 5 or 6 digits
//	}
package errors

import (
	stderrors "errors"
	"strconv"
)

// Sentinels for domain failures. Use errors.Is to test for them.
var (
	// ErrInvalidDigitCount reports a Long Count digit list whose length is
	// neither 5 (baktun..kin) nor 6 (piktun..kin).
	ErrInvalidDigitCount = stderrors.New("mcal: invalid Long Count digit count")

	// ErrInvalidDistanceLength reports a Distance Number list with more than
	// six components.
	ErrInvalidDistanceLength = stderrors.New("mcal: invalid Distance Number length")

	// ErrInvalidCorrelation reports an operation mixing values derived under
	// two different correlation constants.
	ErrInvalidCorrelation = stderrors.New("mcal: invalid correlation")
)

// ParseError is returned when parsing a string into a typed value fails.
//
// Type identifies the logical type being parsed (for example, "Correlation",
// "LongCount", "Date"), and Value contains the exact string that could not be
// interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Calendar").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"mcal: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "mcal: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling an enum-like value that does not
// correspond to any defined constant.
//
// In practice a MarshalError points at a programming error, such as a
// numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "DaySign").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"mcal: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "mcal: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when decoding input into a typed value fails.
//
// Data holds the raw payload when it is available. It is not part of the
// formatted message so logs stay short.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"mcal: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "mcal: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a model value violates one of its
// invariants.
//
// Field names the offending field and may be empty when the failure concerns
// the value as a whole. Value optionally carries the offending value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"mcal: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"mcal: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "mcal: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "mcal: invalid " + e.Type + ": " + e.Reason
}

// DigitCountError is returned when a Long Count digit list has a length
// other than 5 or 6.
type DigitCountError struct {
	// Got is the length of the rejected list.
	Got int
}

// Error implements the error interface for DigitCountError.
//
// The error message format is:
//
//	"mcal: invalid Long Count digit count: got {Got}, want 5 or 6"
func (e *DigitCountError) Error() string {
	return ErrInvalidDigitCount.Error() + ": got " + strconv.Itoa(e.Got) + ", want 5 or 6"
}

// Is reports whether target is ErrInvalidDigitCount.
func (e *DigitCountError) Is(target error) bool {
	return target == ErrInvalidDigitCount
}

// DistanceLengthError is returned when a Distance Number list has more than
// six components.
type DistanceLengthError struct {
	// Got is the length of the rejected list.
	Got int
}

// Error implements the error interface for DistanceLengthError.
//
// The error message format is:
//
//	"mcal: invalid Distance Number length: got {Got}, want at most 6"
func (e *DistanceLengthError) Error() string {
	return ErrInvalidDistanceLength.Error() + ": got " + strconv.Itoa(e.Got) + ", want at most 6"
}

// Is reports whether target is ErrInvalidDistanceLength.
func (e *DistanceLengthError) Is(target error) bool {
	return target == ErrInvalidDistanceLength
}

// CorrelationError is returned when two values derived under different
// correlation constants meet in one operation.
//
// Want and Got hold the textual names of the correlations involved (for
// example "gmt-584283" and "gmt-584285").
type CorrelationError struct {
	// Op names the operation that detected the mismatch (for example "Compare").
	Op string

	// Want is the correlation the operation was bound to.
	Want string

	// Got is the conflicting correlation.
	Got string
}

// Error implements the error interface for CorrelationError.
//
// The error message format is:
//
//	"mcal: invalid correlation: {Op}: want {Want}, got {Got}"
func (e *CorrelationError) Error() string {
	msg := ErrInvalidCorrelation.Error() + ": "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	return msg + "want " + e.Want + ", got " + e.Got
}

// Is reports whether target is ErrInvalidCorrelation.
func (e *CorrelationError) Is(target error) bool {
	return target == ErrInvalidCorrelation
}
