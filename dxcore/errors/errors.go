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

// Package errors provides the error types shared by every dxword package.
//
// Two families live here. The first is the enum family (ParseError,
// MarshalError, UnmarshalError, ValidationError), produced by the
// strongly typed enum-like values (Kind, Strategy, Form, Class, OnError)
// and by Validate methods on model types. The second is the domain family,
// produced by word construction, numeral decoding, conjugation and kana
// conversion:
//
//   - EmptyWordError
//     A word was constructed from zero writings.
//
//   - NotOkuriganaError
//     A stem/suffix split was requested but the writings do not share the
//     same trailing suffix, or the suffix is not the ending the caller
//     expected (for example a non-い adjective).
//
//   - InvalidNumeralError
//     A string does not decode as a well-formed numeral, or a value is out
//     of the encodable range.
//
//   - InvalidConjugationError
//     A (form, negative, polite) combination has no rule for the word.
//
//   - ConversionError
//     The kana converter met an unmappable substring under the Fail policy.
//
//   - InvalidWritingError
//     A Reading was requested explicitly for content that is not kana.
//
// All types are plain value carriers with stable messages prefixed by
// "dxword: ". Callers recognize them with errors.As:
//
//	var numErr *errors.InvalidNumeralError
//	if stderrors.As(err, &numErr) {
//	    // numErr.Value holds the offending input
//	}
//
// Every error in this package is deterministic: the operation that produced
// it is pure, so retrying with the same input yields the same error.
package errors

import (
	"strconv"
	"strings"
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Form",
// "Strategy"), and Value contains the exact string that could not be
// interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Form").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxword: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxword: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxword: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxword: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data contains the original raw payload and Reason a short human-readable
// description of what went wrong. The Data field is intentionally left out
// of the message; callers MAY log it separately.
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
//	"dxword: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxword: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails, and by
// combiners that reject a word sequence of the wrong arity or roles.
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
//	"dxword: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxword: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxword: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxword: invalid " + e.Type + ": " + e.Reason
}

// EmptyWordError is returned when a word-like value would end up with no
// writings at all.
type EmptyWordError struct {
	// Type is the logical name of the word being built (for example, "Word",
	// "Compound").
	Type string
}

// Error implements the error interface for EmptyWordError.
//
// The error message format is:
//
//	"dxword: empty {Type}: at least one writing is required"
func (e *EmptyWordError) Error() string {
	return "dxword: empty " + e.Type + ": at least one writing is required"
}

// NotOkuriganaError is returned when a word cannot be split into a stem and
// an inflectional suffix.
type NotOkuriganaError struct {
	// Word is the display form of the word being split.
	Word string

	// Count is the requested suffix length, in runes.
	Count int

	// Reason explains why the split was rejected.
	Reason string
}

// Error implements the error interface for NotOkuriganaError.
//
// The error message format is:
//
//	"dxword: not okurigana: {Word} (suffix of {Count}): {Reason}"
func (e *NotOkuriganaError) Error() string {
	return "dxword: not okurigana: " + e.Word + " (suffix of " + strconv.Itoa(e.Count) + "): " + e.Reason
}

// InvalidNumeralError is returned when a string is not a well-formed numeral
// or a value cannot be spelled.
type InvalidNumeralError struct {
	// Value is the offending input, rendered as text.
	Value string

	// Reason explains the rejection.
	Reason string
}

// Error implements the error interface for InvalidNumeralError.
//
// The error message format is:
//
//	"dxword: invalid numeral {Value}: {Reason}"
//
// where Value is quoted.
func (e *InvalidNumeralError) Error() string {
	return "dxword: invalid numeral " + strconv.Quote(e.Value) + ": " + e.Reason
}

// InvalidConjugationError is returned when no rule exists for the requested
// combination of form and options.
type InvalidConjugationError struct {
	// Type is the conjugating word type (for example, "Verb", "Adjective").
	Type string

	// Form is the canonical name of the requested form.
	Form string

	// Negative and Polite carry the requested options.
	Negative bool
	Polite   bool
}

// Error implements the error interface for InvalidConjugationError.
//
// The error message format is:
//
//	"dxword: no {Type} conjugation for {Form} [negative] [polite]"
func (e *InvalidConjugationError) Error() string {
	var b strings.Builder
	b.WriteString("dxword: no ")
	b.WriteString(e.Type)
	b.WriteString(" conjugation for ")
	b.WriteString(e.Form)
	if e.Negative {
		b.WriteString(" negative")
	}
	if e.Polite {
		b.WriteString(" polite")
	}
	return b.String()
}

// ConversionError is returned by the kana converter when a substring has no
// mapping and the Fail policy is in effect.
type ConversionError struct {
	// Pending is the unconverted remainder starting at the failing rune.
	Pending string

	// Input is the full string being converted.
	Input string
}

// Error implements the error interface for ConversionError.
//
// The error message format is:
//
//	"dxword: cannot convert {Pending} in {Input}"
//
// with both values quoted.
func (e *ConversionError) Error() string {
	return "dxword: cannot convert " + strconv.Quote(e.Pending) + " in " + strconv.Quote(e.Input)
}

// InvalidWritingError is returned when a writing of a specific kind is
// requested for content that does not classify as that kind.
type InvalidWritingError struct {
	// Kind is the requested kind (for example, "reading").
	Kind string

	// Value is the rejected content.
	Value string
}

// Error implements the error interface for InvalidWritingError.
//
// The error message format is:
//
//	"dxword: invalid {Kind} writing: {Value}"
//
// where Value is quoted.
func (e *InvalidWritingError) Error() string {
	return "dxword: invalid " + e.Kind + " writing: " + strconv.Quote(e.Value)
}
