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

// Package model defines the contracts that dxword value types implement so
// that they can be validated, serialized, logged and identified uniformly.
//
// Writings, words and the enum-like types (Kind, Strategy, Form, Class)
// implement the Model interface or its constituent parts. Generic helpers in
// this package (ValidateAll, MustValidate, ToJSON, ToYAML, FromJSON,
// FromYAML) rely on those contracts and fail at compile time when applied to
// types that do not satisfy them.
//
// Model types in dxword are immutable values once constructed. They are safe
// for concurrent read access. The only mutating methods are the Unmarshal
// family, which MUST be called on a fresh zero value and never on a value
// that is already shared.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxword value types.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines types that can check their own invariants.
//
// Validate MUST return nil for every value produced by a constructor of the
// type. Non-nil results are expected only for values built by numeric casts
// or deserialization of untrusted input.
type Validatable interface {
	Validate() error
}

// Serializable defines types with round-trippable JSON and YAML forms.
//
// Implementations MUST satisfy: Unmarshal(Marshal(x)) == x for every valid x.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines types that can be rendered for humans and logs.
//
// Word content carries no secrets, so Redacted usually matches String, but
// callers that log arbitrary user input SHOULD prefer Redacted.
type Loggable interface {
	Redacted() string

	String() string
}

// Identifiable defines types that report their logical type name.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable defines types that can report whether they hold their zero
// value.
type ZeroCheckable interface {
	IsZero() bool
}

// Checked is the subset of Model needed to validate a value and describe it
// in aggregated errors. Configuration records such as counter definitions
// implement only this subset.
type Checked interface {
	Validatable
	Identifiable
}
