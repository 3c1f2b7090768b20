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

package kana

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// OnError selects what a conversion does with input it has no mapping for.
type OnError int

const (
	// Fail stops the conversion with a *ConversionError.
	Fail OnError = iota

	// Ignore copies the unmapped rune through unchanged and carries on.
	Ignore
)

var _ model.Model = (*OnError)(nil)

// String constants for OnError values.
const (
	FailStr   = "fail"
	IgnoreStr = "ignore"
)

// String returns the canonical name, or "unknown" for undefined values.
func (o OnError) String() string {
	switch o {
	case Fail:
		return FailStr
	case Ignore:
		return IgnoreStr
	default:
		return "unknown"
	}
}

// ParseOnError converts a policy name, in any letter case, into an OnError.
func ParseOnError(str string) (OnError, error) {
	switch strings.ToLower(str) {
	case FailStr:
		return Fail, nil
	case IgnoreStr:
		return Ignore, nil
	default:
		return Fail, &errors.ParseError{Type: "OnError", Value: str}
	}
}

// Valid reports whether o is a defined policy.
func (o OnError) Valid() bool {
	return o == Fail || o == Ignore
}

// MarshalJSON encodes o as its canonical name.
func (o OnError) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "OnError", Value: int(o)}
	}
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON accepts a policy name or its declaration index.
func (o *OnError) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "OnError", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "OnError", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseOnError(str)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "OnError", Data: data, Reason: err.Error()}
	}
	if !OnError(i).Valid() {
		return &errors.UnmarshalError{Type: "OnError", Data: data, Reason: "invalid numeric value"}
	}
	*o = OnError(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o OnError) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "OnError", Value: int(o)}
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OnError) UnmarshalText(text []byte) error {
	parsed, err := ParseOnError(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o OnError) MarshalYAML() (any, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "OnError", Value: int(o)}
	}
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OnError) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "OnError", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseOnError(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o OnError) TypeName() string { return "OnError" }

func (o OnError) Redacted() string { return o.String() }

// IsZero reports whether o is Fail.
func (o OnError) IsZero() bool { return o == Fail }

// Equal reports whether other is the same policy, by value or pointer.
func (o OnError) Equal(other any) bool {
	switch v := other.(type) {
	case OnError:
		return o == v
	case *OnError:
		return v != nil && o == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError for undefined values.
func (o OnError) Validate() error {
	if !o.Valid() {
		return &errors.ValidationError{Type: "OnError", Reason: "undefined value", Value: int(o)}
	}
	return nil
}
