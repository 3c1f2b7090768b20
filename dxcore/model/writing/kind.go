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

package writing

import (
	"encoding/json"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind classifies a Writing by its content.
//
// Classification is structural: a non-empty string made only of kana is a
// Reading, everything else (kanji, digits, Latin, mixed or empty content) is
// Generic. Two writings with the same text always have the same Kind.
type Kind int

const (
	// Generic is any writing that is not a pure-kana reading, for example
	// 食べる, 3匹 or 千二百.
	Generic Kind = iota

	// Reading is a phonetic writing made only of hiragana and katakana,
	// for example たべる or ズボン.
	Reading
)

// Compile-time check that Kind implements model.Model interface.
var _ model.Model = (*Kind)(nil)

// String constants for Kind values used in serialization and parsing.
const (
	GenericStr = "generic"
	ReadingStr = "reading"
)

// String returns the canonical string representation of the Kind value, or
// "unknown" for values outside the defined constants.
func (k Kind) String() string {
	switch k {
	case Generic:
		return GenericStr
	case Reading:
		return ReadingStr
	default:
		return "unknown"
	}
}

// ParseKind converts a textual representation into a Kind value.
//
// Accepted inputs are the canonical lowercase names and their CamelCase and
// uppercase variants. Any other input returns a *ParseError.
func ParseKind(str string) (Kind, error) {
	switch str {
	case GenericStr, "Generic", "GENERIC":
		return Generic, nil
	case ReadingStr, "Reading", "READING":
		return Reading, nil
	default:
		return Generic, &errors.ParseError{Type: "Kind", Value: str}
	}
}

// Valid reports whether the Kind value is one of the defined constants.
func (k Kind) Valid() bool {
	return k == Generic || k == Reading
}

// MarshalJSON implements json.Marshaler for Kind.
//
// A valid Kind is serialized as its canonical string. An invalid value
// returns a *MarshalError.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Kind.
//
// Both the string form ("reading") and the numeric form (1) are accepted.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(str)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	*k = Kind(i)
	if !k.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Kind.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Kind.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Kind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TypeName returns "Kind".
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string representation as String().
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind is Generic. Generic is a valid Kind.
func (k Kind) IsZero() bool {
	return k == Generic
}

// Equal reports whether other is a Kind or *Kind holding the same constant.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate returns a *MarshalError if the Kind is not a defined constant.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return nil
}
