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

package word

import (
	"encoding/json"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Strategy names a combine strategy so that it can be selected from
// configuration, most notably the counter definition tables.
//
// The four strategies differ only in how readings are merged:
//
//  1. DefaultStrategy concatenates kind-preserving pairs with no sound change.
//  2. NumberStrategy substitutes whole-value exception readings (時, 月, 人).
//  3. TsuStrategy takes readings only from the exception table (つ).
//  4. StandardStrategy applies the gemination and voicing rules (本, 匹, 分).
type Strategy int

const (
	// DefaultStrategy selects DefaultCombine.
	DefaultStrategy Strategy = iota

	// NumberStrategy selects NumberCombine.
	NumberStrategy

	// TsuStrategy selects TsuCombine.
	TsuStrategy

	// StandardStrategy selects StandardCombine.
	StandardStrategy
)

// Compile-time check that Strategy implements model.Model interface.
var _ model.Model = (*Strategy)(nil)

// String constants for Strategy values used in serialization, parsing,
// and counter definition files. Changing any of these strings is a breaking
// change for definition files.
const (
	DefaultStrategyStr  = "default"
	NumberStrategyStr   = "number"
	TsuStrategyStr      = "tsu"
	StandardStrategyStr = "standard"
)

// String returns the canonical string representation of the Strategy value.
//
// If the Strategy value is not one of the defined constants, String returns
// "unknown".
func (s Strategy) String() string {
	switch s {
	case DefaultStrategy:
		return DefaultStrategyStr
	case NumberStrategy:
		return NumberStrategyStr
	case TsuStrategy:
		return TsuStrategyStr
	case StandardStrategy:
		return StandardStrategyStr
	default:
		return "unknown"
	}
}

// ParseStrategy converts a textual representation into a Strategy value.
//
// Examples of accepted inputs:
//
//	"standard", "Standard", "STANDARD" -> StandardStrategy
//	"tsu", "Tsu", "TSU"                -> TsuStrategy
//
// If the input string does not match any known Strategy value, ParseStrategy
// returns a non-nil *ParseError. In that case the returned Strategy MUST NOT
// be used; only the error is meaningful.
func ParseStrategy(str string) (Strategy, error) {
	switch str {
	case DefaultStrategyStr, "Default", "DEFAULT":
		return DefaultStrategy, nil
	case NumberStrategyStr, "Number", "NUMBER":
		return NumberStrategy, nil
	case TsuStrategyStr, "Tsu", "TSU":
		return TsuStrategy, nil
	case StandardStrategyStr, "Standard", "STANDARD":
		return StandardStrategy, nil
	default:
		return DefaultStrategy, &errors.ParseError{Type: "Strategy", Value: str}
	}
}

// Valid reports whether the Strategy value is one of the defined constants.
func (s Strategy) Valid() bool {
	return s >= DefaultStrategy && s <= StandardStrategy
}

// Combiner returns the combiner for s configured with exceptions. The
// exceptions are ignored by DefaultStrategy.
func (s Strategy) Combiner(exceptions map[int64][]string) (Combiner, error) {
	switch s {
	case DefaultStrategy:
		return DefaultCombine{}, nil
	case NumberStrategy:
		return NumberCombine{Exceptions: exceptions}, nil
	case TsuStrategy:
		return TsuCombine{Exceptions: exceptions}, nil
	case StandardStrategy:
		return StandardCombine{Exceptions: exceptions}, nil
	default:
		return nil, &errors.MarshalError{Type: "Strategy", Value: int(s)}
	}
}

// MarshalJSON implements json.Marshaler for Strategy.
//
// A valid Strategy is serialized as its canonical string representation
// (for example, "standard"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce JSON output.
func (s Strategy) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Strategy", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Strategy.
//
// The method accepts both string and numeric JSON representations. Numbers
// follow declaration order: 0 (default) through 3 (standard).
func (s *Strategy) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Strategy", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Strategy", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseStrategy(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Strategy", Data: data, Reason: err.Error()}
	}
	*s = Strategy(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Strategy", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Strategy.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Strategy", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Strategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TypeName returns "Strategy", the name of the type for logging and debugging.
func (s Strategy) TypeName() string {
	return "Strategy"
}

// Redacted returns the same string representation as String().
func (s Strategy) Redacted() string {
	return s.String()
}

// IsZero reports whether the Strategy has its zero value, DefaultStrategy.
//
// Note: the zero value is a valid Strategy, so IsZero returning true does
// not indicate an error condition.
func (s Strategy) IsZero() bool {
	return s == DefaultStrategy
}

// Equal reports whether this Strategy is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Strategy or *Strategy.
func (s Strategy) Equal(other any) bool {
	switch v := other.(type) {
	case Strategy:
		return s == v
	case *Strategy:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate checks whether the Strategy value is one of the defined constants.
func (s Strategy) Validate() error {
	if !s.Valid() {
		return &errors.MarshalError{
			Type:  "Strategy",
			Value: int(s),
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Strategy.
func (s Strategy) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Strategy", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Strategy.
//
// The method accepts string representations of Strategy values
// (for example, "standard", "tsu") and resolves them via ParseStrategy.
func (s *Strategy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Strategy", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseStrategy(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
