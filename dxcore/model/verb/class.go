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

package verb

import (
	"encoding/json"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Class is the conjugation class of a verb. It only decides how the stem
// table is filled; conjugation itself is the same for every class.
type Class int

const (
	// Godan verbs (group 1) shift their final kana across the five vowel
	// rows: 書く, 書かない, 書きます.
	Godan Class = iota

	// Ichidan verbs (group 2) drop their final る: 食べる, 食べない.
	Ichidan

	// Kuru is the irregular 来る.
	Kuru

	// Suru is the irregular する and the nouns it turns into verbs.
	Suru
)

// Compile-time check that Class implements model.Model interface.
var _ model.Model = (*Class)(nil)

// String constants for Class values used in serialization and parsing.
const (
	GodanStr   = "godan"
	IchidanStr = "ichidan"
	KuruStr    = "kuru"
	SuruStr    = "suru"
)

// String returns the canonical name of the class, or "unknown".
func (c Class) String() string {
	switch c {
	case Godan:
		return GodanStr
	case Ichidan:
		return IchidanStr
	case Kuru:
		return KuruStr
	case Suru:
		return SuruStr
	default:
		return "unknown"
	}
}

// ParseClass converts a class name into a Class.
//
// Examples of accepted inputs:
//
//	"godan", "Godan", "GODAN" -> Godan
//	"ichidan", "Ichidan"      -> Ichidan
func ParseClass(str string) (Class, error) {
	switch str {
	case GodanStr, "Godan", "GODAN":
		return Godan, nil
	case IchidanStr, "Ichidan", "ICHIDAN":
		return Ichidan, nil
	case KuruStr, "Kuru", "KURU":
		return Kuru, nil
	case SuruStr, "Suru", "SURU":
		return Suru, nil
	default:
		return Godan, &errors.ParseError{Type: "Class", Value: str}
	}
}

// Valid reports whether c is one of the defined constants.
func (c Class) Valid() bool {
	return c >= Godan && c <= Suru
}

// MarshalJSON encodes c as its canonical name.
func (c Class) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Class", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts a class name or its declaration index.
func (c *Class) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Class", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Class", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseClass(str)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Class", Data: data, Reason: err.Error()}
	}
	if !Class(i).Valid() {
		return &errors.UnmarshalError{Type: "Class", Data: data, Reason: "invalid numeric value"}
	}
	*c = Class(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Class", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Class) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Class", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Class) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Class", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseClass(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TypeName returns "Class".
func (c Class) TypeName() string { return "Class" }

// Redacted returns the same as String.
func (c Class) Redacted() string { return c.String() }

// IsZero reports whether c is Godan, the zero value.
func (c Class) IsZero() bool { return c == Godan }

// Equal reports whether other is the same Class, by value or pointer.
func (c Class) Equal(other any) bool {
	switch v := other.(type) {
	case Class:
		return c == v
	case *Class:
		return v != nil && c == *v
	default:
		return false
	}
}

// Validate returns a *MarshalError for undefined values.
func (c Class) Validate() error {
	if !c.Valid() {
		return &errors.MarshalError{Type: "Class", Value: int(c)}
	}
	return nil
}
