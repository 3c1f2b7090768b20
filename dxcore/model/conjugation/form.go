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

// Package conjugation defines the vocabulary shared by the verb and
// adjective packages: the Form enum, the negative and polite options and
// the Key that conjugation tables are indexed by.
package conjugation

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Form is a grammatical form a verb or adjective can be conjugated to.
type Form int

const (
	// Present is the dictionary (non-past) form: 食べる, 高い.
	Present Form = iota
	// Past is the た form: 食べた, 高かった.
	Past
	// Imperative is the command form: 食べろ.
	Imperative
	// TeForm is the conjunctive て form: 食べて, 高くて.
	TeForm
	// ConditionalEba is the ば conditional: 食べれば.
	ConditionalEba
	// ConditionalRa is the たら conditional: 食べたら.
	ConditionalRa
	// Presumptive is the conjectural form: 食べるだろう.
	Presumptive
	// Volitional is the let's form: 食べよう.
	Volitional
	// Potential is the can form: 食べられる. It derives a new ichidan verb.
	Potential
	// Passive is the passive form: 食べられる. It derives a new ichidan verb.
	Passive
	// Causative is the make/let form: 食べさせる. It derives a new ichidan verb.
	Causative
	// Tai is the desiderative form: 食べたい. It derives an i-adjective.
	Tai
	// Adverb is the adverbial form of adjectives: 高く.
	Adverb
)

// Compile-time check that Form implements model.Model interface.
var _ model.Model = (*Form)(nil)

// String constants for Form values used in serialization and parsing.
const (
	PresentStr        = "present"
	PastStr           = "past"
	ImperativeStr     = "imperative"
	TeFormStr         = "te_form"
	ConditionalEbaStr = "conditional_eba"
	ConditionalRaStr  = "conditional_ra"
	PresumptiveStr    = "presumptive"
	VolitionalStr     = "volitional"
	PotentialStr      = "potential"
	PassiveStr        = "passive"
	CausativeStr      = "causative"
	TaiStr            = "tai"
	AdverbStr         = "adverb"
)

var formNames = [...]string{
	Present:        PresentStr,
	Past:           PastStr,
	Imperative:     ImperativeStr,
	TeForm:         TeFormStr,
	ConditionalEba: ConditionalEbaStr,
	ConditionalRa:  ConditionalRaStr,
	Presumptive:    PresumptiveStr,
	Volitional:     VolitionalStr,
	Potential:      PotentialStr,
	Passive:        PassiveStr,
	Causative:      CausativeStr,
	Tai:            TaiStr,
	Adverb:         AdverbStr,
}

// String returns the canonical name of the form, or "unknown".
func (f Form) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return formNames[f]
}

// ParseForm converts a form name into a Form. Matching ignores case and
// treats '-' like '_', so "Te-Form" parses as TeForm.
func ParseForm(str string) (Form, error) {
	norm := strings.ReplaceAll(strings.ToLower(str), "-", "_")
	for f, name := range formNames {
		if name == norm {
			return Form(f), nil
		}
	}
	return Present, &errors.ParseError{Type: "Form", Value: str}
}

// Valid reports whether f is one of the defined constants.
func (f Form) Valid() bool {
	return f >= Present && f <= Adverb
}

// Derives reports whether conjugating to f builds a new word that the rest
// of a form chain is applied to.
func (f Form) Derives() bool {
	return f == Potential || f == Passive || f == Causative || f == Tai
}

// MarshalJSON encodes f as its canonical name.
func (f Form) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Form", Value: int(f)}
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts a form name or its declaration index.
func (f *Form) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Form", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Form", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseForm(str)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Form", Data: data, Reason: err.Error()}
	}
	if !Form(i).Valid() {
		return &errors.UnmarshalError{Type: "Form", Data: data, Reason: "invalid numeric value"}
	}
	*f = Form(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Form) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Form", Value: int(f)}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Form) UnmarshalText(text []byte) error {
	parsed, err := ParseForm(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Form) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Form", Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Form) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Form", Data: []byte(node.Value), Reason: err.Error()}
	}
	return f.UnmarshalText([]byte(str))
}

// TypeName returns "Form".
func (f Form) TypeName() string { return "Form" }

// Redacted returns the same as String.
func (f Form) Redacted() string { return f.String() }

// IsZero reports whether f is Present, the zero value.
func (f Form) IsZero() bool { return f == Present }

// Equal reports whether other is the same Form, by value or pointer.
func (f Form) Equal(other any) bool {
	switch v := other.(type) {
	case Form:
		return f == v
	case *Form:
		return v != nil && f == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError for undefined values.
func (f Form) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{Type: "Form", Reason: "undefined value", Value: int(f)}
	}
	return nil
}
