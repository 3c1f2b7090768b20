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

// Package writing defines Writing, the smallest unit of the word model: one
// concrete surface form of a word (kanji, kana, digits or a mix), tagged
// with its Kind.
//
// A Writing is classified from its text by trying each known refinement in
// order and falling back to Generic. The only refinement today is Reading
// (pure kana). Because the kind is derived from the text, construction path
// never matters: New("たべ").Concat(New("る")) and New("たべる") are the same
// value.
package writing

import (
	"encoding/json"
	"unicode/utf8"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Writing is an immutable string value tagged with a Kind.
//
// The zero Writing is the empty Generic writing. Writing values are
// comparable with == and usable as map keys.
type Writing struct {
	text string
	kind Kind
}

// Compile-time check that Writing implements model.Model interface.
var _ model.Model = (*Writing)(nil)

// refinement is a candidate Kind together with the predicate its content
// must satisfy.
type refinement struct {
	kind  Kind
	match func(string) bool
}

// refinements are tried in order; the first match wins.
var refinements = []refinement{
	{kind: Reading, match: func(s string) bool { return s != "" && IsKana(s) }},
}

// Classify returns the Kind that New would assign to s.
func Classify(s string) Kind {
	for _, r := range refinements {
		if r.match(s) {
			return r.kind
		}
	}
	return Generic
}

// New returns the Writing for s, classified from its content.
func New(s string) Writing {
	return Writing{text: s, kind: Classify(s)}
}

// NewReading returns s as a Reading, or an *InvalidWritingError if s is not
// a non-empty pure-kana string.
func NewReading(s string) (Writing, error) {
	w := New(s)
	if w.kind != Reading {
		return Writing{}, &errors.InvalidWritingError{Kind: ReadingStr, Value: s}
	}
	return w, nil
}

// FromStrings classifies each string in order.
func FromStrings(ss ...string) []Writing {
	out := make([]Writing, len(ss))
	for i, s := range ss {
		out[i] = New(s)
	}
	return out
}

// String returns the text of the writing.
func (w Writing) String() string {
	return w.text
}

// Kind returns the classification of the writing.
func (w Writing) Kind() Kind {
	return w.kind
}

// IsReading reports whether the writing is a pure-kana reading.
func (w Writing) IsReading() bool {
	return w.kind == Reading
}

// Len returns the length of the writing in runes.
func (w Writing) Len() int {
	return utf8.RuneCountInString(w.text)
}

// Concat returns w followed by other, reclassified from scratch.
func (w Writing) Concat(other Writing) Writing {
	return New(w.text + other.text)
}

// Append returns w followed by s, reclassified from scratch.
func (w Writing) Append(s string) Writing {
	return New(w.text + s)
}

// Split cuts the last n runes off the writing and returns the remaining
// stem and the cut suffix. ok is false when n is negative or larger than
// the writing.
func (w Writing) Split(n int) (stem Writing, suffix string, ok bool) {
	runes := []rune(w.text)
	if n < 0 || n > len(runes) {
		return Writing{}, "", false
	}
	cut := len(runes) - n
	return New(string(runes[:cut])), string(runes[cut:]), true
}

// HasSuffix reports whether the writing ends with s.
func (w Writing) HasSuffix(s string) bool {
	return len(w.text) >= len(s) && w.text[len(w.text)-len(s):] == s
}

// TrimSuffix returns the writing without the trailing s, reclassified. If the
// writing does not end with s it is returned unchanged.
func (w Writing) TrimSuffix(s string) Writing {
	if !w.HasSuffix(s) {
		return w
	}
	return New(w.text[:len(w.text)-len(s)])
}

// Redacted returns the text of the writing. Writings carry no sensitive
// data.
func (w Writing) Redacted() string {
	return w.text
}

// TypeName returns "Writing".
func (w Writing) TypeName() string {
	return "Writing"
}

// IsZero reports whether the writing is empty.
func (w Writing) IsZero() bool {
	return w.text == ""
}

// Equal reports whether other is a Writing (or *Writing) with the same text.
func (w Writing) Equal(other any) bool {
	switch v := other.(type) {
	case Writing:
		return w == v
	case *Writing:
		return v != nil && w == *v
	default:
		return false
	}
}

// Validate checks that the stored kind matches the classification of the
// text.
func (w Writing) Validate() error {
	if err := w.kind.Validate(); err != nil {
		return err
	}
	if got := Classify(w.text); got != w.kind {
		return &errors.ValidationError{
			Type:   "Writing",
			Field:  "Kind",
			Reason: "kind " + w.kind.String() + " does not match content classified as " + got.String(),
			Value:  w.text,
		}
	}
	return nil
}

// MarshalJSON encodes the writing as a JSON string.
func (w Writing) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.text)
}

// UnmarshalJSON decodes a JSON string and classifies it.
func (w *Writing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Writing", Data: data, Reason: err.Error()}
	}
	*w = New(s)
	return nil
}

// MarshalYAML encodes the writing as a YAML string.
func (w Writing) MarshalYAML() (any, error) {
	return w.text, nil
}

// UnmarshalYAML decodes a YAML string and classifies it.
func (w *Writing) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Writing", Data: []byte(node.Value), Reason: err.Error()}
	}
	*w = New(s)
	return nil
}
