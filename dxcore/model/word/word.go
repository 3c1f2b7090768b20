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

// Package word implements the word model: Word, a bag of alternate writings
// denoting one lexical item; Compound, a word derived from constituent words
// through a Combiner; the combine strategies that apply Japanese sound
// changes when words attach; and the specializer Registry that turns a
// generic composition into a more specific compound (numbers, counters)
// when the constituents match.
//
// All values are immutable once built and safe for concurrent use.
package word

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"dirpx.dev/dxword/dxcore/model/writing"
	"gopkg.in/yaml.v3"
)

// Wordlike is anything that carries writings: Word, Compound and every
// specialized word type built on them.
type Wordlike interface {
	// Writings returns every writing in insertion order. The returned slice
	// is owned by the caller.
	Writings() []writing.Writing

	// Readings returns the subset of Writings that are readings.
	Readings() []writing.Writing

	// String returns the first writing, for display only.
	String() string
}

// Valuer is implemented by numeric words. Combiners that depend on the
// numeral (Number, Tsu, Standard with exceptions) look for it on the first
// constituent.
type Valuer interface {
	Value() int64
}

// Word is an ordered, non-empty collection of writings.
type Word struct {
	writings []writing.Writing
}

// Compile-time checks.
var (
	_ model.Model = (*Word)(nil)
	_ Wordlike    = (*Word)(nil)
)

// New builds a Word from parts. Each part is a string, a writing.Writing, a
// []string, a []writing.Writing or a Wordlike whose writings are flattened
// in. Writings are kept in order and are not de-duplicated.
//
// New returns an *EmptyWordError when the parts yield no writing.
func New(parts ...any) (*Word, error) {
	var ws []writing.Writing
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			ws = append(ws, writing.New(v))
		case writing.Writing:
			ws = append(ws, v)
		case []string:
			ws = append(ws, writing.FromStrings(v...)...)
		case []writing.Writing:
			ws = append(ws, v...)
		case Wordlike:
			ws = append(ws, v.Writings()...)
		default:
			return nil, &errors.ValidationError{Type: "Word", Reason: fmt.Sprintf("unsupported part type %T", p), Value: p}
		}
	}
	if len(ws) == 0 {
		return nil, &errors.EmptyWordError{Type: "Word"}
	}
	return &Word{writings: ws}, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// tables built from literals.
func MustNew(parts ...any) *Word {
	w, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Writings returns a copy of the word's writings.
func (w *Word) Writings() []writing.Writing {
	return clone(w.writings)
}

// Readings returns the word's readings.
func (w *Word) Readings() []writing.Writing {
	return readings(w.writings)
}

// String returns the first writing.
func (w *Word) String() string {
	if w == nil || len(w.writings) == 0 {
		return ""
	}
	return w.writings[0].String()
}

// Len returns the number of writings.
func (w *Word) Len() int {
	return len(w.writings)
}

// Append returns a new Word with s appended to every writing.
func (w *Word) Append(s string) *Word {
	ws := make([]writing.Writing, len(w.writings))
	for i, wr := range w.writings {
		ws[i] = wr.Append(s)
	}
	return &Word{writings: ws}
}

// Add composes w with other through the default registry. The result is a
// Compound or one of its registered specializations; the two constituents
// stay addressable through Compound.Words. Adding nil returns w.
func (w *Word) Add(other Wordlike) Wordlike {
	if other == nil {
		return w
	}
	return MustCompose(w, other)
}

// SplitOkurigana cuts the trailing n runes off every writing. It succeeds
// only if every writing ends in the same suffix, returning the stem word and
// that suffix, so that stem.Append(suffix) equals w.
//
// A *NotOkuriganaError is returned for n < 1, for a writing shorter than n
// runes, and for writings whose suffixes differ.
func (w *Word) SplitOkurigana(n int) (*Word, string, error) {
	if n < 1 {
		return nil, "", &errors.NotOkuriganaError{Word: w.String(), Count: n, Reason: "suffix length must be positive"}
	}

	stems := make([]writing.Writing, 0, len(w.writings))
	suffix := ""
	for i, wr := range w.writings {
		stem, suf, ok := wr.Split(n)
		if !ok {
			return nil, "", &errors.NotOkuriganaError{
				Word:   w.String(),
				Count:  n,
				Reason: fmt.Sprintf("writing %q is shorter than the suffix", wr.String()),
			}
		}
		if i == 0 {
			suffix = suf
		} else if suf != suffix {
			return nil, "", &errors.NotOkuriganaError{
				Word:   w.String(),
				Count:  n,
				Reason: fmt.Sprintf("suffix %q of %q differs from %q", suf, wr.String(), suffix),
			}
		}
		stems = append(stems, stem)
	}
	return &Word{writings: stems}, suffix, nil
}

// Equal reports whether other is a Wordlike with the same set of writings.
func (w *Word) Equal(other any) bool {
	o, ok := other.(Wordlike)
	if !ok || o == nil {
		return false
	}
	return Equal(w, o)
}

// Validate checks that the word has at least one writing and that every
// writing is well-formed.
func (w *Word) Validate() error {
	if w == nil || len(w.writings) == 0 {
		return &errors.EmptyWordError{Type: "Word"}
	}
	for _, wr := range w.writings {
		if err := wr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TypeName returns "Word".
func (w *Word) TypeName() string {
	return "Word"
}

// Redacted returns the same as String.
func (w *Word) Redacted() string {
	return w.String()
}

// IsZero reports whether the word has no writings.
func (w *Word) IsZero() bool {
	return w == nil || len(w.writings) == 0
}

// MarshalJSON encodes the word as a JSON array of writings.
func (w *Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(Strings(w))
}

// UnmarshalJSON decodes a JSON array of strings. An empty array is rejected.
func (w *Word) UnmarshalJSON(data []byte) error {
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return &errors.UnmarshalError{Type: "Word", Data: data, Reason: err.Error()}
	}
	if len(ss) == 0 {
		return &errors.UnmarshalError{Type: "Word", Data: data, Reason: "no writings"}
	}
	w.writings = writing.FromStrings(ss...)
	return nil
}

// MarshalYAML encodes the word as a YAML sequence of writings.
func (w *Word) MarshalYAML() (any, error) {
	return Strings(w), nil
}

// UnmarshalYAML decodes a YAML sequence of strings, or a single scalar as a
// one-writing word.
func (w *Word) UnmarshalYAML(node *yaml.Node) error {
	var ss []string
	if node.Kind == yaml.ScalarNode {
		ss = []string{node.Value}
	} else if err := node.Decode(&ss); err != nil {
		return &errors.UnmarshalError{Type: "Word", Data: []byte(node.Value), Reason: err.Error()}
	}
	if len(ss) == 0 {
		return &errors.UnmarshalError{Type: "Word", Data: []byte(node.Value), Reason: "no writings"}
	}
	w.writings = writing.FromStrings(ss...)
	return nil
}

// Readings returns the readings of any word-like value.
func Readings(w Wordlike) []writing.Writing {
	return readings(w.Writings())
}

// Strings returns the writings of w as plain strings.
func Strings(w Wordlike) []string {
	ws := w.Writings()
	out := make([]string, len(ws))
	for i, wr := range ws {
		out[i] = wr.String()
	}
	return out
}

// Equal reports whether a and b have equal writing sets. Order and
// multiplicity are ignored.
func Equal(a, b Wordlike) bool {
	return sameSet(a.Writings(), b.Writings())
}

func sameSet(a, b []writing.Writing) bool {
	as := make(map[writing.Writing]struct{}, len(a))
	for _, w := range a {
		as[w] = struct{}{}
	}
	bs := make(map[writing.Writing]struct{}, len(b))
	for _, w := range b {
		if _, ok := as[w]; !ok {
			return false
		}
		bs[w] = struct{}{}
	}
	return len(as) == len(bs)
}

func readings(ws []writing.Writing) []writing.Writing {
	out := make([]writing.Writing, 0, len(ws))
	for _, w := range ws {
		if w.IsReading() {
			out = append(out, w)
		}
	}
	return out
}

func nonReadings(ws []writing.Writing) []writing.Writing {
	out := make([]writing.Writing, 0, len(ws))
	for _, w := range ws {
		if !w.IsReading() {
			out = append(out, w)
		}
	}
	return out
}

func clone(ws []writing.Writing) []writing.Writing {
	out := make([]writing.Writing, len(ws))
	copy(out, ws)
	return out
}
