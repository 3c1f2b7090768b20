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

// Package number spells integers as Japanese numerals and decodes kanji
// numerals back to integers.
//
// A Number's writings are its decimal digits followed by the spelled
// forms, for example 1334, 千三百三十四 and せんさんびゃくさんじゅうよん.
// Spelling goes through the word registry: digits and place markers form
// Terms, Terms form Groups, Groups above the lowest are Scaled by their
// myriad marker, and the groups are joined with the standard combiner.
//
//	n, _ := number.New(42)
//	n.String()   // "42"
//	word.Strings(n) // [42 四十二 よんじゅうに]
//
// Importing the package registers its specializers with
// word.DefaultRegistry.
package number

import (
	"encoding/json"
	"strconv"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"
)

// CacheSize bounds the number of spelled values kept in memory.
const CacheSize = 1024

var cache = mustCache()

func mustCache() *lru.Cache[int64, *Number] {
	c, err := lru.New[int64, *Number](CacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// zero has no positional decomposition.
var zero = word.MustNew("零", "れい", "ゼロ")

// Number is a non-negative integer together with its spelled writings.
type Number struct {
	value   int64
	spelled word.Wordlike
}

var (
	_ model.Model   = (*Number)(nil)
	_ word.Wordlike = (*Number)(nil)
	_ word.Valuer   = (*Number)(nil)
)

// New returns the Number for n. Negative values are rejected with an
// *InvalidNumeralError.
func New(n int64) (*Number, error) {
	if n < 0 {
		return nil, &errors.InvalidNumeralError{Value: strconv.FormatInt(n, 10), Reason: "negative numbers cannot be spelled"}
	}
	if cached, ok := cache.Get(n); ok {
		return cached, nil
	}
	num := &Number{value: n, spelled: spell(n)}
	cache.Add(n, num)
	return num, nil
}

// MustNew is like New but panics on error.
func MustNew(n int64) *Number {
	num, err := New(n)
	if err != nil {
		panic(err)
	}
	return num
}

// Parse returns the Number written as s. Decimal digits, ASCII or
// full-width, are read as such; anything else must be a kanji numeral.
func Parse(s string) (*Number, error) {
	folded := width.Fold.String(s)
	if isDecimal(folded) {
		v, err := strconv.ParseInt(folded, 10, 64)
		if err != nil {
			return nil, &errors.InvalidNumeralError{Value: s, Reason: "out of range"}
		}
		return New(v)
	}
	v, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return New(v)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// spell builds the kanji and kana writings of n.
func spell(n int64) word.Wordlike {
	if n == 0 {
		return zero
	}

	var groups []word.Wordlike
	for i := 0; n > 0; i++ {
		g := n % 10000
		n /= 10000
		if g == 0 {
			continue
		}
		grp := spellGroup(g)
		if i == 0 {
			groups = append(groups, grp)
			continue
		}
		groups = append(groups, word.MustCompose(grp, myriads[i]))
	}
	if len(groups) == 1 {
		return groups[0]
	}

	// most significant group first
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	c, err := word.NewCompound(groups, word.WithCombiner(word.StandardCombine{}))
	if err != nil {
		panic(err)
	}
	return c
}

func spellGroup(g int64) word.Wordlike {
	var parts []word.Wordlike
	for exp := 0; g > 0; exp++ {
		d := g % 10
		g /= 10
		if d == 0 {
			continue
		}
		if exp == 0 {
			parts = append(parts, digits[d])
			continue
		}
		parts = append(parts, word.MustCompose(digits[d], positions[exp]))
	}
	return word.MustCompose(parts...)
}

// Value returns the integer.
func (n *Number) Value() int64 { return n.value }

// Spelled returns the kanji and kana spelling without the decimal writing.
func (n *Number) Spelled() word.Wordlike { return n.spelled }

// Writings returns the decimal writing followed by the spelled writings.
func (n *Number) Writings() []writing.Writing {
	ws := []writing.Writing{writing.New(strconv.FormatInt(n.value, 10))}
	if n.spelled == nil {
		return ws
	}
	return append(ws, n.spelled.Writings()...)
}

// Readings returns the kana spellings.
func (n *Number) Readings() []writing.Writing {
	if n.spelled == nil {
		return nil
	}
	return n.spelled.Readings()
}

// String returns the decimal writing.
func (n *Number) String() string {
	return strconv.FormatInt(n.value, 10)
}

// Add composes n with other; a counter yields a count.
func (n *Number) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return n
	}
	return word.MustCompose(n, other)
}

// Equal reports whether other has the same writing set.
func (n *Number) Equal(other any) bool {
	o, ok := other.(word.Wordlike)
	if !ok || o == nil {
		return false
	}
	return word.Equal(n, o)
}

// Validate reports whether n was built by New or Parse.
func (n *Number) Validate() error {
	if n == nil || n.spelled == nil {
		return &errors.ValidationError{Type: "Number", Reason: "not initialized"}
	}
	if n.value < 0 {
		return &errors.ValidationError{Type: "Number", Field: "value", Reason: "must not be negative", Value: n.value}
	}
	return nil
}

// TypeName returns "Number".
func (n *Number) TypeName() string { return "Number" }

// Redacted returns the same as String.
func (n *Number) Redacted() string { return n.String() }

// IsZero reports whether n is an uninitialized Number. The value 0 is not
// zero in this sense.
func (n *Number) IsZero() bool { return n == nil || n.spelled == nil }

// MarshalJSON encodes the value as a JSON number.
func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON accepts a JSON number or a string in any Parse syntax.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err == nil {
		return n.set(New(v))
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Number", Data: data, Reason: "expected number or string"}
	}
	return n.set(Parse(s))
}

// MarshalYAML encodes the value as a YAML integer.
func (n *Number) MarshalYAML() (any, error) {
	return n.value, nil
}

// UnmarshalYAML accepts an integer or a string in any Parse syntax.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &errors.UnmarshalError{Type: "Number", Data: []byte(node.Value), Reason: "expected scalar"}
	}
	return n.set(Parse(node.Value))
}

func (n *Number) set(parsed *Number, err error) error {
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}
