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
	"fmt"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Combiner merges the writings of adjacent constituent words.
//
// Check validates that the sequence has the arity and roles the combiner
// needs; NewCompound calls it once at construction. Combine is pure: the
// same input always yields the same set of writings. Combine may assume
// Check has passed.
type Combiner interface {
	Check(words []Wordlike) error
	Combine(words []Wordlike) []writing.Writing
}

// DefaultCombine concatenates writings pairwise across all constituents,
// folding left to right.
//
// When both the accumulated writings and the next word hold readings as well
// as non-readings, only same-kind pairs are produced (reading with reading,
// non-reading with non-reading). Otherwise every pair is produced.
type DefaultCombine struct{}

// Check requires at least one word.
func (DefaultCombine) Check(words []Wordlike) error {
	return checkArity("DefaultCombine", words, 1, -1)
}

// Combine implements Combiner.
func (DefaultCombine) Combine(words []Wordlike) []writing.Writing {
	if len(words) == 0 {
		return nil
	}
	acc := words[0].Writings()
	for _, w := range words[1:] {
		acc = pairDefault(acc, w.Writings())
	}
	return acc
}

// NumberCombine joins a numeral with the word that follows it.
//
// Non-reading pairs are always produced. Reading pairs are produced only when
// the numeral's value has no entry in Exceptions; otherwise the exception
// readings replace them. With HideOne set, a numeral of value 1 disappears
// and the second word's writings are returned unchanged (十, not 一十).
type NumberCombine struct {
	Exceptions map[int64][]string
	HideOne    bool
}

// Check requires exactly two words, the first implementing Valuer.
func (NumberCombine) Check(words []Wordlike) error {
	return checkValued("NumberCombine", words)
}

// Combine implements Combiner.
func (c NumberCombine) Combine(words []Wordlike) []writing.Writing {
	value, ok := valueOf(words)
	if !ok {
		return DefaultCombine{}.Combine(words)
	}
	left, right := words[0].Writings(), words[1].Writings()
	if c.HideOne && value == 1 {
		return right
	}

	out := nonReadingPairs(left, right)
	if ex, ok := c.Exceptions[value]; ok {
		return append(out, writing.FromStrings(ex...)...)
	}
	return append(out, cross(readings(left), readings(right), nil)...)
}

// TsuCombine joins a numeral with the native つ counter. Only non-reading
// pairs are concatenated; readings come exclusively from Exceptions since
// the native counting readings are fully irregular.
type TsuCombine struct {
	Exceptions map[int64][]string
}

// Check requires exactly two words, the first implementing Valuer.
func (TsuCombine) Check(words []Wordlike) error {
	return checkValued("TsuCombine", words)
}

// Combine implements Combiner.
func (c TsuCombine) Combine(words []Wordlike) []writing.Writing {
	value, ok := valueOf(words)
	if !ok {
		return DefaultCombine{}.Combine(words)
	}
	out := nonReadingPairs(words[0].Writings(), words[1].Writings())
	if ex, ok := c.Exceptions[value]; ok {
		out = append(out, writing.FromStrings(ex...)...)
	}
	return out
}

// StandardCombine is the phonology-aware combiner used by counters and for
// joining numeral groups.
//
// Reading pairs go through the sound-change table: the right reading's first
// kana selects a rule set, and the left reading's last three, then last two,
// kana select the rule. Non-reading pairs are concatenated plainly.
//
// Exceptions, when set, apply to a two-word [numeral, counter] sequence and
// replace the rule-based readings for the listed values.
type StandardCombine struct {
	Exceptions map[int64][]string
}

// Check requires at least one word, and a Valuer first word when
// exceptions are configured for a two-word sequence.
func (c StandardCombine) Check(words []Wordlike) error {
	if err := checkArity("StandardCombine", words, 1, -1); err != nil {
		return err
	}
	if len(c.Exceptions) > 0 {
		return checkValued("StandardCombine", words)
	}
	return nil
}

// Combine implements Combiner.
func (c StandardCombine) Combine(words []Wordlike) []writing.Writing {
	if len(words) == 0 {
		return nil
	}
	if value, ok := valueOf(words); ok {
		if ex, ok := c.Exceptions[value]; ok {
			out := nonReadingPairs(words[0].Writings(), words[1].Writings())
			return append(out, writing.FromStrings(ex...)...)
		}
	}

	acc := words[0].Writings()
	for _, w := range words[1:] {
		acc = pairStandard(acc, w.Writings())
	}
	return acc
}

func pairDefault(left, right []writing.Writing) []writing.Writing {
	if mixed(left) && mixed(right) {
		return cross(left, right, func(l, r writing.Writing) bool { return l.IsReading() == r.IsReading() })
	}
	return cross(left, right, nil)
}

func pairStandard(left, right []writing.Writing) []writing.Writing {
	out := nonReadingPairs(left, right)
	for _, l := range readings(left) {
		for _, r := range readings(right) {
			out = append(out, soundChange(l, r)...)
		}
	}
	return out
}

// nonReadingPairs pairs the non-readings of each side. A side with no
// non-reading contributes all of its writings, so that a kana-only counter
// such as つ or ページ still yields 三つ and 3ページ. Reading with reading
// pairs are never produced here.
func nonReadingPairs(left, right []writing.Writing) []writing.Writing {
	lp := nonReadings(left)
	if len(lp) == 0 {
		lp = left
	}
	rp := nonReadings(right)
	if len(rp) == 0 {
		rp = right
	}
	return cross(lp, rp, func(l, r writing.Writing) bool { return !(l.IsReading() && r.IsReading()) })
}

// cross concatenates every left writing with every right writing, left
// outer, right inner, keeping the pairs accepted by keep (all when nil).
func cross(left, right []writing.Writing, keep func(l, r writing.Writing) bool) []writing.Writing {
	out := make([]writing.Writing, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			if keep == nil || keep(l, r) {
				out = append(out, l.Concat(r))
			}
		}
	}
	return out
}

func mixed(ws []writing.Writing) bool {
	var hasReading, hasOther bool
	for _, w := range ws {
		if w.IsReading() {
			hasReading = true
		} else {
			hasOther = true
		}
	}
	return hasReading && hasOther
}

func valueOf(words []Wordlike) (int64, bool) {
	if len(words) != 2 {
		return 0, false
	}
	v, ok := words[0].(Valuer)
	if !ok {
		return 0, false
	}
	return v.Value(), true
}

func checkArity(name string, words []Wordlike, min, max int) error {
	if len(words) < min || (max >= 0 && len(words) > max) {
		return &errors.ValidationError{Type: name, Reason: fmt.Sprintf("unexpected number of words: %d", len(words))}
	}
	for i, w := range words {
		if w == nil {
			return &errors.ValidationError{Type: name, Reason: fmt.Sprintf("word %d is nil", i)}
		}
	}
	return nil
}

func checkValued(name string, words []Wordlike) error {
	if err := checkArity(name, words, 2, 2); err != nil {
		return err
	}
	if _, ok := words[0].(Valuer); !ok {
		return &errors.ValidationError{Type: name, Reason: fmt.Sprintf("first word %T has no numeric value", words[0])}
	}
	return nil
}
