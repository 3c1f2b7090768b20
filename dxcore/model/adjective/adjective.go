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

// Package adjective conjugates い-adjectives, including the irregular よい.
//
//	a, _ := adjective.NewI("高い", "たかい")
//	past, _ := a.Conjugate(conjugation.Past, conjugation.Negative())
//	word.Strings(past) // [高くなかった たかくなかった]
package adjective

import (
	"fmt"
	"slices"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/conjugation"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// suffixes are appended to the stem, the adjective without its final い.
var suffixes = map[conjugation.Key]string{
	{Form: conjugation.Present}:                               "い",
	{Form: conjugation.Present, Negative: true}:               "くない",
	{Form: conjugation.Present, Polite: true}:                 "いです",
	{Form: conjugation.Present, Negative: true, Polite: true}: "くないです",

	{Form: conjugation.Past}:                               "かった",
	{Form: conjugation.Past, Negative: true}:               "くなかった",
	{Form: conjugation.Past, Polite: true}:                 "かったです",
	{Form: conjugation.Past, Negative: true, Polite: true}: "くなかったです",

	{Form: conjugation.TeForm}:                 "くて",
	{Form: conjugation.TeForm, Negative: true}: "くなくて",

	{Form: conjugation.Adverb}:                 "く",
	{Form: conjugation.Adverb, Negative: true}: "くなく",

	{Form: conjugation.ConditionalEba}:                 "ければ",
	{Form: conjugation.ConditionalEba, Negative: true}: "くなければ",

	{Form: conjugation.ConditionalRa}:                 "かったら",
	{Form: conjugation.ConditionalRa, Negative: true}: "くなかったら",

	{Form: conjugation.Presumptive}:                               "いだろう",
	{Form: conjugation.Presumptive, Negative: true}:               "くないだろう",
	{Form: conjugation.Presumptive, Polite: true}:                 "いでしょう",
	{Form: conjugation.Presumptive, Negative: true, Polite: true}: "くないでしょう",
}

// Adjective is an い-adjective.
type Adjective struct {
	w    *word.Word
	stem *word.Word

	// ii holds the いい writings of a よい adjective and is nil otherwise.
	ii *word.Word
}

var _ conjugation.Conjugator = (*Adjective)(nil)

// NewI builds an い-adjective. Every writing must end in い; otherwise a
// *NotOkuriganaError is returned.
func NewI(parts ...any) (*Adjective, error) {
	w, err := word.New(parts...)
	if err != nil {
		return nil, err
	}
	stem, suffix, err := w.SplitOkurigana(1)
	if err != nil {
		return nil, err
	}
	if suffix != "い" {
		return nil, &errors.NotOkuriganaError{Word: w.String(), Count: 1, Reason: fmt.Sprintf("ends in %q, not い", suffix)}
	}
	return &Adjective{w: w, stem: stem}, nil
}

// NewYoi builds an adjective ending in 良い or よい, such as 頭がよい. Its
// plain present form is written with いい.
func NewYoi(parts ...any) (*Adjective, error) {
	a, err := NewI(parts...)
	if err != nil {
		return nil, err
	}
	// 良い and よい may be mixed across writings: 頭が良い, あたまがよい.
	var bases []string
	for _, wr := range a.w.Writings() {
		base, suffix, ok := wr.Split(2)
		if !ok || (suffix != "良い" && suffix != "よい") {
			return nil, &errors.NotOkuriganaError{Word: a.w.String(), Count: 2, Reason: fmt.Sprintf("%q does not end in 良い or よい", wr.String())}
		}
		if !slices.Contains(bases, base.String()) {
			bases = append(bases, base.String())
		}
	}
	base, err := word.New(bases)
	if err != nil {
		return nil, err
	}
	ii, err := word.New(word.MustCompose(base, word.MustNew("良い", "いい")))
	if err != nil {
		return nil, err
	}
	a.ii = ii
	return a, nil
}

// IsYoi reports whether a conjugates like よい.
func (a *Adjective) IsYoi() bool { return a.ii != nil }

// Stem returns the adjective without its final い.
func (a *Adjective) Stem() *word.Word { return a.stem }

// Writings returns the dictionary writings, followed by the いい writings
// for a よい adjective.
func (a *Adjective) Writings() []writing.Writing {
	if a.ii == nil {
		return a.w.Writings()
	}
	return append(a.w.Writings(), a.ii.Writings()...)
}

// Readings returns the kana writings.
func (a *Adjective) Readings() []writing.Writing { return word.Readings(a) }

// String returns the first dictionary writing.
func (a *Adjective) String() string { return a.w.String() }

// Add composes a with other through the default registry.
func (a *Adjective) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return a
	}
	return word.MustCompose(a, other)
}

// Conjugate returns the adjective in form f. Potential, passive, causative,
// tai, imperative and volitional forms do not exist for adjectives and
// yield an *InvalidConjugationError, as do the polite variants of the
// conjunctive forms.
func (a *Adjective) Conjugate(f conjugation.Form, opts ...conjugation.Option) (word.Wordlike, error) {
	key := conjugation.KeyOf(f, conjugation.Apply(opts...))

	if a.ii != nil && f == conjugation.Present && !key.Negative {
		if key.Polite {
			return a.ii.Append("です"), nil
		}
		return a.ii, nil
	}

	suffix, ok := suffixes[key]
	if !ok {
		return nil, key.Err("Adjective")
	}
	return a.stem.Append(suffix), nil
}

// ConjugateChain conjugates to the single form in forms, or to Present
// when forms is empty. Adjective forms do not derive new words, so longer
// chains are rejected.
func (a *Adjective) ConjugateChain(forms []conjugation.Form, opts ...conjugation.Option) (word.Wordlike, error) {
	switch len(forms) {
	case 0:
		return a.Conjugate(conjugation.Present, opts...)
	case 1:
		return a.Conjugate(forms[0], opts...)
	default:
		return nil, &errors.ValidationError{
			Type:   "Adjective",
			Field:  "forms",
			Reason: fmt.Sprintf("%s cannot be followed by %s", forms[0], forms[1]),
			Value:  len(forms),
		}
	}
}
