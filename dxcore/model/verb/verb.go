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

// Package verb conjugates Japanese verbs.
//
// Each constructor fills a table of stems from the dictionary form;
// conjugation then appends a fixed ending to one stem, chosen by form,
// negation and politeness:
//
//	v, _ := verb.NewIchidan("食べる", "たべる")
//	polite, _ := v.Conjugate(conjugation.Present, conjugation.Polite())
//	word.Strings(polite) // [食べます たべます]
//
// Potential, passive and causative forms build a new ichidan verb and
// conjugate the rest of the chain on it, so とぶ conjugated with
// [Causative, Passive] gives とばせられる. Tai builds an い-adjective.
package verb

import (
	"fmt"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/conjugation"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// stems holds the inflection bases of a verb.
type stems struct {
	self *word.Word // dictionary form
	nai  *word.Word // before ない
	masu *word.Word // before ます, also the tai base
	ta   *word.Word // before た and て
	e    *word.Word // before ば
	imp  *word.Word // plain imperative
	vol  *word.Word // before う
	pot  *word.Word // before る, potential
	pas  *word.Word // before れる, passive
	cau  *word.Word // before せる, causative

	// voiced selects だ and で over た and て.
	voiced bool
}

// godanRow gives a godan verb's final kana in the i, a, e and o rows plus
// its euphonic past-tense kana.
type godanRow struct {
	i, ta, a, e, o string
	voiced         bool
}

var godanRows = map[string]godanRow{
	"う": {i: "い", ta: "っ", a: "わ", e: "え", o: "お"},
	"る": {i: "り", ta: "っ", a: "ら", e: "れ", o: "ろ"},
	"む": {i: "み", ta: "ん", a: "ま", e: "め", o: "も", voiced: true},
	"ぬ": {i: "に", ta: "ん", a: "な", e: "ね", o: "の", voiced: true},
	"く": {i: "き", ta: "い", a: "か", e: "け", o: "こ"},
	"ぐ": {i: "ぎ", ta: "い", a: "が", e: "げ", o: "ご", voiced: true},
	"ぶ": {i: "び", ta: "ん", a: "ば", e: "べ", o: "ぼ", voiced: true},
	"す": {i: "し", ta: "し", a: "さ", e: "せ", o: "そ"},
	"つ": {i: "ち", ta: "っ", a: "た", e: "て", o: "と"},
}

// Verb is a conjugable verb.
type Verb struct {
	w     *word.Word
	class Class
	stems stems

	// prefix is composed onto every conjugation of kuru and suru verbs:
	// 持って in 持って来る, 勉強 in 勉強する.
	prefix *word.Word
}

var _ conjugation.Conjugator = (*Verb)(nil)

// NewGodan builds a godan verb. The final kana must be one of
// う る む ぬ く ぐ ぶ す つ.
func NewGodan(parts ...any) (*Verb, error) {
	w, err := word.New(parts...)
	if err != nil {
		return nil, err
	}
	base, ending, err := w.SplitOkurigana(1)
	if err != nil {
		return nil, err
	}
	row, ok := godanRows[ending]
	if !ok {
		return nil, &errors.NotOkuriganaError{Word: w.String(), Count: 1, Reason: fmt.Sprintf("%q is not a godan ending", ending)}
	}
	return &Verb{
		w:     w,
		class: Godan,
		stems: stems{
			self:   w,
			nai:    base.Append(row.a),
			masu:   base.Append(row.i),
			ta:     base.Append(row.ta),
			e:      base.Append(row.e),
			imp:    base.Append(row.e),
			vol:    base.Append(row.o),
			pot:    base.Append(row.e),
			pas:    base.Append(row.a),
			cau:    base.Append(row.a),
			voiced: row.voiced,
		},
	}, nil
}

// NewIchidan builds an ichidan verb. Every writing must end in る.
func NewIchidan(parts ...any) (*Verb, error) {
	w, err := word.New(parts...)
	if err != nil {
		return nil, err
	}
	base, ending, err := w.SplitOkurigana(1)
	if err != nil {
		return nil, err
	}
	if ending != "る" {
		return nil, &errors.NotOkuriganaError{Word: w.String(), Count: 1, Reason: "ichidan verbs end in る"}
	}
	return &Verb{
		w:     w,
		class: Ichidan,
		stems: stems{
			self: w,
			nai:  base,
			masu: base,
			ta:   base,
			e:    base.Append("れ"),
			imp:  base.Append("ろ"),
			vol:  base.Append("よ"),
			pot:  base.Append("られ"),
			pas:  base.Append("ら"),
			cau:  base.Append("さ"),
		},
	}, nil
}

var kuruStems = stems{
	self: word.MustNew("来る", "くる"),
	nai:  word.MustNew("来", "こ"),
	masu: word.MustNew("来", "き"),
	ta:   word.MustNew("来", "き"),
	e:    word.MustNew("来れ", "くれ"),
	imp:  word.MustNew("来い", "こい"),
	vol:  word.MustNew("来よ", "こよ"),
	pot:  word.MustNew("来られ", "こられ"),
	pas:  word.MustNew("来ら", "こら"),
	cau:  word.MustNew("来さ", "こさ"),
}

// NewKuru builds 来る or a compound ending in it, such as 持って来る.
func NewKuru(parts ...any) (*Verb, error) {
	w, err := word.New(parts...)
	if err != nil {
		return nil, err
	}
	var prefixes []writing.Writing
	for _, wr := range w.Writings() {
		if !wr.HasSuffix("来る") && !wr.HasSuffix("くる") {
			return nil, &errors.NotOkuriganaError{Word: w.String(), Count: 2, Reason: fmt.Sprintf("%q does not end in 来る or くる", wr.String())}
		}
		if p, _, _ := wr.Split(2); p.Len() > 0 {
			prefixes = append(prefixes, p)
		}
	}
	v := &Verb{w: w, class: Kuru, stems: kuruStems}
	if len(prefixes) > 0 {
		v.prefix = word.MustNew(prefixes)
	}
	return v, nil
}

var suruStems = stems{
	self: word.MustNew("する"),
	nai:  word.MustNew("し"),
	masu: word.MustNew("し"),
	ta:   word.MustNew("し"),
	e:    word.MustNew("すれ"),
	imp:  word.MustNew("しろ"),
	vol:  word.MustNew("しよ"),
	pot:  word.MustNew("でき"),
	pas:  word.MustNew("さ"),
	cau:  word.MustNew("さ"),
}

// NewSuru builds する, or with a prefix the verb it forms, such as 勉強する
// from NewSuru("勉強", "べんきょう").
func NewSuru(prefix ...any) (*Verb, error) {
	v := &Verb{w: suruStems.self, class: Suru, stems: suruStems}
	if len(prefix) == 0 {
		return v, nil
	}
	p, err := word.New(prefix...)
	if err != nil {
		return nil, err
	}
	w, err := word.New(word.MustCompose(p, suruStems.self))
	if err != nil {
		return nil, err
	}
	v.w, v.prefix = w, p
	return v, nil
}

// NewIku builds 行く or a compound ending in it. It conjugates like a く
// godan verb except for its past and て stem: 行った, not 行いた.
func NewIku(parts ...any) (*Verb, error) {
	v, err := NewGodan(parts...)
	if err != nil {
		return nil, err
	}
	for _, wr := range v.w.Writings() {
		if !wr.HasSuffix("行く") && !wr.HasSuffix("いく") {
			return nil, &errors.NotOkuriganaError{Word: v.w.String(), Count: 2, Reason: fmt.Sprintf("%q does not end in 行く or いく", wr.String())}
		}
	}
	base, _, err := v.w.SplitOkurigana(1)
	if err != nil {
		return nil, err
	}
	v.stems.ta = base.Append("っ")
	return v, nil
}

// NewAru builds ある, whose negative is ない rather than あらない.
func NewAru(parts ...any) (*Verb, error) {
	v, err := NewGodan(parts...)
	if err != nil {
		return nil, err
	}
	base, ending, err := v.w.SplitOkurigana(2)
	if err != nil {
		return nil, err
	}
	if ending != "ある" {
		return nil, &errors.NotOkuriganaError{Word: v.w.String(), Count: 2, Reason: "does not end in ある"}
	}
	v.stems.nai = base
	return v, nil
}

// Class returns the conjugation class.
func (v *Verb) Class() Class { return v.class }

// Writings returns the dictionary-form writings.
func (v *Verb) Writings() []writing.Writing { return v.w.Writings() }

// Readings returns the dictionary-form readings.
func (v *Verb) Readings() []writing.Writing { return v.w.Readings() }

// String returns the first dictionary-form writing.
func (v *Verb) String() string { return v.w.String() }

// Add composes v with other through the default registry.
func (v *Verb) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return v
	}
	return word.MustCompose(v, other)
}
