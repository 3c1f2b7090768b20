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
	"fmt"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/adjective"
	"dirpx.dev/dxword/dxcore/model/conjugation"
	"dirpx.dev/dxword/dxcore/model/word"
)

type rule func(s *stems) *word.Word

func suffix(stem func(*stems) *word.Word, plain, voiced string) rule {
	return func(s *stems) *word.Word {
		if s.voiced {
			return stem(s).Append(voiced)
		}
		return stem(s).Append(plain)
	}
}

func ending(stem func(*stems) *word.Word, end string) rule {
	return suffix(stem, end, end)
}

func self(s *stems) *word.Word { return s.self }
func nai(s *stems) *word.Word  { return s.nai }
func masu(s *stems) *word.Word { return s.masu }
func ta(s *stems) *word.Word   { return s.ta }

type key = conjugation.Key

var (
	plain    = func(f conjugation.Form) key { return key{Form: f} }
	negative = func(f conjugation.Form) key { return key{Form: f, Negative: true} }
	polite   = func(f conjugation.Form) key { return key{Form: f, Polite: true} }
	both     = func(f conjugation.Form) key { return key{Form: f, Negative: true, Polite: true} }
)

var rules = map[key]rule{
	plain(conjugation.Present):    self,
	polite(conjugation.Present):   ending(masu, "ます"),
	negative(conjugation.Present): ending(nai, "ない"),
	both(conjugation.Present):     ending(masu, "ません"),

	plain(conjugation.Past):    suffix(ta, "た", "だ"),
	polite(conjugation.Past):   ending(masu, "ました"),
	negative(conjugation.Past): ending(nai, "なかった"),
	both(conjugation.Past):     ending(masu, "ませんでした"),

	plain(conjugation.Imperative):    func(s *stems) *word.Word { return s.imp },
	negative(conjugation.Imperative): ending(self, "な"),

	plain(conjugation.TeForm):    suffix(ta, "て", "で"),
	polite(conjugation.TeForm):   ending(masu, "まして"),
	negative(conjugation.TeForm): ending(nai, "なくて"),

	plain(conjugation.ConditionalEba):    ending(func(s *stems) *word.Word { return s.e }, "ば"),
	negative(conjugation.ConditionalEba): ending(nai, "なければ"),

	plain(conjugation.ConditionalRa):    suffix(ta, "たら", "だら"),
	polite(conjugation.ConditionalRa):   ending(masu, "ましたら"),
	negative(conjugation.ConditionalRa): ending(nai, "なかったら"),
	both(conjugation.ConditionalRa):     ending(masu, "ませんでしたら"),

	plain(conjugation.Presumptive):    ending(self, "だろう"),
	polite(conjugation.Presumptive):   ending(self, "でしょう"),
	negative(conjugation.Presumptive): ending(nai, "ないだろう"),
	both(conjugation.Presumptive):     ending(nai, "ないでしょう"),

	plain(conjugation.Volitional):  ending(func(s *stems) *word.Word { return s.vol }, "う"),
	polite(conjugation.Volitional): ending(masu, "ましょう"),
}

// Conjugate returns the verb in form f. It is ConjugateChain with a single
// form, so derived forms come back in their dictionary shape: 食べられる
// for Potential, 食べたい for Tai.
func (v *Verb) Conjugate(f conjugation.Form, opts ...conjugation.Option) (word.Wordlike, error) {
	return v.ConjugateChain([]conjugation.Form{f}, opts...)
}

// ConjugateChain applies forms left to right. Only Potential, Passive,
// Causative and Tai may be followed by another form; each of them derives
// a new word and hands it the rest of the chain. Options apply to the last
// form only. An empty chain means Present.
func (v *Verb) ConjugateChain(forms []conjugation.Form, opts ...conjugation.Option) (word.Wordlike, error) {
	out, err := v.chain(forms, opts)
	if err != nil {
		return nil, err
	}
	if v.prefix != nil {
		return word.MustCompose(v.prefix, out), nil
	}
	return out, nil
}

func (v *Verb) chain(forms []conjugation.Form, opts []conjugation.Option) (word.Wordlike, error) {
	if len(forms) == 0 {
		forms = []conjugation.Form{conjugation.Present}
	}
	head, tail := forms[0], forms[1:]
	if err := head.Validate(); err != nil {
		return nil, err
	}

	var derived conjugation.Conjugator
	var err error
	switch head {
	case conjugation.Potential:
		derived, err = NewIchidan(v.stems.pot.Append("る"))
	case conjugation.Passive:
		derived, err = NewIchidan(v.stems.pas.Append("れる"))
	case conjugation.Causative:
		derived, err = NewIchidan(v.stems.cau.Append("せる"))
	case conjugation.Tai:
		derived, err = adjective.NewI(v.stems.masu.Append("たい"))
	}
	if err != nil {
		return nil, err
	}
	if derived != nil {
		return derived.ConjugateChain(tail, opts...)
	}

	if len(tail) > 0 {
		return nil, &errors.ValidationError{
			Type:   "Verb",
			Field:  "forms",
			Reason: fmt.Sprintf("%s cannot be followed by %s", head, tail[0]),
			Value:  len(forms),
		}
	}
	k := conjugation.KeyOf(head, conjugation.Apply(opts...))
	r, ok := rules[k]
	if !ok {
		return nil, k.Err("Verb")
	}
	return r(&v.stems), nil
}
