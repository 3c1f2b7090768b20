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

package conjugation

import (
	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/word"
)

// Options are the modifiers of a conjugation.
type Options struct {
	Negative bool
	Polite   bool
}

// Option sets a conjugation modifier.
type Option func(*Options)

// Negative requests the negative variant: 食べない.
func Negative() Option {
	return func(o *Options) { o.Negative = true }
}

// Polite requests the polite variant: 食べます.
func Polite() Option {
	return func(o *Options) { o.Polite = true }
}

// Apply folds opts into an Options value.
func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// With returns opts as Option funcs, for passing a resolved set of
// options on to another conjugator.
func (o Options) With() []Option {
	var out []Option
	if o.Negative {
		out = append(out, Negative())
	}
	if o.Polite {
		out = append(out, Polite())
	}
	return out
}

// Key indexes a conjugation table.
type Key struct {
	Form     Form
	Negative bool
	Polite   bool
}

// KeyOf returns the table key for f under o.
func KeyOf(f Form, o Options) Key {
	return Key{Form: f, Negative: o.Negative, Polite: o.Polite}
}

// Err returns the *InvalidConjugationError for a key with no rule.
func (k Key) Err(typeName string) error {
	return &errors.InvalidConjugationError{
		Type:     typeName,
		Form:     k.Form.String(),
		Negative: k.Negative,
		Polite:   k.Polite,
	}
}

// Conjugator is implemented by verbs and adjectives.
type Conjugator interface {
	word.Wordlike

	// Conjugate returns the word in the given form.
	Conjugate(form Form, opts ...Option) (word.Wordlike, error)

	// ConjugateChain applies a sequence of forms. Every form except the
	// last must derive a new word (Potential, Passive, Causative, Tai);
	// the options apply at the end of the chain.
	ConjugateChain(forms []Form, opts ...Option) (word.Wordlike, error)
}
