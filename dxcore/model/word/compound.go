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
	"encoding/json"
	"sync"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Compound is a word built from constituent words and a Combiner. Its
// writings are computed on first access and cached; constituents are
// immutable, so the cache never needs invalidation.
//
// A Compound may instead carry an explicit writing set supplied at
// construction, in which case the combiner is never consulted.
type Compound struct {
	words    []Wordlike
	combiner Combiner
	explicit []writing.Writing

	once     sync.Once
	writings []writing.Writing
}

var _ Wordlike = (*Compound)(nil)

// Option configures a Compound.
type Option func(*Compound)

// WithCombiner sets the combine strategy. The default is DefaultCombine.
func WithCombiner(c Combiner) Option {
	return func(cp *Compound) {
		if c != nil {
			cp.combiner = c
		}
	}
}

// WithWritings overrides the derived writings with an explicit set.
func WithWritings(ws ...writing.Writing) Option {
	return func(cp *Compound) {
		if len(ws) > 0 {
			cp.explicit = clone(ws)
		}
	}
}

// NewCompound builds a compound over words. It fails with *EmptyWordError
// when words is empty and with the combiner's Check error when the words do
// not fit the combiner.
//
// NewCompound never specializes; use Compose or Registry.Compose for that.
func NewCompound(words []Wordlike, opts ...Option) (*Compound, error) {
	if len(words) == 0 {
		return nil, &errors.EmptyWordError{Type: "Compound"}
	}
	c := &Compound{
		words:    append([]Wordlike(nil), words...),
		combiner: DefaultCombine{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.combiner.Check(c.words); err != nil {
		return nil, err
	}
	return c, nil
}

// Words returns the constituents in order.
func (c *Compound) Words() []Wordlike {
	return append([]Wordlike(nil), c.words...)
}

// Combiner returns the combine strategy.
func (c *Compound) Combiner() Combiner {
	return c.combiner
}

// Writings returns the explicit writings if any, else the combined
// writings of the constituents.
func (c *Compound) Writings() []writing.Writing {
	if c.explicit != nil {
		return clone(c.explicit)
	}
	c.once.Do(func() {
		c.writings = c.combiner.Combine(c.words)
	})
	return clone(c.writings)
}

// Readings returns the compound's readings.
func (c *Compound) Readings() []writing.Writing {
	return readings(c.Writings())
}

// String returns the first writing.
func (c *Compound) String() string {
	ws := c.Writings()
	if len(ws) == 0 {
		return ""
	}
	return ws[0].String()
}

// Add composes c with other through the default registry.
func (c *Compound) Add(other Wordlike) Wordlike {
	if other == nil {
		return c
	}
	return MustCompose(c, other)
}

// Append composes c with a single-writing word made of s.
func (c *Compound) Append(s string) Wordlike {
	return MustCompose(c, &Word{writings: []writing.Writing{writing.New(s)}})
}

// Equal reports whether other is a Wordlike with the same set of writings.
func (c *Compound) Equal(other any) bool {
	o, ok := other.(Wordlike)
	if !ok || o == nil {
		return false
	}
	return Equal(c, o)
}

// MarshalJSON encodes the compound's writings as a JSON array.
func (c *Compound) MarshalJSON() ([]byte, error) {
	return json.Marshal(Strings(c))
}
