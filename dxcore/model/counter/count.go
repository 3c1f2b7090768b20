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

package counter

import (
	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/number"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Count is a number followed by a counter: 三匹, 二十歳.
type Count struct {
	*word.Compound
	number  *number.Number
	counter *Counter
}

// NewCount attaches c to n with the counter's combiner.
func NewCount(n *number.Number, c *Counter) (*Count, error) {
	return newCount(n, c, nil)
}

func newCount(n *number.Number, c *Counter, ws []writing.Writing) (*Count, error) {
	if n == nil || c == nil {
		return nil, &errors.ValidationError{Type: "Count", Reason: "number and counter are required"}
	}
	cp, err := word.NewCompound([]word.Wordlike{n, c}, word.WithCombiner(c.combiner), word.WithWritings(ws...))
	if err != nil {
		return nil, err
	}
	return &Count{Compound: cp, number: n, counter: c}, nil
}

// Of counts n items with c.
func Of(n int64, c *Counter) (*Count, error) {
	num, err := number.New(n)
	if err != nil {
		return nil, err
	}
	return NewCount(num, c)
}

// Value returns the counted number.
func (c *Count) Value() int64 { return c.number.Value() }

// Number returns the number constituent.
func (c *Count) Number() *number.Number { return c.number }

// Counter returns the counter constituent.
func (c *Count) Counter() *Counter { return c.counter }

// Add composes c with other through the default registry.
func (c *Count) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return c
	}
	return word.MustCompose(c, other)
}

var errNotCount = &errors.ValidationError{Type: "Count", Reason: "expected a number and a counter"}

func init() {
	word.MustRegister(word.Specializer{
		Name:     "counter.count",
		Priority: 10,
		Build: func(words []word.Wordlike, ws []writing.Writing) (word.Wordlike, error) {
			if len(words) != 2 {
				return nil, errNotCount
			}
			n, ok := words[0].(*number.Number)
			c, ok2 := words[1].(*Counter)
			if !ok || !ok2 {
				return nil, errNotCount
			}
			return newCount(n, c, ws)
		},
	})
}
