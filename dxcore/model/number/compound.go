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

package number

import (
	"fmt"
	"slices"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Term is a digit multiplied by a place-value marker: 三百, 十.
type Term struct {
	*word.Compound
	digit    *Digit
	position *Position
}

// NewTerm combines d and p with the number strategy. The digit 1 is hidden,
// so NewTerm(DigitOf(1), Ten) is written 十.
func NewTerm(d *Digit, p *Position) (*Term, error) {
	return newTerm(d, p, nil)
}

func newTerm(d *Digit, p *Position, ws []writing.Writing) (*Term, error) {
	if d == nil || p == nil {
		return nil, &errors.ValidationError{Type: "Term", Reason: "digit and position are required"}
	}
	c, err := word.NewCompound([]word.Wordlike{d, p}, word.WithCombiner(p.combiner()), word.WithWritings(ws...))
	if err != nil {
		return nil, err
	}
	return &Term{Compound: c, digit: d, position: p}, nil
}

// Value returns digit × 10^exponent.
func (t *Term) Value() int64 { return t.digit.value * t.position.Multiplier() }

// Position returns the term's place-value marker.
func (t *Term) Position() *Position { return t.position }

// Add composes t with other through the default registry.
func (t *Term) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return t
	}
	return word.MustCompose(t, other)
}

// Group is one myriad block: up to one term per place value plus a
// trailing digit, for example 千二百三十四. Parts are kept in descending
// place-value order regardless of the order they were given in.
type Group struct {
	*word.Compound
	value int64
}

// NewGroup builds a group from Digit and Term parts. It fails when a part
// has another type or when two parts occupy the same place value.
func NewGroup(parts ...word.Wordlike) (*Group, error) {
	return newGroup(parts, nil)
}

func newGroup(parts []word.Wordlike, ws []writing.Writing) (*Group, error) {
	if len(parts) == 0 || len(parts) > 4 {
		return nil, &errors.ValidationError{Type: "Group", Reason: fmt.Sprintf("expected 1 to 4 parts, got %d", len(parts))}
	}

	var slots [4]word.Wordlike
	var value int64
	for _, part := range parts {
		var exp int
		switch p := part.(type) {
		case *Digit:
			value += p.value
		case *Term:
			exp = p.position.exp
			value += p.Value()
		default:
			return nil, &errors.ValidationError{Type: "Group", Reason: fmt.Sprintf("unexpected part %T", part)}
		}
		if slots[exp] != nil {
			return nil, &errors.ValidationError{Type: "Group", Reason: fmt.Sprintf("place 10^%d is taken twice", exp)}
		}
		slots[exp] = part
	}

	ordered := make([]word.Wordlike, 0, len(parts))
	for _, part := range slices.Backward(slots[:]) {
		if part != nil {
			ordered = append(ordered, part)
		}
	}

	c, err := word.NewCompound(ordered, word.WithWritings(ws...))
	if err != nil {
		return nil, err
	}
	return &Group{Compound: c, value: value}, nil
}

// Value returns the group's value, 1 to 9999.
func (g *Group) Value() int64 { return g.value }

// Add composes g with other; a Myriad yields a Scaled group.
func (g *Group) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return g
	}
	return word.MustCompose(g, other)
}

// Scaled is a group followed by its myriad marker: 二千万.
type Scaled struct {
	*word.Compound
	group  *Group
	myriad *Myriad
}

// NewScaled combines g with m.
func NewScaled(g *Group, m *Myriad) (*Scaled, error) {
	return newScaled(g, m, nil)
}

func newScaled(g *Group, m *Myriad, ws []writing.Writing) (*Scaled, error) {
	if g == nil || m == nil {
		return nil, &errors.ValidationError{Type: "Scaled", Reason: "group and myriad are required"}
	}
	c, err := word.NewCompound([]word.Wordlike{g, m}, word.WithWritings(ws...))
	if err != nil {
		return nil, err
	}
	return &Scaled{Compound: c, group: g, myriad: m}, nil
}

// Value returns the group value times the myriad multiplier.
func (s *Scaled) Value() int64 { return s.group.value * s.myriad.Multiplier() }

// Myriad returns the scale marker.
func (s *Scaled) Myriad() *Myriad { return s.myriad }

// Add composes s with other through the default registry.
func (s *Scaled) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return s
	}
	return word.MustCompose(s, other)
}

var errNoMatch = &errors.ValidationError{Type: "number", Reason: "words do not match"}

func init() {
	word.MustRegister(word.Specializer{
		Name:     "number.term",
		Priority: 20,
		Build: func(words []word.Wordlike, ws []writing.Writing) (word.Wordlike, error) {
			if len(words) != 2 {
				return nil, errNoMatch
			}
			d, ok := words[0].(*Digit)
			p, ok2 := words[1].(*Position)
			if !ok || !ok2 {
				return nil, errNoMatch
			}
			return newTerm(d, p, ws)
		},
	})
	word.MustRegister(word.Specializer{
		Name:     "number.scaled",
		Priority: 20,
		Build: func(words []word.Wordlike, ws []writing.Writing) (word.Wordlike, error) {
			if len(words) != 2 {
				return nil, errNoMatch
			}
			g, ok := words[0].(*Group)
			m, ok2 := words[1].(*Myriad)
			if !ok || !ok2 {
				return nil, errNoMatch
			}
			return newScaled(g, m, ws)
		},
	})
	word.MustRegister(word.Specializer{
		Name:     "number.group",
		Priority: 10,
		Build: func(words []word.Wordlike, ws []writing.Writing) (word.Wordlike, error) {
			return newGroup(words, ws)
		},
	})
}
