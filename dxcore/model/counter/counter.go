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

// Package counter provides Japanese counter words and the counts formed by
// attaching them to numbers.
//
// A Counter pairs a word such as 匹/ひき with the combine strategy and
// exception table that govern how a preceding number attaches to it:
//
//	c := counter.Must(counter.Lookup("hiki"))
//	cnt, _ := counter.Of(3, c)
//	word.Strings(cnt) // [3匹 三匹 さんびき]
//
// The built-in counters come from an embedded YAML table. More can be
// decoded from any reader with LoadDefinitions. Importing the package
// registers the count specializer, so number.New(3).Add(c) also yields a
// *Count.
package counter

import (
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Counter is a counter word with its combine rule.
type Counter struct {
	name       string
	w          *word.Word
	strategy   word.Strategy
	exceptions map[int64][]string
	combiner   word.Combiner
}

var _ word.Wordlike = (*Counter)(nil)

// New returns a standard counter with no exceptions, named after its first
// writing.
func New(parts ...any) (*Counter, error) {
	w, err := word.New(parts...)
	if err != nil {
		return nil, err
	}
	return &Counter{
		name:     w.String(),
		w:        w,
		strategy: word.StandardStrategy,
		combiner: word.StandardCombine{},
	}, nil
}

// Define builds a counter from a validated definition.
func Define(d Definition) (*Counter, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	w, err := word.New(d.Writings)
	if err != nil {
		return nil, err
	}
	exceptions := maps.Clone(d.Exceptions)
	combiner, err := d.Strategy.Combiner(exceptions)
	if err != nil {
		return nil, err
	}
	return &Counter{
		name:       d.Name,
		w:          w,
		strategy:   d.Strategy,
		exceptions: exceptions,
		combiner:   combiner,
	}, nil
}

// Must returns c or panics if err is non-nil.
func Must(c *Counter, err error) *Counter {
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the lookup name.
func (c *Counter) Name() string { return c.name }

// Strategy returns the combine strategy.
func (c *Counter) Strategy() word.Strategy { return c.strategy }

// Combiner returns the combiner used to attach a number.
func (c *Counter) Combiner() word.Combiner { return c.combiner }

// Exception returns the irregular readings for value v, if any.
func (c *Counter) Exception(v int64) ([]string, bool) {
	r, ok := c.exceptions[v]
	return slices.Clone(r), ok
}

// Word returns the counter word itself.
func (c *Counter) Word() *word.Word { return c.w }

func (c *Counter) Writings() []writing.Writing { return c.w.Writings() }
func (c *Counter) Readings() []writing.Writing { return c.w.Readings() }
func (c *Counter) String() string              { return c.w.String() }

// Definition describes a counter in configuration files:
//
//	- name: hour
//	  writings: [時, じ]
//	  strategy: number
//	  exceptions:
//	    4: [よじ]
//
// An omitted strategy means "default", which attaches plainly.
type Definition struct {
	Name       string             `yaml:"name" json:"name"`
	Writings   []string           `yaml:"writings" json:"writings"`
	Strategy   word.Strategy      `yaml:"strategy" json:"strategy"`
	Exceptions map[int64][]string `yaml:"exceptions,omitempty" json:"exceptions,omitempty"`
}

// TypeName returns "Definition".
func (d Definition) TypeName() string { return "Definition" }

// Validate checks that the definition can be built.
func (d Definition) Validate() error {
	if d.Name == "" {
		return &errors.ValidationError{Type: "Definition", Field: "name", Reason: "must not be empty"}
	}
	if len(d.Writings) == 0 {
		return &errors.ValidationError{Type: "Definition", Field: "writings", Reason: "at least one writing is required", Value: d.Name}
	}
	for _, w := range d.Writings {
		if w == "" {
			return &errors.ValidationError{Type: "Definition", Field: "writings", Reason: "empty writing", Value: d.Name}
		}
	}
	if err := d.Strategy.Validate(); err != nil {
		return err
	}
	if len(d.Exceptions) > 0 && d.Strategy == word.DefaultStrategy {
		return &errors.ValidationError{Type: "Definition", Field: "exceptions", Reason: "the default strategy takes no exceptions", Value: d.Name}
	}
	for _, v := range slices.Sorted(maps.Keys(d.Exceptions)) {
		if v < 0 {
			return &errors.ValidationError{Type: "Definition", Field: "exceptions", Reason: fmt.Sprintf("negative value %d", v), Value: d.Name}
		}
		readings := d.Exceptions[v]
		if len(readings) == 0 {
			return &errors.ValidationError{Type: "Definition", Field: "exceptions", Reason: fmt.Sprintf("no readings for %d", v), Value: d.Name}
		}
		for _, r := range readings {
			if _, err := writing.NewReading(r); err != nil {
				return &errors.ValidationError{Type: "Definition", Field: "exceptions", Reason: err.Error(), Value: d.Name}
			}
		}
	}
	return nil
}
