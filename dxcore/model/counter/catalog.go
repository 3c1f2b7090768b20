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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"dirpx.dev/rxmerr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed counters.yaml
var builtinDefinitions []byte

// definitionFile is the top-level layout of a counter definition file.
type definitionFile struct {
	Counters []Definition `yaml:"counters"`
}

// LoadDefinitions decodes and validates a counter definition file. Every
// invalid entry is reported, not only the first.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file definitionFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &errors.UnmarshalError{Type: "Definition", Reason: err.Error()}
	}
	if err := model.ValidateAll(file.Counters); err != nil {
		return nil, err
	}
	return file.Counters, nil
}

// Catalog is a set of counters addressable by name.
type Catalog struct {
	byName map[string]*Counter
	names  []string
}

// NewCatalog builds counters from defs. Duplicate names and invalid
// definitions are collected into one error.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*Counter, len(defs))}
	errs := rxmerr.NewCollector()
	for i, d := range defs {
		if _, dup := c.byName[d.Name]; dup {
			errs.Append(fmt.Errorf("definition[%d]: %w", i, &errors.ValidationError{
				Type: "Definition", Field: "name", Reason: "duplicate name " + d.Name, Value: d.Name,
			}))
			continue
		}
		counter, err := Define(d)
		if err != nil {
			errs.Append(fmt.Errorf("definition[%d]: %w", i, err))
			continue
		}
		c.byName[d.Name] = counter
		c.names = append(c.names, d.Name)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load decodes a definition file into a catalog.
func Load(r io.Reader) (*Catalog, error) {
	log := Logger()
	defs, err := LoadDefinitions(r)
	if err != nil {
		log.Warn("rejected counter definitions", zap.Error(err))
		return nil, err
	}
	c, err := NewCatalog(defs)
	if err != nil {
		log.Warn("rejected counter definitions", zap.Error(err))
		return nil, err
	}
	log.Debug("loaded counter definitions", zap.Int("counters", len(c.names)), zap.Strings("names", c.names))
	return c, nil
}

// Lookup returns the counter registered under name.
func (c *Catalog) Lookup(name string) (*Counter, error) {
	counter, ok := c.byName[name]
	if !ok {
		return nil, &errors.ValidationError{Type: "Counter", Field: "name", Reason: "unknown counter " + name, Value: name}
	}
	return counter, nil
}

// Names returns the counter names in definition order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

var builtins = mustLoadBuiltins()

func mustLoadBuiltins() *Catalog {
	c, err := Load(bytes.NewReader(builtinDefinitions))
	if err != nil {
		panic("counter: invalid built-in definitions: " + err.Error())
	}
	return c
}

// Builtins returns the catalog of built-in counters.
func Builtins() *Catalog { return builtins }

// Lookup returns the built-in counter registered under name.
func Lookup(name string) (*Counter, error) {
	return builtins.Lookup(name)
}

func builtin(name string) *Counter {
	return Must(builtins.Lookup(name))
}

// DayHour returns 時, the o'clock counter.
func DayHour() *Counter { return builtin("hour") }

// MonthDay returns 日, the day-of-month counter.
func MonthDay() *Counter { return builtin("day") }

// Month returns 月, the month-name counter.
func Month() *Counter { return builtin("month") }

// Person returns 人.
func Person() *Counter { return builtin("person") }

// Tsu returns the native つ counter.
func Tsu() *Counter { return builtin("tsu") }

// Year returns 年.
func Year() *Counter { return builtin("nen") }
