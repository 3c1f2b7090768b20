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
	"cmp"
	"fmt"
	"slices"
	"sync"

	"dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/writing"
	"go.uber.org/zap"
)

// BuildFunc tries to build a specialized compound from words. It returns an
// error when the words do not match its pattern; that error is expected
// control flow, not a failure. writings is the explicit override, or nil.
type BuildFunc func(words []Wordlike, writings []writing.Writing) (Wordlike, error)

// Specializer is a named, prioritized compound constructor.
type Specializer struct {
	// Name identifies the specializer in logs and must be unique within a
	// registry.
	Name string

	// Priority orders evaluation: higher first. Ties are broken by Name.
	Priority int

	// Build is the trial constructor.
	Build BuildFunc
}

// Registry holds specializers in evaluation order.
type Registry struct {
	mu    sync.RWMutex
	specs []Specializer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry backs Compose and the Add methods. Packages that define
// specialized compounds register with it from init.
var DefaultRegistry = NewRegistry()

// Register adds s. It fails if the name is empty or already taken or if
// Build is nil.
func (r *Registry) Register(s Specializer) error {
	if s.Name == "" {
		return &errors.ValidationError{Type: "Specializer", Field: "Name", Reason: "must not be empty"}
	}
	if s.Build == nil {
		return &errors.ValidationError{Type: "Specializer", Field: "Build", Reason: "must not be nil", Value: s.Name}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.specs {
		if existing.Name == s.Name {
			return &errors.ValidationError{Type: "Specializer", Field: "Name", Reason: fmt.Sprintf("%q already registered", s.Name), Value: s.Name}
		}
	}
	r.specs = append(r.specs, s)
	slices.SortStableFunc(r.specs, func(a, b Specializer) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(s Specializer) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Specializers returns the registered specializers in evaluation order.
func (r *Registry) Specializers() []Specializer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.specs)
}

// Compose evaluates specializers in priority order and returns the first
// successful build. When none applies, it returns a generic Compound with
// DefaultCombine (or the explicit writings, when given).
func (r *Registry) Compose(words []Wordlike, writings []writing.Writing) (Wordlike, error) {
	log := Logger()
	for _, s := range r.Specializers() {
		w, err := s.Build(words, writings)
		if err == nil && w == nil {
			err = &errors.ValidationError{Type: "Specializer", Reason: "build returned no word", Value: s.Name}
		}
		if err != nil {
			log.Debug("specializer rejected words",
				zap.String("specializer", s.Name),
				zap.Int("words", len(words)),
				zap.Error(err))
			continue
		}
		log.Debug("specialized compound",
			zap.String("specializer", s.Name),
			zap.Int("priority", s.Priority),
			zap.String("word", w.String()))
		return w, nil
	}

	c, err := NewCompound(words, WithWritings(writings...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds s to DefaultRegistry.
func Register(s Specializer) error {
	return DefaultRegistry.Register(s)
}

// MustRegister adds s to DefaultRegistry and panics on error.
func MustRegister(s Specializer) {
	DefaultRegistry.MustRegister(s)
}

// Compose composes words through DefaultRegistry.
func Compose(words ...Wordlike) (Wordlike, error) {
	return DefaultRegistry.Compose(words, nil)
}

// MustCompose is like Compose but panics on error. Composing non-nil words
// never fails, so it backs the Add methods of every word type.
func MustCompose(words ...Wordlike) Wordlike {
	w, err := DefaultRegistry.Compose(words, nil)
	if err != nil {
		panic(err)
	}
	return w
}
