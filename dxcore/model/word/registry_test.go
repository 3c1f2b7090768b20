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

package word_test

import (
	"errors"
	"sync"
	"testing"

	dxerrors "dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoMatch = errors.New("no match")

// tagged is a specialized compound that remembers which specializer built it.
type tagged struct {
	*word.Compound
	by string
}

func build(name string, accept func([]word.Wordlike) bool) word.BuildFunc {
	return func(words []word.Wordlike, ws []writing.Writing) (word.Wordlike, error) {
		if !accept(words) {
			return nil, errNoMatch
		}
		c, err := word.NewCompound(words, word.WithWritings(ws...))
		if err != nil {
			return nil, err
		}
		return tagged{Compound: c, by: name}, nil
	}
}

func always([]word.Wordlike) bool { return true }

func TestRegistry_Order(t *testing.T) {
	r := word.NewRegistry()
	r.MustRegister(word.Specializer{Name: "low", Priority: 1, Build: build("low", always)})
	r.MustRegister(word.Specializer{Name: "zeta", Priority: 5, Build: build("zeta", always)})
	r.MustRegister(word.Specializer{Name: "alpha", Priority: 5, Build: build("alpha", always)})

	var names []string
	for _, s := range r.Specializers() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"alpha", "zeta", "low"}, names)

	got, err := r.Compose([]word.Wordlike{word.MustNew("電話"), word.MustNew("番号")}, nil)
	require.NoError(t, err)
	require.IsType(t, tagged{}, got)
	assert.Equal(t, "alpha", got.(tagged).by, "ties break by name")
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	twoWords := func(ws []word.Wordlike) bool { return len(ws) == 2 }
	r := word.NewRegistry()
	r.MustRegister(word.Specializer{Name: "pair", Priority: 10, Build: build("pair", twoWords)})
	r.MustRegister(word.Specializer{Name: "any", Priority: 0, Build: build("any", always)})

	a, b := word.MustNew("日"), word.MustNew("本")

	got, err := r.Compose([]word.Wordlike{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, "pair", got.(tagged).by)

	got, err = r.Compose([]word.Wordlike{a, b, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, "any", got.(tagged).by, "a rejection falls through to the next specializer")
}

func TestRegistry_Fallback(t *testing.T) {
	r := word.NewRegistry()
	r.MustRegister(word.Specializer{Name: "never", Build: build("never", func([]word.Wordlike) bool { return false })})
	r.MustRegister(word.Specializer{Name: "nil", Build: func([]word.Wordlike, []writing.Writing) (word.Wordlike, error) {
		return nil, nil
	}})

	got, err := r.Compose([]word.Wordlike{word.MustNew("電話"), word.MustNew("番号")}, nil)
	require.NoError(t, err)
	c, ok := got.(*word.Compound)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, []string{"電話番号"}, word.Strings(c))

	got, err = r.Compose([]word.Wordlike{word.MustNew("電話")}, writing.FromStrings("でんわ"))
	require.NoError(t, err)
	assert.Equal(t, []string{"でんわ"}, word.Strings(got), "explicit writings are kept")

	_, err = r.Compose(nil, nil)
	var empty *dxerrors.EmptyWordError
	assert.ErrorAs(t, err, &empty)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := word.NewRegistry()
	require.NoError(t, r.Register(word.Specializer{Name: "one", Build: build("one", always)}))

	tests := []struct {
		name      string
		spec      word.Specializer
		wantField string
	}{
		{"duplicate", word.Specializer{Name: "one", Build: build("one", always)}, "Name"},
		{"empty name", word.Specializer{Build: build("", always)}, "Name"},
		{"nil build", word.Specializer{Name: "two"}, "Build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.spec)
			var invalid *dxerrors.ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}

	assert.Len(t, r.Specializers(), 1)
	assert.Panics(t, func() { r.MustRegister(word.Specializer{Name: "one", Build: build("one", always)}) })
}

func TestRegistry_Concurrent(t *testing.T) {
	r := word.NewRegistry()
	r.MustRegister(word.Specializer{Name: "any", Build: build("any", always)})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Compose([]word.Wordlike{word.MustNew("日"), word.MustNew("本")}, nil)
			assert.NoError(t, err)
			assert.Equal(t, "日本", got.String())
		}()
	}
	wg.Wait()
}

func TestCompound(t *testing.T) {
	words := []word.Wordlike{word.MustNew("日本", "にほん"), word.MustNew("語", "ご")}
	c, err := word.NewCompound(words)
	require.NoError(t, err)

	assert.Equal(t, "日本語", c.String())
	assert.Equal(t, []string{"にほんご"}, word.Strings(word.MustNew(c.Readings())))
	assert.IsType(t, word.DefaultCombine{}, c.Combiner())
	assert.Len(t, c.Words(), 2)
	assert.True(t, c.Equal(word.MustNew("にほんご", "日本語")))
	assert.False(t, c.Equal(word.MustNew("日本語")))

	data, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["日本語","にほんご"]`, string(data))

	explicit, err := word.NewCompound(words, word.WithWritings(writing.FromStrings("ニホンゴ")...))
	require.NoError(t, err)
	assert.Equal(t, []string{"ニホンゴ"}, word.Strings(explicit))

	_, err = word.NewCompound(nil)
	var empty *dxerrors.EmptyWordError
	assert.ErrorAs(t, err, &empty)
}

func TestCompound_Append(t *testing.T) {
	c, err := word.NewCompound([]word.Wordlike{word.MustNew("日本", "にほん"), word.MustNew("語", "ご")})
	require.NoError(t, err)

	got := c.Append("です")
	assert.Equal(t, []string{"日本語です", "にほんごです"}, word.Strings(got))

	assert.Same(t, c, c.Add(nil))
}

func TestCompound_ConcurrentWritings(t *testing.T) {
	c, err := word.NewCompound([]word.Wordlike{word.MustNew("東", "ひがし"), word.MustNew("京", "きょう")})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"東京", "ひがしきょう"}, word.Strings(c))
		}()
	}
	wg.Wait()
}
