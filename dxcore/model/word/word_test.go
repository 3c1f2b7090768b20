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
	"encoding/json"
	"testing"

	dxerrors "dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model"
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		parts        []any
		wantWritings []string
		wantReadings []string
	}{
		{"kanji", []any{"日"}, []string{"日"}, []string{}},
		{"kana", []any{"ひ"}, []string{"ひ"}, []string{"ひ"}},
		{"both", []any{"ひ", "日"}, []string{"ひ", "日"}, []string{"ひ"}},
		{"katakana", []any{"ズボン"}, []string{"ズボン"}, []string{"ズボン"}},
		{"writing values", []any{writing.New("食べる"), writing.New("たべる")}, []string{"食べる", "たべる"}, []string{"たべる"}},
		{"string slice", []any{[]string{"月", "つき"}}, []string{"月", "つき"}, []string{"つき"}},
		{"nested word", []any{word.MustNew("日本語", "にほんご"), "ニホンゴ"}, []string{"日本語", "にほんご", "ニホンゴ"}, []string{"にほんご", "ニホンゴ"}},
		{"duplicates kept", []any{"日", "日"}, []string{"日", "日"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := word.New(tt.parts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWritings, word.Strings(w))
			got := make([]string, 0)
			for _, r := range w.Readings() {
				got = append(got, r.String())
			}
			assert.Equal(t, tt.wantReadings, got)
			assert.NoError(t, w.Validate())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := word.New()
	var empty *dxerrors.EmptyWordError
	assert.ErrorAs(t, err, &empty)

	_, err = word.New([]string{})
	assert.ErrorAs(t, err, &empty)

	_, err = word.New(42)
	var invalid *dxerrors.ValidationError
	assert.ErrorAs(t, err, &invalid)

	assert.Panics(t, func() { word.MustNew() })
}

func TestWord_Equal(t *testing.T) {
	day := word.MustNew("ひ", "日")
	assert.True(t, day.Equal(word.MustNew("日", "ひ")), "order must not matter")
	assert.True(t, day.Equal(word.MustNew("日", "ひ", "日")), "multiplicity must not matter")
	assert.False(t, day.Equal(word.MustNew("ひ", "火")))
	assert.False(t, day.Equal(word.MustNew("ひ")))
	assert.False(t, day.Equal("日"))
	assert.False(t, day.Equal(nil))
}

func TestWord_Reconstruct(t *testing.T) {
	words := []*word.Word{
		word.MustNew("日"),
		word.MustNew("食べる", "たべる"),
		word.MustNew("日本語", "にほんご", "ニホンゴ"),
	}
	for _, w := range words {
		t.Run(w.String(), func(t *testing.T) {
			again, err := word.New(w.Writings())
			require.NoError(t, err)
			assert.True(t, word.Equal(w, again))
			assert.True(t, word.Equal(w, word.MustNew(w)))
		})
	}
}

func TestWord_SplitOkurigana(t *testing.T) {
	tests := []struct {
		name       string
		word       *word.Word
		n          int
		wantStem   *word.Word
		wantSuffix string
		wantErr    bool
	}{
		{"ichidan", word.MustNew("食べる", "たべる"), 1, word.MustNew("食べ", "たべ"), "る", false},
		{"two runes", word.MustNew("あたまがよい"), 2, word.MustNew("あたまが"), "よい", false},
		{"whole writing", word.MustNew("ある"), 2, word.MustNew(""), "ある", false},
		{"different suffixes", word.MustNew("良い", "いい"), 2, nil, "", true},
		{"not uniform", word.MustNew("食べる", "たべない"), 1, nil, "", true},
		{"too short", word.MustNew("る", "たべる"), 2, nil, "", true},
		{"zero", word.MustNew("たべる"), 0, nil, "", true},
		{"negative", word.MustNew("たべる"), -1, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, suffix, err := tt.word.SplitOkurigana(tt.n)
			if tt.wantErr {
				var split *dxerrors.NotOkuriganaError
				require.ErrorAs(t, err, &split)
				assert.Equal(t, tt.n, split.Count)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuffix, suffix)
			assert.True(t, word.Equal(tt.wantStem, stem), "stem = %v", word.Strings(stem))
			assert.True(t, word.Equal(tt.word, stem.Append(suffix)), "stem + suffix must rebuild the word")
		})
	}
}

func TestWord_Append(t *testing.T) {
	w := word.MustNew("食べ", "たべ")
	got := w.Append("る")
	assert.True(t, got.Equal(word.MustNew("食べる", "たべる")))
	assert.Equal(t, []string{"食べ", "たべ"}, word.Strings(w), "append must not modify the receiver")

	apple := word.MustNew("リンゴ").Append("が")
	assert.Equal(t, "リンゴが", apple.Readings()[0].String())
}

func TestWord_AddWord(t *testing.T) {
	phone := word.MustNew("電話")
	number := word.MustNew("番号")

	got := phone.Add(number)
	compound, ok := got.(*word.Compound)
	require.True(t, ok, "Add of two words must produce a compound, got %T", got)
	assert.Contains(t, word.Strings(compound), "電話番号")
	assert.True(t, word.Equal(compound, word.MustNew("電話番号")))
	assert.Len(t, compound.Words(), 2)

	assert.Same(t, phone, phone.Add(nil))
}

func TestWord_AddCompound(t *testing.T) {
	cuisine := word.MustNew("日本", "にほん").Add(word.MustNew("料理", "りょうり"))
	tasty := word.MustNew("おいしい").Add(cuisine)

	_, ok := tasty.(*word.Compound)
	require.True(t, ok)
	assert.Contains(t, word.Strings(tasty), "おいしい日本料理")

	var readings []string
	for _, r := range tasty.Readings() {
		readings = append(readings, r.String())
	}
	assert.Contains(t, readings, "おいしいにほんりょうり")
}

func TestWord_String(t *testing.T) {
	tests := []struct {
		first, second, want string
	}{
		{"たべる", "食べる", "たべる"},
		{"食べる", "たべる", "食べる"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			w := word.MustNew(tt.first, tt.second)
			assert.Equal(t, tt.want, w.String())
			assert.Equal(t, tt.want, w.Redacted())
		})
	}
}

func TestWord_Serialization(t *testing.T) {
	w := word.MustNew("日本語", "にほんご")

	data, err := model.ToJSON(w)
	require.NoError(t, err)
	assert.JSONEq(t, `["日本語","にほんご"]`, string(data))

	got := &word.Word{}
	require.NoError(t, model.FromJSON(data, got))
	assert.True(t, got.Equal(w))

	yml, err := model.ToYAML(w)
	require.NoError(t, err)
	fromYAML := &word.Word{}
	require.NoError(t, model.FromYAML(yml, fromYAML))
	assert.True(t, fromYAML.Equal(w))

	scalar := &word.Word{}
	require.NoError(t, yaml.Unmarshal([]byte("ページ\n"), scalar))
	assert.Equal(t, []string{"ページ"}, word.Strings(scalar))

	assert.Error(t, json.Unmarshal([]byte(`[]`), &word.Word{}))
	assert.Error(t, (&word.Word{}).Validate())
	assert.True(t, (&word.Word{}).IsZero())
	assert.Equal(t, "Word", w.TypeName())
}
