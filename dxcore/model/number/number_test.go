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

package number_test

import (
	"encoding/json"
	"math"
	"testing"

	dxerrors "dirpx.dev/dxword/dxcore/errors"
	"dirpx.dev/dxword/dxcore/model/number"
	"dirpx.dev/dxword/dxcore/model/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readings(w word.Wordlike) []string {
	var out []string
	for _, r := range w.Readings() {
		out = append(out, r.String())
	}
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		value int64
		kana  string
		kanji string
	}{
		{1, "いち", "一"},
		{2, "に", "二"},
		{3, "さん", "三"},
		{4, "よん", "四"},
		{5, "ご", "五"},
		{6, "ろく", "六"},
		{7, "なな", "七"},
		{8, "はち", "八"},
		{9, "きゅう", "九"},
		{10, "じゅう", "十"},
		{42, "よんじゅうに", "四十二"},
		{600, "ろっぴゃく", "六百"},
		{800, "はっぴゃく", "八百"},
		{1110, "せんひゃくじゅう", "千百十"},
		{1234, "せんにひゃくさんじゅうよん", "千二百三十四"},
		{1334, "せんさんびゃくさんじゅうよん", "千三百三十四"},
		{3000, "さんぜん", "三千"},
		{8000, "はっせん", "八千"},
		{10000, "いちまん", "一万"},
		{10010, "いちまんじゅう", "一万十"},
		{20000000, "にせんまん", "二千万"},
		{100010000, "いちおくいちまん", "一億一万"},
		{123456789, "いちおくにせんさんびゃくよんじゅうごまんろくせんななひゃくはちじゅうきゅう", "一億二千三百四十五万六千七百八十九"},
		{1000000000000, "いちちょう", "一兆"},
	}

	for _, tt := range tests {
		t.Run(tt.kanji, func(t *testing.T) {
			n, err := number.New(tt.value)
			require.NoError(t, err)

			ws := word.Strings(n)
			require.NotEmpty(t, ws)
			assert.Equal(t, n.String(), ws[0], "decimal writing comes first")
			assert.Contains(t, ws, tt.kanji)
			assert.Contains(t, readings(n), tt.kana)
			assert.Equal(t, tt.value, n.Value())

			parsed, err := number.Parse(tt.kanji)
			require.NoError(t, err)
			assert.Equal(t, tt.value, parsed.Value())
			assert.True(t, parsed.Equal(n))
		})
	}
}

func TestNew_Zero(t *testing.T) {
	n, err := number.New(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "零", "れい", "ゼロ"}, word.Strings(n))

	for _, s := range []string{"零", "〇", "0"} {
		parsed, err := number.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, int64(0), parsed.Value())
	}
}

func TestNew_Negative(t *testing.T) {
	_, err := number.New(-1)
	var invalid *dxerrors.InvalidNumeralError
	assert.ErrorAs(t, err, &invalid)
	assert.Panics(t, func() { number.MustNew(-1) })
}

func TestNew_Cached(t *testing.T) {
	assert.Same(t, number.MustNew(42), number.MustNew(42))
}

func TestNumber_Equal(t *testing.T) {
	a := number.MustNew(42)
	b, err := number.Parse("四十二")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(number.MustNew(43)))
	assert.False(t, a.Equal(42))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"４２", 42},
		{"十", 10},
		{"百十", 110},
		{"万", 10000},
		{"十万", 100000},
		{"二億五千万", 250000000},
		{"九百二十二京三千三百七十二兆三百六十八億五千四百七十七万五千八百七", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := number.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Value())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"adjacent digits", "一二"},
		{"not a numeral", "木"},
		{"repeated place", "十十"},
		{"place out of order", "十百"},
		{"myriads out of order", "万億"},
		{"repeated myriad", "万万"},
		{"empty myriad block", "一億万"},
		{"mixed script", "4十"},
		{"decimal overflow", "9223372036854775808"},
		{"kanji overflow", "千京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := number.Parse(tt.input)
			var invalid *dxerrors.InvalidNumeralError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	values := []int64{
		1, 11, 19, 99, 101, 999, 1001, 9999,
		10001, 99999999, 100000000, 100000001,
		1234567890123456, 9999999999999999,
		math.MaxInt64,
	}
	// a spread of values across the whole range
	for v := int64(7); v < 9999999999999999; v = v*13 + 5 {
		values = append(values, v)
	}

	for _, v := range values {
		n := number.MustNew(v)
		kanji := word.Strings(n.Spelled())[0]
		got, err := number.Decode(kanji)
		require.NoError(t, err, kanji)
		assert.Equal(t, v, got, kanji)
	}
}

func TestSpecializers(t *testing.T) {
	three := number.DigitOf(3)
	require.NotNil(t, three)
	assert.Nil(t, number.DigitOf(0))
	assert.Nil(t, number.DigitOf(10))

	term, ok := three.Add(number.Hundred).(*number.Term)
	require.True(t, ok)
	assert.Equal(t, int64(300), term.Value())
	assert.Equal(t, []string{"三百", "さんびゃく"}, word.Strings(term))
	assert.Same(t, number.Hundred, term.Position())

	one, err := number.NewTerm(number.DigitOf(1), number.Ten)
	require.NoError(t, err)
	assert.Equal(t, []string{"十", "じゅう"}, word.Strings(one), "one is hidden before a place marker")

	group, ok := number.DigitOf(4).Add(term).(*number.Group)
	require.True(t, ok)
	assert.Equal(t, int64(304), group.Value())
	assert.Equal(t, []string{"三百四", "さんびゃくよん"}, word.Strings(group), "parts are ordered by place value")

	scaled, ok := group.Add(number.Man).(*number.Scaled)
	require.True(t, ok)
	assert.Equal(t, int64(3040000), scaled.Value())
	assert.Equal(t, []string{"三百四万", "さんびゃくよんまん"}, word.Strings(scaled))
	assert.Same(t, number.Man, scaled.Myriad())
}

func TestNewGroup_Errors(t *testing.T) {
	_, err := number.NewGroup()
	assert.Error(t, err)

	_, err = number.NewGroup(number.DigitOf(1), number.DigitOf(2))
	assert.Error(t, err, "two ones digits")

	_, err = number.NewGroup(word.MustNew("木"))
	assert.Error(t, err)

	_, err = number.NewTerm(nil, number.Ten)
	assert.Error(t, err)

	_, err = number.NewScaled(nil, number.Man)
	assert.Error(t, err)
}

func TestNumber_Serialization(t *testing.T) {
	n := number.MustNew(1334)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "1334", string(data))

	var fromJSON number.Number
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.True(t, fromJSON.Equal(n))

	var fromKanji number.Number
	require.NoError(t, json.Unmarshal([]byte(`"千三百三十四"`), &fromKanji))
	assert.Equal(t, int64(1334), fromKanji.Value())

	assert.Error(t, json.Unmarshal([]byte(`"木"`), &number.Number{}))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &number.Number{}))

	var fromYAML number.Number
	require.NoError(t, yaml.Unmarshal([]byte("二十\n"), &fromYAML))
	assert.Equal(t, int64(20), fromYAML.Value())

	out, err := yaml.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "1334\n", string(out))

	assert.NoError(t, n.Validate())
	assert.Error(t, (&number.Number{}).Validate())
	assert.True(t, (&number.Number{}).IsZero())
	assert.False(t, number.MustNew(0).IsZero())
}
