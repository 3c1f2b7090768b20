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
	"dirpx.dev/dxword/dxcore/model/word"
	"dirpx.dev/dxword/dxcore/model/writing"
)

// Digit is one of the numerals 1 through 9.
type Digit struct {
	w     *word.Word
	value int64
}

var _ word.Valuer = (*Digit)(nil)

var digits = [...]*Digit{
	nil,
	{word.MustNew("一", "いち"), 1},
	{word.MustNew("二", "に"), 2},
	{word.MustNew("三", "さん"), 3},
	{word.MustNew("四", "よん"), 4},
	{word.MustNew("五", "ご"), 5},
	{word.MustNew("六", "ろく"), 6},
	{word.MustNew("七", "なな"), 7},
	{word.MustNew("八", "はち"), 8},
	{word.MustNew("九", "きゅう"), 9},
}

// DigitOf returns the digit word for v, or nil when v is outside 1..9.
func DigitOf(v int64) *Digit {
	if v < 1 || v > 9 {
		return nil
	}
	return digits[v]
}

func (d *Digit) Value() int64                { return d.value }
func (d *Digit) Writings() []writing.Writing { return d.w.Writings() }
func (d *Digit) Readings() []writing.Writing { return d.w.Readings() }
func (d *Digit) String() string              { return d.w.String() }

// Add composes d with other; a Position yields a Term.
func (d *Digit) Add(other word.Wordlike) word.Wordlike {
	if other == nil {
		return d
	}
	return word.MustCompose(d, other)
}

// Position is a place-value marker inside a myriad group: 十, 百 or 千.
type Position struct {
	w          *word.Word
	exp        int
	exceptions map[int64][]string
}

// The place-value markers. The exception tables hold the readings that
// a digit takes in front of the marker when plain concatenation is wrong.
var (
	Ten      = &Position{w: word.MustNew("十", "じゅう"), exp: 1}
	Hundred  = &Position{w: word.MustNew("百", "ひゃく"), exp: 2, exceptions: map[int64][]string{3: {"さんびゃく"}, 6: {"ろっぴゃく"}, 8: {"はっぴゃく"}}}
	Thousand = &Position{w: word.MustNew("千", "せん"), exp: 3, exceptions: map[int64][]string{3: {"さんぜん"}, 8: {"はっせん"}}}
)

var positions = [...]*Position{nil, Ten, Hundred, Thousand}

// Exponent returns the power of ten the marker stands for.
func (p *Position) Exponent() int { return p.exp }

// Multiplier returns 10^Exponent.
func (p *Position) Multiplier() int64 { return pow10(p.exp) }

func (p *Position) Writings() []writing.Writing { return p.w.Writings() }
func (p *Position) Readings() []writing.Writing { return p.w.Readings() }
func (p *Position) String() string              { return p.w.String() }

func (p *Position) combiner() word.Combiner {
	return word.NumberCombine{Exceptions: p.exceptions, HideOne: true}
}

// Myriad is a base-10000 scale marker: 万, 億, 兆 or 京.
type Myriad struct {
	w   *word.Word
	exp int
}

// The scale markers, for 10^4, 10^8, 10^12 and 10^16.
var (
	Man  = &Myriad{w: word.MustNew("万", "まん"), exp: 1}
	Oku  = &Myriad{w: word.MustNew("億", "おく"), exp: 2}
	Chou = &Myriad{w: word.MustNew("兆", "ちょう"), exp: 3}
	Kei  = &Myriad{w: word.MustNew("京", "けい"), exp: 4}
)

var myriads = [...]*Myriad{nil, Man, Oku, Chou, Kei}

// Exponent returns the scale in myriads: 1 for 万, 4 for 京.
func (m *Myriad) Exponent() int { return m.exp }

// Multiplier returns 10000^Exponent.
func (m *Myriad) Multiplier() int64 { return pow10(4 * m.exp) }

func (m *Myriad) Writings() []writing.Writing { return m.w.Writings() }
func (m *Myriad) Readings() []writing.Writing { return m.w.Readings() }
func (m *Myriad) String() string              { return m.w.String() }

func pow10(exp int) int64 {
	v := int64(1)
	for range exp {
		v *= 10
	}
	return v
}

// lookup tables for decoding, keyed by the kanji writing.
var (
	digitRunes    = map[rune]int64{}
	positionRunes = map[rune]int{}
	myriadRunes   = map[rune]int{}
)

func init() {
	for _, d := range digits[1:] {
		digitRunes[[]rune(d.String())[0]] = d.value
	}
	for _, p := range positions[1:] {
		positionRunes[[]rune(p.String())[0]] = p.exp
	}
	for _, m := range myriads[1:] {
		myriadRunes[[]rune(m.String())[0]] = m.exp
	}
}
