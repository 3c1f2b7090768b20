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

// Package kana converts between hiragana, katakana and Hepburn-style
// romaji.
//
// Conversion scans the input left to right and replaces the longest known
// symbol, up to four runes, at each position. Any script maps to any
// other, so mixed input converts too:
//
//	kana.ToHiragana("きんyoubi", kana.Fail) // きんようび, nil
//	kana.ToRomaji("コンピューター", kana.Fail) // konpyu-ta-, nil
//
// Input is width-folded and NFC-normalized first, so half-width katakana
// and full-width romaji are accepted. The package does not depend on the
// word model.
package kana

import (
	"fmt"
	"strings"

	"dirpx.dev/dxword/dxcore/errors"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// maxSymbol is the longest symbol in the table, in runes.
const maxSymbol = 4

type script int

const (
	romaji script = iota
	hiragana
	katakana
)

// symbol is one row of the conversion table.
type symbol [3]string

var symbols = []symbol{
	{"a", "あ", "ア"},
	{"ba", "ば", "バ"}, {"be", "べ", "ベ"}, {"bi", "び", "ビ"}, {"bo", "ぼ", "ボ"}, {"bu", "ぶ", "ブ"},
	{"bya", "びゃ", "ビャ"}, {"byo", "びょ", "ビョ"}, {"byu", "びゅ", "ビュ"},
	{"cha", "ちゃ", "チャ"}, {"che", "ちぇ", "チェ"}, {"chi", "ち", "チ"}, {"cho", "ちょ", "チョ"}, {"chu", "ちゅ", "チュ"},
	{"da", "だ", "ダ"}, {"de", "で", "デ"}, {"dhi", "でぃ", "ディ"}, {"dhu", "でゅ", "デュ"},
	{"dji", "ぢ", "ヂ"}, {"djo", "ぢょ", "ヂョ"}, {"do", "ど", "ド"}, {"du", "どぅ", "ドゥ"}, {"dzu", "づ", "ヅ"},
	{"e", "え", "エ"},
	{"fa", "ふぁ", "ファ"}, {"fe", "ふぇ", "フェ"}, {"fi", "ふぃ", "フィ"}, {"fo", "ふぉ", "フォ"}, {"fu", "ふ", "フ"},
	{"ga", "が", "ガ"}, {"ge", "げ", "ゲ"}, {"gi", "ぎ", "ギ"}, {"go", "ご", "ゴ"}, {"gu", "ぐ", "グ"},
	{"gya", "ぎゃ", "ギャ"}, {"gyo", "ぎょ", "ギョ"}, {"gyu", "ぎゅ", "ギュ"},
	{"ha", "は", "ハ"}, {"he", "へ", "ヘ"}, {"hi", "ひ", "ヒ"}, {"ho", "ほ", "ホ"},
	{"hya", "ひゃ", "ヒャ"}, {"hyo", "ひょ", "ヒョ"}, {"hyu", "ひゅ", "ヒュ"},
	{"i", "い", "イ"},
	{"ja", "じゃ", "ジャ"}, {"je", "じぇ", "ジェ"}, {"ji", "じ", "ジ"}, {"jo", "じょ", "ジョ"}, {"ju", "じゅ", "ジュ"},
	{"ka", "か", "カ"}, {"ke", "け", "ケ"}, {"ki", "き", "キ"}, {"ko", "こ", "コ"}, {"ku", "く", "ク"},
	{"kya", "きゃ", "キャ"}, {"kyo", "きょ", "キョ"}, {"kyu", "きゅ", "キュ"},
	{"ma", "ま", "マ"}, {"me", "め", "メ"}, {"mi", "み", "ミ"}, {"mo", "も", "モ"}, {"mu", "む", "ム"},
	{"mya", "みゃ", "ミャ"}, {"myo", "みょ", "ミョ"}, {"myu", "みゅ", "ミュ"},
	{"n", "ん", "ン"}, {"n'yo", "んよ", "ンヨ"},
	{"na", "な", "ナ"}, {"ne", "ね", "ネ"}, {"ni", "に", "ニ"}, {"no", "の", "ノ"}, {"nu", "ぬ", "ヌ"},
	{"nya", "にゃ", "ニャ"}, {"nyo", "にょ", "ニョ"}, {"nyu", "にゅ", "ニュ"},
	{"o", "お", "オ"},
	{"pa", "ぱ", "パ"}, {"pe", "ぺ", "ペ"}, {"pi", "ぴ", "ピ"}, {"po", "ぽ", "ポ"}, {"pu", "ぷ", "プ"},
	{"pya", "ぴゃ", "ピャ"}, {"pyo", "ぴょ", "ピョ"}, {"pyu", "ぴゅ", "ピュ"},
	{"ra", "ら", "ラ"}, {"re", "れ", "レ"}, {"ri", "り", "リ"}, {"ro", "ろ", "ロ"}, {"ru", "る", "ル"},
	{"rya", "りゃ", "リャ"}, {"ryo", "りょ", "リョ"}, {"ryu", "りゅ", "リュ"},
	{"sa", "さ", "サ"}, {"se", "せ", "セ"},
	{"sha", "しゃ", "シャ"}, {"she", "しぇ", "シェ"}, {"shi", "し", "シ"}, {"sho", "しょ", "ショ"}, {"shu", "しゅ", "シュ"},
	{"so", "そ", "ソ"}, {"su", "す", "ス"},
	{"ta", "た", "タ"}, {"te", "て", "テ"}, {"thi", "てぃ", "ティ"}, {"thu", "てゅ", "テュ"},
	{"to", "と", "ト"}, {"tsu", "つ", "ツ"}, {"tu", "とぅ", "トゥ"},
	{"u", "う", "ウ"},
	{"va", "ゔぁ", "ヴァ"}, {"ve", "ゔぇ", "ヴェ"}, {"vi", "ゔぃ", "ヴィ"}, {"vo", "ゔぉ", "ヴォ"}, {"vu", "ゔ", "ヴ"},
	{"wa", "わ", "ワ"}, {"whe", "うぇ", "ウェ"}, {"whi", "うぃ", "ウィ"}, {"who", "うぉ", "ウォ"}, {"wo", "を", "ヲ"},
	{"ya", "や", "ヤ"}, {"yo", "よ", "ヨ"}, {"yu", "ゆ", "ユ"},
	{"za", "ざ", "ザ"}, {"ze", "ぜ", "ゼ"}, {"zo", "ぞ", "ゾ"}, {"zu", "ず", "ズ"},
}

// punctuation is never geminated, and both kana columns share one mark.
var punctuation = []symbol{
	{"/", "・", "・"},
	{"-", "ー", "ー"},
}

var table = mustTable(symbols, punctuation)

// geminate adds the small-tsu doubling of every symbol whose romaji starts
// with a consonant: tta/った/ッタ after ta/た/タ.
func geminate(in []symbol) []symbol {
	out := make([]symbol, 0, 2*len(in))
	for _, s := range in {
		out = append(out, s)
		if strings.ContainsRune("aeinou", rune(s[romaji][0])) {
			continue
		}
		out = append(out, symbol{s[romaji][:1] + s[romaji], "っ" + s[hiragana], "ッ" + s[katakana]})
	}
	return out
}

// buildTable indexes every column of every symbol. A key that appears
// twice among syms is an error.
func buildTable(syms, punct []symbol) (map[string]symbol, error) {
	t := make(map[string]symbol, 3*len(syms)*2+len(punct))
	for _, s := range geminate(syms) {
		for _, key := range s {
			if _, dup := t[key]; dup {
				return nil, fmt.Errorf("duplicate kana symbol %q", key)
			}
			t[key] = s
		}
	}
	for _, s := range punct {
		for _, key := range s {
			t[key] = s
		}
	}
	return t, nil
}

func mustTable(syms, punct []symbol) map[string]symbol {
	t, err := buildTable(syms, punct)
	if err != nil {
		panic(err)
	}
	return t
}

// ToHiragana converts s to hiragana.
func ToHiragana(s string, onErr OnError) (string, error) {
	return convert(s, hiragana, onErr)
}

// ToKatakana converts s to katakana.
func ToKatakana(s string, onErr OnError) (string, error) {
	return convert(s, katakana, onErr)
}

// ToRomaji converts s to romaji. The long vowel mark becomes "-" and んよ
// becomes n'yo, so that きんようび gives kin'youbi rather than kinyoubi.
func ToRomaji(s string, onErr OnError) (string, error) {
	return convert(s, romaji, onErr)
}

func convert(s string, to script, onErr OnError) (string, error) {
	if err := onErr.Validate(); err != nil {
		return "", err
	}

	rs := []rune(norm.NFC.String(width.Fold.String(s)))
	var b strings.Builder
	for len(rs) > 0 {
		n, sym, ok := next(rs)
		if !ok {
			if onErr == Fail {
				return "", &errors.ConversionError{Pending: string(rs), Input: s}
			}
			b.WriteRune(rs[0])
			rs = rs[1:]
			continue
		}
		b.WriteString(sym[to])
		rs = rs[n:]
	}
	return b.String(), nil
}

// next finds the longest symbol at the start of rs.
func next(rs []rune) (int, symbol, bool) {
	for n := min(maxSymbol, len(rs)); n > 0; n-- {
		if sym, ok := table[string(rs[:n])]; ok {
			return n, sym, true
		}
	}
	return 0, symbol{}, false
}
