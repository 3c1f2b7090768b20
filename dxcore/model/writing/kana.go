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

package writing

// Unicode bounds of the hiragana and katakana blocks as used for
// classification. The unassigned U+3040, the hiragana digraph U+309F and
// the katakana digraph U+30FF are excluded.
const (
	hiraganaFirst = 0x3041
	hiraganaLast  = 0x309E
	katakanaFirst = 0x30A0
	katakanaLast  = 0x30FE
)

// IsHiraganaRune reports whether r is in the hiragana range.
func IsHiraganaRune(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakanaRune reports whether r is in the katakana range, including the
// prolonged sound mark ー and the middle dot ・.
func IsKatakanaRune(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast
}

// IsKanaRune reports whether r is hiragana or katakana.
func IsKanaRune(r rune) bool {
	return IsHiraganaRune(r) || IsKatakanaRune(r)
}

// IsHiragana reports whether every rune of s is hiragana. It is true for
// the empty string.
func IsHiragana(s string) bool {
	for _, r := range s {
		if !IsHiraganaRune(r) {
			return false
		}
	}
	return true
}

// IsKatakana reports whether every rune of s is katakana. It is true for
// the empty string.
func IsKatakana(s string) bool {
	for _, r := range s {
		if !IsKatakanaRune(r) {
			return false
		}
	}
	return true
}

// IsKana reports whether every rune of s is hiragana or katakana. It is true
// for the empty string.
func IsKana(s string) bool {
	for _, r := range s {
		if !IsKanaRune(r) {
			return false
		}
	}
	return true
}
