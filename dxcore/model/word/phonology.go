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

import "dirpx.dev/dxword/dxcore/model/writing"

// sound rewrites a reading pair into one or more readings.
type sound func(left, right []rune) []string

// geminate replaces the left reading's final kana with っ and the right
// reading's initial kana with head: いち+ほん -> いっぽん.
func geminate(head string) sound {
	return func(l, r []rune) []string {
		return []string{string(l[:len(l)-1]) + "っ" + head + string(r[1:])}
	}
}

// geminateOrPlain yields both the geminated and the unchanged pair:
// はち+ほん -> はっぽん, はちほん.
func geminateOrPlain(head string) sound {
	g := geminate(head)
	return func(l, r []rune) []string {
		return append(g(l, r), string(l)+string(r))
	}
}

// mutate keeps the left reading and replaces the right reading's initial
// kana with head: さん+ほん -> さんぼん.
func mutate(head string) sound {
	return func(l, r []rune) []string {
		return []string{string(l) + head + string(r[1:])}
	}
}

// elide drops the left reading's final kana: よん+ねん -> よねん.
func elide() sound {
	return func(l, r []rune) []string {
		return []string{string(l[:len(l)-1]) + string(r)}
	}
}

// hRow covers counters starting in the は row (本, 匹, 杯).
func hRow(voiced, semivoiced string) map[string]sound {
	return map[string]sound{
		"いち":  geminate(semivoiced),
		"さん":  mutate(voiced),
		"ろく":  geminate(semivoiced),
		"はち":  geminateOrPlain(semivoiced),
		"じゅう": geminate(semivoiced),
	}
}

// kRow covers counters starting in the か row (回, 個, 軒).
func kRow(kana string) map[string]sound {
	return map[string]sound{
		"いち":  geminate(kana),
		"ろく":  geminate(kana),
		"はち":  geminateOrPlain(kana),
		"じゅう": geminate(kana),
	}
}

// phonology is keyed by the right reading's first kana, then by the left
// reading's trailing two or three kana.
var phonology = map[rune]map[string]sound{
	'ふ': {
		"いち":  geminate("ぷ"),
		"さん":  mutate("ぷ"),
		"よん":  mutate("ぷ"),
		"ろく":  geminate("ぷ"),
		"はち":  geminate("ぷ"),
		"じゅう": geminate("ぷ"),
	},
	'ひ': hRow("び", "ぴ"),
	'ほ': hRow("ぼ", "ぽ"),
	'は': hRow("ば", "ぱ"),
	'か': kRow("か"),
	'こ': kRow("こ"),
	'け': kRow("け"),
	'さ': {
		"いち":  geminate("さ"),
		"はち":  geminateOrPlain("さ"),
		"じゅう": geminate("さ"),
	},
	'ね': {
		"よん": elide(),
	},
}

// soundChange combines two readings, applying the first matching rule.
func soundChange(left, right writing.Writing) []writing.Writing {
	l, r := []rune(left.String()), []rune(right.String())
	if len(l) == 0 || len(r) == 0 {
		return []writing.Writing{left.Concat(right)}
	}
	rules, ok := phonology[r[0]]
	if !ok {
		return []writing.Writing{left.Concat(right)}
	}
	for _, n := range []int{3, 2} {
		if len(l) < n {
			continue
		}
		if rule, ok := rules[string(l[len(l)-n:])]; ok {
			return writing.FromStrings(rule(l, r)...)
		}
	}
	return []writing.Writing{left.Concat(right)}
}
