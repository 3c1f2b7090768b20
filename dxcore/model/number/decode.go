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
	"math"

	"dirpx.dev/dxword/dxcore/errors"
)

type decodeState int

const (
	// expectDigitOrPosition is the initial state and the state after a
	// place or scale marker.
	expectDigitOrPosition decodeState = iota
	// expectPositionOrMyriad follows a digit.
	expectPositionOrMyriad
)

// decoder reads a kanji numeral from right to left.
type decoder struct {
	input string
	state decodeState

	// pos is the place exponent of the last marker read in the current
	// group; pending is set while that marker still waits for its digit.
	pos     int
	pending bool

	// group accumulates the current myriad block. seen is set once the
	// block holds any digit or marker.
	group int64
	seen  bool

	myriad int
	total  int64
}

// Decode returns the value of a kanji numeral such as 千三百三十四 or
// 二億五千万. 零 and 〇 decode to 0.
//
// Place markers must grow strictly from right to left inside a myriad
// block, and myriad markers must grow strictly across blocks, so 十十,
// 万万 and 一二 are rejected with an *InvalidNumeralError.
func Decode(s string) (int64, error) {
	if s == "零" || s == "〇" {
		return 0, nil
	}
	if s == "" {
		return 0, &errors.InvalidNumeralError{Value: s, Reason: "empty"}
	}

	d := &decoder{input: s}
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if err := d.step(runes[i]); err != nil {
			return 0, err
		}
	}
	return d.finish()
}

func (d *decoder) step(r rune) error {
	if p, ok := positionRunes[r]; ok {
		return d.position(p)
	}
	if m, ok := myriadRunes[r]; ok {
		return d.scale(m)
	}
	v, ok := digitRunes[r]
	if !ok {
		return d.fail("unexpected character " + string(r))
	}
	if d.state == expectPositionOrMyriad {
		return d.fail("digit " + string(r) + " follows another digit")
	}
	d.group += v * pow10(d.pos)
	d.pending = false
	d.seen = true
	d.state = expectPositionOrMyriad
	return nil
}

func (d *decoder) position(p int) error {
	d.flushPending()
	if d.seen && p <= d.pos {
		return d.fail("place markers out of order")
	}
	d.pos = p
	d.pending = true
	d.seen = true
	d.state = expectDigitOrPosition
	return nil
}

func (d *decoder) scale(m int) error {
	if m <= d.myriad {
		return d.fail("myriad markers out of order")
	}
	if d.myriad > 0 && !d.seen {
		return d.fail("empty myriad block")
	}
	if err := d.flush(); err != nil {
		return err
	}
	d.myriad = m
	d.state = expectDigitOrPosition
	return nil
}

func (d *decoder) finish() (int64, error) {
	if d.state == expectDigitOrPosition {
		d.flushPending()
	}
	if !d.seen {
		// a bare marker such as 万 stands for one of it
		d.group = 1
		d.seen = true
	}
	if err := d.flush(); err != nil {
		return 0, err
	}
	return d.total, nil
}

// flushPending counts a place marker that no digit claimed as 1 × marker.
func (d *decoder) flushPending() {
	if d.pending {
		d.group += pow10(d.pos)
		d.pending = false
	}
}

// flush adds the current block at the current scale to the total.
func (d *decoder) flush() error {
	d.flushPending()
	if d.group > 0 {
		mult := pow10(4 * d.myriad)
		if d.group > (math.MaxInt64-d.total)/mult {
			return d.fail("overflows int64")
		}
		d.total += d.group * mult
	}
	d.group = 0
	d.pos = 0
	d.seen = false
	return nil
}

func (d *decoder) fail(reason string) error {
	return &errors.InvalidNumeralError{Value: d.input, Reason: reason}
}
