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

// Package date spells calendar dates: 2024年10月14日.
package date

import (
	"time"

	"dirpx.dev/dxword/dxcore/model/counter"
	"dirpx.dev/dxword/dxcore/model/word"
)

// Date is the compound of a year, month and day count.
type Date struct {
	*word.Compound
	year, month, day *counter.Count
}

// New spells the calendar date of t in t's location.
func New(t time.Time) (*Date, error) {
	return Of(t.Year(), t.Month(), t.Day())
}

// Of spells the given year, month and day. The values are not normalized;
// Of(2024, 2, 30) spells 二月三十日.
func Of(year int, month time.Month, day int) (*Date, error) {
	y, err := counter.Of(int64(year), counter.Year())
	if err != nil {
		return nil, err
	}
	m, err := counter.Of(int64(month), counter.Month())
	if err != nil {
		return nil, err
	}
	d, err := counter.Of(int64(day), counter.MonthDay())
	if err != nil {
		return nil, err
	}
	c, err := word.NewCompound([]word.Wordlike{y, m, d})
	if err != nil {
		return nil, err
	}
	return &Date{Compound: c, year: y, month: m, day: d}, nil
}

// Year returns the year count.
func (d *Date) Year() *counter.Count { return d.year }

// Month returns the month count.
func (d *Date) Month() *counter.Count { return d.month }

// Day returns the day count.
func (d *Date) Day() *counter.Count { return d.day }
