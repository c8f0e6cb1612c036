//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package motion

import (
	"strconv"
	"unicode/utf8"
)

// Result tells a caller what to do with an accumulating key string.
type Result int

const (
	Complete   Result = iota // a motion was recognized
	Incomplete               // a valid prefix; keep accumulating
	Invalid                  // can never become a motion; discard
)

func (r Result) String() string {
	switch r {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "invalid"
	}
}

// Parse reads a motion from the front of s.
// atStart is false when s immediately follows an operator letter; in that
// position a bare d, c or y names the whole current line.
func Parse(s string, atStart bool) (Motion, Result) {
	if s == "" {
		return Motion{}, Incomplete
	}

	// a leading count repeats whatever follows it
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 {
		count, err := strconv.Atoi(s[:digits])
		if err != nil {
			return Motion{}, Invalid
		}
		inner, result := Parse(s[digits:], atStart)
		if result != Complete {
			return Motion{}, result
		}
		return Repeat(count, inner), Complete
	}

	c, size := utf8.DecodeRuneInString(s)
	rest := s[size:]

	var m Motion
	switch c {
	case 'h':
		m = Motion{Kind: Char, Forward: false, Inclusion: Exclusive}
	case 'l':
		m = Motion{Kind: Char, Forward: true, Inclusion: Exclusive}
	case 'j':
		m = Motion{Kind: Line, Forward: true, Inclusion: Linewise}
	case 'k':
		m = Motion{Kind: Line, Forward: false, Inclusion: Linewise}
	case 'w':
		m = Motion{Kind: Word, Forward: true, Inclusion: Exclusive}
	case 'b':
		m = Motion{Kind: Word, Forward: false, Inclusion: Exclusive}
	case 'e':
		m = Motion{Kind: Word, Forward: true, PlaceAtEnd: true, Inclusion: Inclusive}
	case '^':
		m = Motion{Kind: StartOfLine, Inclusion: Exclusive}
	case '$':
		m = Motion{Kind: EndOfLine, Inclusion: Inclusive}
	case 'f', 'F', 't', 'T':
		if rest == "" {
			return Motion{}, Incomplete
		}
		query, qsize := utf8.DecodeRuneInString(rest)
		rest = rest[qsize:]
		forward := c == 'f' || c == 't'
		m = Motion{
			Kind:        CharScan,
			Forward:     forward,
			Query:       query,
			PlaceToSide: c == 't' || c == 'T',
			Inclusion:   Exclusive,
		}
		if forward {
			m.Inclusion = Inclusive
		}
	case 'd', 'c', 'y':
		if atStart {
			return Motion{}, Invalid
		}
		m = Motion{Kind: Line, Forward: true, Inclusion: Inclusive}
	default:
		return Motion{}, Invalid
	}
	if rest != "" {
		return Motion{}, Invalid
	}
	return m, Complete
}
