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

// Package motion parses vi motions and resolves them against text.
// A motion describes a displacement or span independent of any operator;
// resolution is pure and never moves anyone's cursor.
package motion

import (
	"fmt"

	txd "github.com/timburks/txd/types"
)

// Inclusion says how the endpoint of a resolved range is treated.
type Inclusion int

const (
	Exclusive Inclusion = iota
	Inclusive
	Linewise
)

func (i Inclusion) String() string {
	switch i {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case Linewise:
		return "linewise"
	default:
		return "unknown"
	}
}

// Kind tags the variant held by a Motion.
type Kind int

const (
	Char Kind = iota
	Line
	Word
	CharScan
	StartOfLine
	EndOfLine
	Rep
)

// A Motion is a tagged variant. Only the fields relevant to Kind are set.
type Motion struct {
	Kind        Kind
	Forward     bool      // Char, Line, Word, CharScan
	Inclusion   Inclusion // ignored for Rep, which uses Inner's
	PlaceAtEnd  bool      // Word: land on the last character of the word (e)
	Query       rune      // CharScan
	PlaceToSide bool      // CharScan: stop beside the match (t, T)
	Count       int       // Rep
	Inner       *Motion   // Rep
}

// Span returns the motion's inclusion, looking through repetitions.
func (m Motion) Span() Inclusion {
	for m.Kind == Rep && m.Inner != nil {
		m = *m.Inner
	}
	return m.Inclusion
}

// Repeat wraps m so that it is applied count times.
func Repeat(count int, m Motion) Motion {
	inner := m
	return Motion{Kind: Rep, Count: count, Inner: &inner}
}

func (m Motion) String() string {
	switch m.Kind {
	case Char:
		return fmt.Sprintf("Char(%s)", direction(m.Forward))
	case Line:
		return fmt.Sprintf("Line(%s, %s)", direction(m.Forward), m.Inclusion)
	case Word:
		return fmt.Sprintf("Word(%s, end=%t)", direction(m.Forward), m.PlaceAtEnd)
	case CharScan:
		return fmt.Sprintf("CharScan(%q, %s, side=%t)", m.Query, direction(m.Forward), m.PlaceToSide)
	case StartOfLine:
		return "StartOfLine"
	case EndOfLine:
		return "EndOfLine"
	case Rep:
		if m.Inner == nil {
			return fmt.Sprintf("Rep(%d)", m.Count)
		}
		return fmt.Sprintf("Rep(%d, %s)", m.Count, m.Inner)
	default:
		return "Unknown"
	}
}

func direction(forward bool) string {
	if forward {
		return "forward"
	}
	return "backward"
}

// A Range is the span covered by a resolved motion.
// Start never comes after End. Target is where a plain move puts the cursor;
// it equals Start for backward motions and End for forward ones.
type Range struct {
	Start  txd.Point
	End    txd.Point
	Target txd.Point
}

// Empty reports whether the range covers nothing.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// SingleLine reports whether the range starts and ends on the same row.
func (r Range) SingleLine() bool {
	return r.Start.Row == r.End.Row
}

func span(from, to txd.Point) Range {
	if to.Before(from) {
		return Range{Start: to, End: from, Target: to}
	}
	return Range{Start: from, End: to, Target: to}
}
