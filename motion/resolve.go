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
	txd "github.com/timburks/txd/types"
)

// Text is the read-only view of a buffer that resolution needs.
type Text interface {
	LineCount() int
	Line(row int) []rune
}

// Resolve computes the range a motion covers when applied at cursor.
// It never fails: scans that find nothing produce an empty range at the
// cursor and positions outside the text are clamped.
func Resolve(t Text, cursor txd.Point, m Motion) Range {
	if t.LineCount() == 0 {
		return Range{}
	}
	cursor = clamp(t, cursor)
	switch m.Kind {
	case Char:
		target := cursor
		if m.Forward {
			if target.Col < len(t.Line(cursor.Row)) {
				target.Col++
			}
		} else if target.Col > 0 {
			target.Col--
		}
		return span(cursor, target)
	case Line:
		if m.Inclusion == Linewise {
			target := cursor
			if m.Forward {
				if target.Row < t.LineCount()-1 {
					target.Row++
				}
			} else if target.Row > 0 {
				target.Row--
			}
			return span(cursor, target)
		}
		// whole-line span: from the start of this line to the start of the next
		start := txd.Point{Col: 0, Row: cursor.Row}
		end := start
		if m.Forward {
			end.Row++
		} else if end.Row > 0 {
			end.Row--
		}
		return span(start, end)
	case Word:
		return span(cursor, scanWord(t, cursor, m.Forward, m.PlaceAtEnd))
	case CharScan:
		return span(cursor, scanChar(t.Line(cursor.Row), cursor, m))
	case StartOfLine:
		return span(cursor, txd.Point{Col: 0, Row: cursor.Row})
	case EndOfLine:
		return span(cursor, txd.Point{Col: len(t.Line(cursor.Row)), Row: cursor.Row})
	case Rep:
		return repeat(t, cursor, m)
	}
	return span(cursor, cursor)
}

// repeat applies the inner motion Count times from a scratch cursor,
// keeping the outermost bounds seen along the way.
func repeat(t Text, cursor txd.Point, m Motion) Range {
	total := span(cursor, cursor)
	if m.Inner == nil || m.Count <= 0 {
		return total
	}
	scratch := cursor
	for i := 0; i < m.Count; i++ {
		r := Resolve(t, scratch, *m.Inner)
		if i == 0 {
			total = r
		} else {
			if r.Start.Before(total.Start) {
				total.Start = r.Start
			}
			if total.End.Before(r.End) {
				total.End = r.End
			}
			total.Target = r.Target
		}
		if r.Target == scratch {
			break
		}
		scratch = r.Target
	}
	return total
}

func scanChar(line []rune, cursor txd.Point, m Motion) txd.Point {
	if m.Forward {
		for col := cursor.Col + 1; col < len(line); col++ {
			if line[col] == m.Query {
				if m.PlaceToSide {
					col--
				}
				return txd.Point{Col: col, Row: cursor.Row}
			}
		}
	} else {
		for col := min(cursor.Col, len(line)) - 1; col >= 0; col-- {
			if line[col] == m.Query {
				if m.PlaceToSide {
					col++
				}
				return txd.Point{Col: col, Row: cursor.Row}
			}
		}
	}
	return cursor
}

func clamp(t Text, p txd.Point) txd.Point {
	if n := t.LineCount(); p.Row >= n {
		p.Row = n - 1
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if n := len(t.Line(p.Row)); p.Col > n {
		p.Col = n
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}
