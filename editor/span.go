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
package editor

import (
	"strings"

	"github.com/timburks/txd/motion"
	txd "github.com/timburks/txd/types"
)

// An extent is a resolved motion with its inclusion applied: either the
// half-open character range [start, end) or, when linewise, the rows
// [start.Row, end.Row).
type extent struct {
	start    txd.Point
	end      txd.Point
	linewise bool
}

func (x extent) empty() bool {
	if x.linewise {
		return x.start.Row >= x.end.Row
	}
	return x.start == x.end
}

func wholeLines(m motion.Motion) bool {
	for m.Kind == motion.Rep && m.Inner != nil {
		m = *m.Inner
	}
	return m.Kind == motion.Line && m.Inclusion == motion.Inclusive
}

func (b *Buffer) extent(m motion.Motion) extent {
	r := motion.Resolve(b, b.cursor, m)
	last := len(b.rows) - 1

	if m.Span() == motion.Linewise {
		return extent{
			start:    txd.Point{Row: r.Start.Row},
			end:      txd.Point{Row: min(r.End.Row, last) + 1},
			linewise: true,
		}
	}
	if wholeLines(m) {
		return extent{
			start:    txd.Point{Row: r.Start.Row},
			end:      txd.Point{Row: min(r.End.Row, last+1)},
			linewise: true,
		}
	}

	start, end := r.Start, r.End
	switch m.Span() {
	case motion.Inclusive:
		if !r.Empty() {
			end.Col++
		}
	case motion.Exclusive:
		// an exclusive span stopping at the start of a later row ends with the row before it
		for end.Col == 0 && end.Row > start.Row {
			end.Row--
			end.Col = b.rows[end.Row].Length()
		}
	}
	start.Col = clipToRange(start.Col, 0, b.rows[start.Row].Length())
	end.Col = clipToRange(end.Col, 0, b.rows[end.Row].Length())
	if end.Before(start) {
		end = start
	}
	return extent{start: start, end: end}
}

func (b *Buffer) text(x extent) string {
	if x.linewise {
		var s strings.Builder
		for i := x.start.Row; i < x.end.Row; i++ {
			s.WriteString(b.rows[i].String())
			s.WriteString("\n")
		}
		return s.String()
	}
	if x.start.Row == x.end.Row {
		return b.rows[x.start.Row].Slice(x.start.Col, x.end.Col)
	}
	parts := []string{b.rows[x.start.Row].Slice(x.start.Col, b.rows[x.start.Row].Length())}
	for i := x.start.Row + 1; i < x.end.Row; i++ {
		parts = append(parts, b.rows[i].String())
	}
	parts = append(parts, b.rows[x.end.Row].Slice(0, x.end.Col))
	return strings.Join(parts, "\n")
}

// Copy returns the text a motion covers without changing anything.
func (b *Buffer) Copy(m motion.Motion) Clip {
	x := b.extent(m)
	if x.empty() {
		return Clip{Linewise: x.linewise}
	}
	return Clip{Text: b.text(x), Linewise: x.linewise}
}

// Cut removes the text a motion covers and puts the cursor at its start.
func (b *Buffer) Cut(m motion.Motion) Clip {
	x := b.extent(m)
	if x.empty() {
		return Clip{Linewise: x.linewise}
	}
	removed := Clip{Text: b.text(x), Linewise: x.linewise}
	b.dirty = true

	switch {
	case x.linewise:
		b.rows = append(b.rows[:x.start.Row:x.start.Row], b.rows[x.end.Row:]...)
		if len(b.rows) == 0 {
			b.rows = append(b.rows, NewRow(""))
		}
		b.PlaceCursor(0, x.start.Row)
	case x.start.Row == x.end.Row:
		b.rows[x.start.Row].Drain(x.start.Col, x.end.Col)
		b.PlaceCursor(x.start.Col, x.start.Row)
	default:
		first := b.rows[x.start.Row]
		first.Drain(x.start.Col, first.Length())
		tail := b.rows[x.end.Row]
		tail.Drain(0, x.end.Col)
		first.Join(tail)
		b.rows = append(b.rows[:x.start.Row+1:x.start.Row+1], b.rows[x.end.Row+1:]...)
		b.PlaceCursor(x.start.Col, x.start.Row)
	}
	return removed
}

// DeleteMovement removes the range covered by m and returns the removed text.
func (b *Buffer) DeleteMovement(m motion.Motion) string {
	return b.Cut(m).Text
}

// YankMovement returns the text covered by m. The buffer is not modified.
func (b *Buffer) YankMovement(m motion.Motion) string {
	return b.Copy(m).Text
}
