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
	"unicode"

	txd "github.com/timburks/txd/types"
)

type class int

const (
	classSpace class = iota
	classWord
	classOther
)

func classOf(c rune) class {
	switch {
	case unicode.IsSpace(c):
		return classSpace
	case c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c):
		return classWord
	default:
		return classOther
	}
}

// A walker steps through text one position at a time. The position just
// past the last character of a row stands for its line break and counts
// as whitespace, which is how scans wrap from row to row.
type walker struct {
	t Text
}

func (w walker) class(p txd.Point) class {
	line := w.t.Line(p.Row)
	if p.Col >= len(line) {
		return classSpace
	}
	return classOf(line[p.Col])
}

func (w walker) next(p txd.Point) (txd.Point, bool) {
	if p.Col < len(w.t.Line(p.Row)) {
		p.Col++
		return p, true
	}
	if p.Row < w.t.LineCount()-1 {
		return txd.Point{Col: 0, Row: p.Row + 1}, true
	}
	return p, false
}

func (w walker) prev(p txd.Point) (txd.Point, bool) {
	if p.Col > 0 {
		p.Col--
		return p, true
	}
	if p.Row > 0 {
		return txd.Point{Col: len(w.t.Line(p.Row - 1)), Row: p.Row - 1}, true
	}
	return p, false
}

// skipSpace moves p over whitespace in the direction of step.
func (w walker) skipSpace(p txd.Point, step func(txd.Point) (txd.Point, bool)) (txd.Point, bool) {
	for w.class(p) == classSpace {
		q, ok := step(p)
		if !ok {
			return p, false
		}
		p = q
	}
	return p, true
}

func scanWord(t Text, p txd.Point, forward, atEnd bool) txd.Point {
	w := walker{t: t}
	switch {
	case forward && !atEnd:
		// leave the current run, then the whitespace after it
		if c := w.class(p); c != classSpace {
			for w.class(p) == c {
				q, ok := w.next(p)
				if !ok {
					return p
				}
				p = q
			}
		}
		p, _ = w.skipSpace(p, w.next)
		return p
	case forward:
		q, ok := w.next(p)
		if !ok {
			return p
		}
		p, ok = w.skipSpace(q, w.next)
		if !ok {
			return p
		}
		return w.extend(p, w.next)
	default:
		q, ok := w.prev(p)
		if !ok {
			return p
		}
		p, ok = w.skipSpace(q, w.prev)
		if !ok {
			return p
		}
		return w.extend(p, w.prev)
	}
}

// extend moves p to the far end of the run of same-class characters it is in.
func (w walker) extend(p txd.Point, step func(txd.Point) (txd.Point, bool)) txd.Point {
	c := w.class(p)
	for {
		q, ok := step(p)
		if !ok || w.class(q) != c {
			return p
		}
		p = q
	}
}
