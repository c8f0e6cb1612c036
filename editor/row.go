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

	"github.com/mattn/go-runewidth"
)

// A row of text in a buffer.
type Row struct {
	Text    []rune
	display string // tab-expanded text, computed on demand
	cached  bool
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) setText(text []rune) {
	r.Text = text
	r.invalidate()
}

func (r *Row) invalidate() {
	r.cached = false
	r.display = ""
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// DisplayText returns the row with tabs expanded to the next multiple of
// tabWidth terminal cells. The result is cached until the row changes.
func (r *Row) DisplayText(tabWidth int) string {
	if r.cached {
		return r.display
	}
	if tabWidth <= 0 {
		tabWidth = 8
	}
	var b strings.Builder
	col := 0
	for _, c := range r.Text {
		if c == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(c)
		col += runewidth.RuneWidth(c)
	}
	r.display = b.String()
	r.cached = true
	return r.display
}

func (r *Row) InsertChar(col int, c rune) {
	col = clipToRange(col, 0, len(r.Text))
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// InsertText splices text into the row at col.
func (r *Row) InsertText(col int, text []rune) {
	col = clipToRange(col, 0, len(r.Text))
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if len(r.Text) == 0 {
		return 0
	}
	if col > len(r.Text)-1 {
		col = len(r.Text) - 1
	}
	if col < 0 {
		col = 0
	}
	c := r.Text[col]
	r.setText(append(r.Text[0:col:col], r.Text[col+1:]...))
	return c
}

// Drain removes the characters in [start, end) and returns them.
func (r *Row) Drain(start, end int) string {
	start = clipToRange(start, 0, len(r.Text))
	end = clipToRange(end, start, len(r.Text))
	removed := string(r.Text[start:end])
	r.setText(append(r.Text[0:start:start], r.Text[end:]...))
	return removed
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = clipToRange(col, 0, len(r.Text))
	if col < len(r.Text) {
		after := string(r.Text[col:])
		r.setText(r.Text[0:col:col])
		return NewRow(after)
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.setText(append(r.Text[0:len(r.Text):len(r.Text)], other.Text...))
}

// returns the text between two columns
func (r *Row) Slice(start, end int) string {
	start = clipToRange(start, 0, len(r.Text))
	end = clipToRange(end, start, len(r.Text))
	return string(r.Text[start:end])
}

func clipToRange(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
