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
package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// A LineLayout maps the characters of a line to terminal cells.
type LineLayout struct {
	offsets []int // offsets[i] is the first cell of character i; the last entry is the line width
}

// Layout places the characters of a line, expanding tabs to the next
// multiple of tabWidth cells.
func Layout(text []rune, tabWidth int) LineLayout {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	offsets := make([]int, len(text)+1)
	x := 0
	for i, c := range text {
		offsets[i] = x
		if c == '\t' {
			x += tabWidth - x%tabWidth
		} else {
			x += runewidth.RuneWidth(c)
		}
	}
	offsets[len(text)] = x
	return LineLayout{offsets: offsets}
}

// Bounds returns the first cell and the cell count of the character at col.
// Columns past the end of the line are a single cell after its last character.
func (l LineLayout) Bounds(col int) (x, width int) {
	n := len(l.offsets) - 1
	if col < 0 {
		col = 0
	}
	if col >= n {
		return l.offsets[n], 1
	}
	return l.offsets[col], l.offsets[col+1] - l.offsets[col]
}

// Width is the number of cells the whole line needs.
func (l LineLayout) Width() int {
	return l.offsets[len(l.offsets)-1]
}

// Truncate shortens s to at most width cells without splitting a grapheme cluster.
func Truncate(s string, width int) string {
	var b strings.Builder
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// Fit truncates or pads s to exactly width cells.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - uniseg.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
