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

	txd "github.com/timburks/txd/types"
)

// Before the renderer reports a real size, viewports assume a classic terminal.
const (
	DefaultViewportHeight = 24
	DefaultScrollMargin   = 3
	DefaultTabWidth       = 8
)

// Viewport is the half-open window of rows [Start, End) scrolled into view.
type Viewport struct {
	Start int
	End   int
}

// A Buffer holds the lines of a file being edited along with its cursor
// and viewport. A buffer always has at least one row.
type Buffer struct {
	number   int
	Name     string
	fileName string
	rows     []*Row
	cursor   txd.Point
	viewport Viewport
	height   int
	margin   int
	indent   Indent
	tabWidth int
	dirty    bool
}

func NewBuffer() *Buffer {
	b := &Buffer{
		number:   -1,
		rows:     []*Row{NewRow("")},
		height:   DefaultViewportHeight,
		margin:   DefaultScrollMargin,
		indent:   TabIndent,
		tabWidth: DefaultTabWidth,
	}
	b.viewport = Viewport{Start: 0, End: b.height}
	return b
}

// GetIndex returns the buffer's position in the editor, or -1 for buffers
// the editor doesn't own.
func (b *Buffer) GetIndex() int {
	return b.number
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.Name = name
}

func (b *Buffer) Dirty() bool {
	return b.dirty
}

func (b *Buffer) Indent() Indent {
	return b.indent
}

func (b *Buffer) SetIndent(i Indent) {
	b.indent = i
}

func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

func (b *Buffer) SetTabWidth(w int) {
	if w > 0 {
		b.tabWidth = w
		for _, r := range b.rows {
			r.invalidate()
		}
	}
}

// LoadLines replaces the contents of the buffer.
func (b *Buffer) LoadLines(lines []string, indent Indent) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.indent = indent
	b.dirty = false
	b.cursor = txd.Point{}
	b.viewport = Viewport{Start: 0, End: b.height}
}

// Lines returns a copy of the buffer's text, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// LineCount and Line let motions read the buffer.
func (b *Buffer) LineCount() int {
	return len(b.rows)
}

func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i].Text
}

// Row returns the row at i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) Cursor() txd.Point {
	return b.cursor
}

func (b *Buffer) Viewport() Viewport {
	return b.viewport
}

// SetViewportHeight is called by the renderer whenever the visible area changes.
func (b *Buffer) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	b.height = rows
	b.viewport.End = b.viewport.Start + rows
	b.scroll()
}

func (b *Buffer) SetScrollMargin(rows int) {
	if rows < 0 {
		rows = 0
	}
	b.margin = rows
	b.scroll()
}

// PlaceCursor moves the cursor to the nearest valid position to (col, row)
// and slides the viewport to keep it in view.
func (b *Buffer) PlaceCursor(col, row int) {
	row = clipToRange(row, 0, len(b.rows)-1)
	col = clipToRange(col, 0, b.rows[row].Length())
	b.cursor = txd.Point{Col: col, Row: row}
	b.scroll()
}

// MoveCursor moves the cursor by an offset, stopping at the top and left edges.
func (b *Buffer) MoveCursor(dx, dy int) {
	col := b.cursor.Col + dx
	row := b.cursor.Row + dy
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	b.PlaceCursor(col, row)
}

// Slide the viewport one row at a time until the cursor sits at least
// margin rows inside it. The margin shrinks to fit short windows.
func (b *Buffer) scroll() {
	margin := min(b.margin, (b.height-1)/2)
	b.viewport.End = b.viewport.Start + b.height
	for b.cursor.Row < b.viewport.Start+margin && b.viewport.Start > 0 {
		b.viewport.Start--
		b.viewport.End--
	}
	for b.cursor.Row >= b.viewport.End-margin && b.viewport.End < len(b.rows) {
		b.viewport.Start++
		b.viewport.End++
	}
}

// These primitives are used directly by insert and command modes.

func (b *Buffer) InsertChar(c rune) {
	if c == '\n' {
		b.BreakLine()
		return
	}
	b.rows[b.cursor.Row].InsertChar(b.cursor.Col, c)
	b.dirty = true
	b.PlaceCursor(b.cursor.Col+1, b.cursor.Row)
}

// DeleteChar removes the character under the cursor, or the last character
// of the row when the cursor is at its end.
func (b *Buffer) DeleteChar() rune {
	row := b.rows[b.cursor.Row]
	if row.Length() == 0 {
		return 0
	}
	c := row.DeleteChar(b.cursor.Col)
	b.dirty = true
	b.PlaceCursor(b.cursor.Col, b.cursor.Row)
	return c
}

// BreakLine splits the current row at the cursor.
func (b *Buffer) BreakLine() {
	newRow := b.rows[b.cursor.Row].Split(b.cursor.Col)
	b.insertRow(b.cursor.Row+1, newRow)
	b.PlaceCursor(0, b.cursor.Row+1)
}

// InsertLine adds a row holding text below the cursor's row.
func (b *Buffer) InsertLine(text string) {
	b.insertRow(b.cursor.Row+1, NewRow(text))
	b.PlaceCursor(0, b.cursor.Row+1)
}

// InsertLineAbove adds a row holding text above the cursor's row.
func (b *Buffer) InsertLineAbove(text string) {
	b.insertRow(b.cursor.Row, NewRow(text))
	b.PlaceCursor(0, b.cursor.Row)
}

func (b *Buffer) insertRow(i int, r *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
	b.dirty = true
}

// InsertTab inserts one unit of the buffer's indentation style.
func (b *Buffer) InsertTab() {
	b.insertSpan(b.indent.Unit())
}

// InsertString inserts text at the cursor. Text ending in a line terminator
// is a set of whole lines and goes in as new rows below the cursor;
// anything else is spliced into the current row.
func (b *Buffer) InsertString(text string) {
	if text == "" {
		return
	}
	if strings.HasSuffix(text, "\n") {
		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			b.InsertLine(line)
		}
		return
	}
	b.insertSpan(text)
}

// insertSpan splices text at the cursor; the rest of the current row
// follows the last inserted segment and the cursor ends after the text.
func (b *Buffer) insertSpan(text string) {
	segments := strings.Split(text, "\n")
	row := b.rows[b.cursor.Row]
	first := []rune(segments[0])
	if len(segments) == 1 {
		row.InsertText(b.cursor.Col, first)
		b.dirty = true
		b.PlaceCursor(b.cursor.Col+len(first), b.cursor.Row)
		return
	}
	tail := row.Split(b.cursor.Col)
	row.InsertText(row.Length(), first)
	r := b.cursor.Row
	for _, segment := range segments[1 : len(segments)-1] {
		r++
		b.insertRow(r, NewRow(segment))
	}
	last := NewRow(segments[len(segments)-1])
	col := last.Length()
	last.Join(tail)
	r++
	b.insertRow(r, last)
	b.PlaceCursor(col, r)
}

// Clear resets the buffer to a single empty row.
func (b *Buffer) Clear() {
	b.rows = []*Row{NewRow("")}
	b.dirty = true
	b.cursor = txd.Point{}
	b.viewport = Viewport{Start: 0, End: b.height}
}

// Text returns the whole buffer as newline-separated text.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) markClean() {
	b.dirty = false
}
