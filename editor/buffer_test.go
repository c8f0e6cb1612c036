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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/timburks/txd/motion"
	txd "github.com/timburks/txd/types"
)

func newTestBuffer(lines ...string) *Buffer {
	b := NewBuffer()
	b.LoadLines(lines, TabIndent)
	return b
}

func parseMotion(t testing.TB, keys string, atStart bool) motion.Motion {
	m, result := motion.Parse(keys, atStart)
	require.Equal(t, motion.Complete, result, "parsing %q", keys)
	return m
}

func TestNewBufferHasOneRow(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, []string{""}, b.Lines())
	assert.Equal(t, txd.Point{}, b.Cursor())
	assert.False(t, b.Dirty())

	b.LoadLines(nil, TabIndent)
	assert.Equal(t, 1, b.GetRowCount())
}

func TestInsertChar(t *testing.T) {
	b := newTestBuffer("abc")
	b.PlaceCursor(3, 0)
	b.InsertChar('d')
	assert.Equal(t, []string{"abcd"}, b.Lines())
	assert.Equal(t, txd.Point{Col: 4, Row: 0}, b.Cursor())
	assert.True(t, b.Dirty())

	b.PlaceCursor(0, 0)
	b.InsertChar('>')
	assert.Equal(t, ">abcd", b.Text())
}

func TestInsertNewline(t *testing.T) {
	b := newTestBuffer("hello world")
	b.PlaceCursor(5, 0)
	b.InsertChar('\n')
	assert.Equal(t, []string{"hello", " world"}, b.Lines())
	assert.Equal(t, txd.Point{Col: 0, Row: 1}, b.Cursor())
}

func TestDeleteChar(t *testing.T) {
	b := newTestBuffer("abc", "")
	b.PlaceCursor(1, 0)
	assert.Equal(t, 'b', b.DeleteChar())
	assert.Equal(t, "ac", b.Row(0).String())
	assert.Equal(t, 1, b.Cursor().Col)

	// past the end deletes the last character
	b.PlaceCursor(9, 0)
	assert.Equal(t, 'c', b.DeleteChar())
	assert.Equal(t, "a", b.Row(0).String())

	// nothing to delete on an empty row
	b.PlaceCursor(0, 1)
	assert.Equal(t, rune(0), b.DeleteChar())
	assert.Equal(t, []string{"a", ""}, b.Lines())
}

func TestInsertLine(t *testing.T) {
	b := newTestBuffer("one", "three")
	b.InsertLine("two")
	assert.Equal(t, []string{"one", "two", "three"}, b.Lines())
	assert.Equal(t, txd.Point{Col: 0, Row: 1}, b.Cursor())
}

func TestInsertTab(t *testing.T) {
	b := newTestBuffer("x")
	b.InsertTab()
	assert.Equal(t, "\tx", b.Row(0).String())

	b.SetIndent(Indent{Width: 4})
	b.InsertTab()
	assert.Equal(t, "\t    x", b.Row(0).String())
	assert.Equal(t, 5, b.Cursor().Col)
}

func TestInsertString(t *testing.T) {
	b := newTestBuffer("hello world")
	b.PlaceCursor(6, 0)
	b.InsertString("big\nwide ")
	assert.Equal(t, []string{"hello big", "wide world"}, b.Lines())
	assert.Equal(t, txd.Point{Col: 5, Row: 1}, b.Cursor())

	// whole lines go in below the cursor line
	b = newTestBuffer("one", "four")
	b.InsertString("two\nthree\n")
	assert.Equal(t, []string{"one", "two", "three", "four"}, b.Lines())
	assert.Equal(t, 2, b.Cursor().Row)
}

func TestClear(t *testing.T) {
	b := newTestBuffer("a", "b")
	b.PlaceCursor(1, 1)
	b.Clear()
	assert.Equal(t, []string{""}, b.Lines())
	assert.Equal(t, txd.Point{}, b.Cursor())
}

func TestPlaceCursorClamps(t *testing.T) {
	b := newTestBuffer("abc", "de")
	b.PlaceCursor(10, 0)
	assert.Equal(t, txd.Point{Col: 3, Row: 0}, b.Cursor())
	b.PlaceCursor(10, 10)
	assert.Equal(t, txd.Point{Col: 2, Row: 1}, b.Cursor())
	b.PlaceCursor(-4, -1)
	assert.Equal(t, txd.Point{}, b.Cursor())
}

func TestMoveCursorStaysInBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,10}`), 1, 8).Draw(t, "lines")
		b := newTestBuffer(lines...)
		for i := 0; i < 20; i++ {
			dx := rapid.IntRange(-15, 15).Draw(t, "dx")
			dy := rapid.IntRange(-10, 10).Draw(t, "dy")
			b.MoveCursor(dx, dy)
			c := b.Cursor()
			if c.Row < 0 || c.Row >= b.GetRowCount() {
				t.Fatalf("row %d outside [0, %d)", c.Row, b.GetRowCount())
			}
			if c.Col < 0 || c.Col > b.GetRowLength(c.Row) {
				t.Fatalf("col %d outside [0, %d]", c.Col, b.GetRowLength(c.Row))
			}
		}
	})
}

func TestDeleteWord(t *testing.T) {
	b := newTestBuffer("alpha beta")
	removed := b.DeleteMovement(parseMotion(t, "w", true))
	assert.Equal(t, "alpha ", removed)
	assert.Equal(t, []string{"beta"}, b.Lines())
	assert.Equal(t, txd.Point{}, b.Cursor())
}

func TestDeleteLastWordKeepsLineBreak(t *testing.T) {
	b := newTestBuffer("alpha beta", "gamma")
	b.PlaceCursor(6, 0)
	removed := b.DeleteMovement(parseMotion(t, "w", true))
	assert.Equal(t, "beta", removed)
	assert.Equal(t, []string{"alpha ", "gamma"}, b.Lines())
}

func TestDeleteLine(t *testing.T) {
	b := newTestBuffer("one", "two", "three")
	b.PlaceCursor(2, 1)
	clip := b.Cut(parseMotion(t, "d", false))
	assert.Equal(t, Clip{Text: "two\n", Linewise: true}, clip)
	assert.Equal(t, []string{"one", "three"}, b.Lines())
	assert.Equal(t, txd.Point{Col: 0, Row: 1}, b.Cursor())

	// the last line leaves an empty buffer behind
	b = newTestBuffer("only")
	b.Cut(parseMotion(t, "d", false))
	assert.Equal(t, []string{""}, b.Lines())
}

func TestDeleteLines(t *testing.T) {
	b := newTestBuffer("a", "b", "c", "d")
	b.PlaceCursor(0, 1)
	clip := b.Cut(parseMotion(t, "5d", false))
	assert.Equal(t, "b\nc\nd\n", clip.Text)
	assert.Equal(t, []string{"a"}, b.Lines())

	b = newTestBuffer("a", "b", "c")
	clip = b.Cut(parseMotion(t, "j", true))
	assert.Equal(t, Clip{Text: "a\nb\n", Linewise: true}, clip)
	assert.Equal(t, []string{"c"}, b.Lines())

	b = newTestBuffer("a", "b", "c")
	b.PlaceCursor(0, 2)
	clip = b.Cut(parseMotion(t, "k", true))
	assert.Equal(t, "b\nc\n", clip.Text)
	assert.Equal(t, []string{"a"}, b.Lines())
	assert.Equal(t, txd.Point{}, b.Cursor())
}

func TestDeleteInclusive(t *testing.T) {
	b := newTestBuffer("hello, world")
	removed := b.DeleteMovement(parseMotion(t, "f,", true))
	assert.Equal(t, "hello,", removed)
	assert.Equal(t, " world", b.Row(0).String())

	b = newTestBuffer("hello, world")
	b.PlaceCursor(5, 0)
	removed = b.DeleteMovement(parseMotion(t, "$", true))
	assert.Equal(t, ", world", removed)
	assert.Equal(t, "hello", b.Row(0).String())
	assert.Equal(t, 5, b.Cursor().Col)
}

func TestDeleteAcrossLines(t *testing.T) {
	b := newTestBuffer("ab cd", "ef gh")
	clip := b.Cut(parseMotion(t, "3w", true))
	assert.Equal(t, Clip{Text: "ab cd\nef "}, clip)
	assert.Equal(t, []string{"gh"}, b.Lines())

	b.InsertString(clip.Text)
	assert.Equal(t, []string{"ab cd", "ef gh"}, b.Lines())
}

func TestDeleteNothing(t *testing.T) {
	b := newTestBuffer("abc")
	clip := b.Cut(parseMotion(t, "fz", true))
	assert.Equal(t, "", clip.Text)
	assert.False(t, b.Dirty())
}

func TestYankLeavesBufferAlone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z .]{0,10}`), 1, 6).Draw(t, "lines")
		b := newTestBuffer(lines...)
		b.PlaceCursor(rapid.IntRange(0, 10).Draw(t, "col"), rapid.IntRange(0, 5).Draw(t, "row"))
		before, cursor := b.Lines(), b.Cursor()

		keys := rapid.SampledFrom([]string{"h", "l", "j", "k", "w", "b", "e", "^", "$", "f.", "3w", "d"}).Draw(t, "motion")
		m, result := motion.Parse(keys, keys != "d")
		if result != motion.Complete {
			t.Fatalf("%q did not parse", keys)
		}
		b.YankMovement(m)

		if !equalLines(before, b.Lines()) || cursor != b.Cursor() || b.Dirty() {
			t.Fatalf("yank %q changed the buffer", keys)
		}
	})
}

func TestDeleteThenInsertRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z .]{0,10}`), 1, 6).Draw(t, "lines")
		b := newTestBuffer(lines...)
		b.PlaceCursor(rapid.IntRange(0, 10).Draw(t, "col"), rapid.IntRange(0, 5).Draw(t, "row"))
		before := b.Lines()

		keys := rapid.SampledFrom([]string{"h", "l", "w", "b", "^", "$", "f.", "F ", "2w", "3b"}).Draw(t, "motion")
		m, result := motion.Parse(keys, true)
		if result != motion.Complete {
			t.Fatalf("%q did not parse", keys)
		}
		clip := b.Cut(m)
		if clip.Linewise {
			t.Fatalf("%q cut whole lines", keys)
		}
		b.InsertString(clip.Text)

		if !equalLines(before, b.Lines()) {
			t.Fatalf("%q: got %q, want %q", keys, b.Lines(), before)
		}
	})
}

func equalLines(a, b []string) bool {
	return strings.Join(a, "\n") == strings.Join(b, "\n") && len(a) == len(b)
}

func TestViewportSlides(t *testing.T) {
	lines := make([]string, 100)
	b := newTestBuffer(lines...)
	b.SetViewportHeight(10)
	b.SetScrollMargin(3)
	assert.Equal(t, Viewport{Start: 0, End: 10}, b.Viewport())

	b.PlaceCursor(0, 6)
	assert.Equal(t, Viewport{Start: 0, End: 10}, b.Viewport())

	b.PlaceCursor(0, 7)
	assert.Equal(t, Viewport{Start: 1, End: 11}, b.Viewport())

	b.PlaceCursor(0, 50)
	assert.Equal(t, Viewport{Start: 44, End: 54}, b.Viewport())

	// never past the last line
	b.PlaceCursor(0, 99)
	assert.Equal(t, Viewport{Start: 90, End: 100}, b.Viewport())

	b.PlaceCursor(0, 45)
	assert.Equal(t, Viewport{Start: 42, End: 52}, b.Viewport())

	// never above the first line
	b.PlaceCursor(0, 0)
	assert.Equal(t, Viewport{Start: 0, End: 10}, b.Viewport())
}

func TestViewportShortBuffer(t *testing.T) {
	b := newTestBuffer("a", "b", "c")
	b.SetViewportHeight(10)
	b.PlaceCursor(0, 2)
	assert.Equal(t, Viewport{Start: 0, End: 10}, b.Viewport())
}

func TestViewportMarginShrinks(t *testing.T) {
	lines := make([]string, 20)
	b := newTestBuffer(lines...)
	b.SetViewportHeight(3)
	b.SetScrollMargin(5)
	b.PlaceCursor(0, 1)
	assert.Equal(t, Viewport{Start: 0, End: 3}, b.Viewport())
	b.PlaceCursor(0, 2)
	assert.Equal(t, Viewport{Start: 1, End: 4}, b.Viewport())
}

func TestDisplayText(t *testing.T) {
	r := NewRow("\tab\tc")
	assert.Equal(t, "    ab  c", r.DisplayText(4))
	r.InsertChar(0, 'x')
	assert.Equal(t, "x   ab  c", r.DisplayText(4))

	// wide characters take two cells
	assert.Equal(t, "世  x", NewRow("世\tx").DisplayText(4))
}

func TestDetectIndent(t *testing.T) {
	spaces := Indent{Width: 4}
	tests := []struct {
		name  string
		lines []string
		want  Indent
	}{
		{"empty", nil, spaces},
		{"tabs", []string{"", "\tfoo"}, TabIndent},
		{"spaces", []string{"  foo", "    bar"}, Indent{Width: 2}},
		{"unindented", []string{"foo", "\tbar"}, spaces},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIndent(tt.lines, spaces))
		})
	}
}
