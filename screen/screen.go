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
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/txd/editor"
	txd "github.com/timburks/txd/types"
)

// Commander is what the screen needs to know about input handling.
type Commander interface {
	GetMode() txd.Mode
	GetEditKeys() string
}

// The Screen draws the state of an Editor.
type Screen struct {
	size txd.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		log.Output(1, err.Error())
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor, c Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	// the bottom two rows hold the info and message bars
	textRows := max(s.size.Rows-2, 1)
	e.SetViewportHeight(textRows)

	b := e.Buffer()
	cursor := b.Cursor()
	cx, _ := Layout(b.Line(cursor.Row), b.TabWidth()).Bounds(cursor.Col)
	left := max(cx-s.size.Cols+1, 0)

	v := b.Viewport()
	for y := 0; y < textRows; y++ {
		row := b.Row(v.Start + y)
		if row == nil {
			termbox.SetCell(0, y, '~', termbox.ColorBlue, termbox.ColorBlack)
			continue
		}
		s.renderLine(y, row.DisplayText(b.TabWidth()), left)
	}

	s.RenderInfoBar(e, c)
	message := s.RenderMessageBar(e, c)

	if c.GetMode() == txd.ModeCommand {
		termbox.SetCursor(min(runewidth.StringWidth(message), s.size.Cols-1), s.size.Rows-1)
	} else {
		termbox.SetCursor(cx-left, cursor.Row-v.Start)
	}
	termbox.Flush()
}

// renderLine draws display text starting at cell left of the line.
func (s *Screen) renderLine(y int, text string, left int) {
	x := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= left && x-left+w <= s.size.Cols {
			termbox.SetCell(x-left, y, ch, termbox.ColorWhite, termbox.ColorBlack)
		}
		x += w
		if x-left >= s.size.Cols {
			return
		}
	}
}

func (s *Screen) RenderInfoBar(e *editor.Editor, c Commander) {
	b := e.Buffer()
	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	if b.Dirty() {
		name += " [+]"
	}
	finalText := fmt.Sprintf(" %d:%d/%d ", b.Cursor().Row+1, b.Cursor().Col+1, b.GetRowCount())
	text := fmt.Sprintf(" %s - %s (%d) ", c.GetMode(), name, b.GetIndex())
	width := max(s.size.Cols-runewidth.StringWidth(finalText), 0)
	s.drawText(0, s.size.Rows-2, Fit(text, width)+finalText, termbox.ColorBlack, termbox.ColorWhite)
}

// RenderMessageBar shows the command line in Command mode and the status
// message otherwise. In Command mode it returns the text before the cursor.
func (s *Screen) RenderMessageBar(e *editor.Editor, c Commander) string {
	if c.GetMode() == txd.ModeCommand {
		s.drawText(0, s.size.Rows-1, Truncate(":"+e.Command.Text(), s.size.Cols), termbox.ColorWhite, termbox.ColorBlack)
		return ":" + string(e.Command.Line(0)[:e.Command.Cursor().Col])
	}
	line := Truncate(e.Status, s.size.Cols)
	if keys := c.GetEditKeys(); keys != "" {
		line = Fit(line, max(s.size.Cols-len(keys)-1, 0)) + " " + keys
	}
	s.drawText(0, s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorBlack)
	return line
}

func (s *Screen) drawText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += w
	}
}

func (s *Screen) GetNextEvent() *txd.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return translate(event)
}

// Interrupt makes a blocked GetNextEvent return.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func translate(event termbox.Event) *txd.Event {
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return txd.CharEvent(event.Ch)
		}
		if event.Key == termbox.KeySpace {
			return txd.CharEvent(' ')
		}
		return txd.KeyEvent(key(event.Key))
	case termbox.EventResize:
		return &txd.Event{Type: txd.EventResize}
	default:
		return &txd.Event{Type: txd.EventOther}
	}
}

func key(k termbox.Key) txd.Key {
	switch k {
	case termbox.KeyArrowDown:
		return txd.KeyArrowDown
	case termbox.KeyArrowLeft:
		return txd.KeyArrowLeft
	case termbox.KeyArrowRight:
		return txd.KeyArrowRight
	case termbox.KeyArrowUp:
		return txd.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return txd.KeyBackspace
	case termbox.KeyDelete:
		return txd.KeyDelete
	case termbox.KeyCtrlC:
		return txd.KeyCtrlC
	case termbox.KeyEnd:
		return txd.KeyEnd
	case termbox.KeyEnter:
		return txd.KeyEnter
	case termbox.KeyEsc:
		return txd.KeyEsc
	case termbox.KeyHome:
		return txd.KeyHome
	case termbox.KeyPgdn:
		return txd.KeyPgdn
	case termbox.KeyPgup:
		return txd.KeyPgup
	case termbox.KeyTab:
		return txd.KeyTab
	default:
		return txd.KeyUnsupported
	}
}
