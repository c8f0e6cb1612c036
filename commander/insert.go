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
package commander

import (
	"github.com/timburks/txd/editor"
	"github.com/timburks/txd/motion"
	txd "github.com/timburks/txd/types"
)

func (c *Commander) ProcessKeyInsertMode(event *txd.Event) error {
	b := c.editor.Buffer()
	switch event.Key {
	case txd.KeyEsc:
		c.mode = txd.ModeNormal
	case txd.KeyEnter:
		b.BreakLine()
	case txd.KeyTab:
		b.InsertTab()
	case txd.KeyArrowUp:
		step(motion.Line, false).Perform(c.editor)
	case txd.KeyArrowDown:
		step(motion.Line, true).Perform(c.editor)
	default:
		editLine(b, event)
	}
	return nil
}

// editLine applies the keys that work the same way on the command line
// and in a buffer being edited.
func editLine(b *editor.Buffer, event *txd.Event) {
	switch event.Key {
	case txd.KeyBackspace:
		if b.Cursor().Col > 0 {
			b.MoveCursor(-1, 0)
			b.DeleteChar()
		}
	case txd.KeyDelete:
		b.DeleteChar()
	case txd.KeyArrowLeft:
		b.MoveCursor(-1, 0)
	case txd.KeyArrowRight:
		b.MoveCursor(1, 0)
	case txd.KeyHome:
		b.PlaceCursor(0, b.Cursor().Row)
	case txd.KeyEnd:
		b.PlaceCursor(b.GetRowLength(b.Cursor().Row), b.Cursor().Row)
	case txd.KeyNone:
		if event.Ch >= ' ' {
			b.InsertChar(event.Ch)
		}
	}
}
