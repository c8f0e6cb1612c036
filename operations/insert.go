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
package operations

import (
	"fmt"

	"github.com/timburks/txd/editor"
	txd "github.com/timburks/txd/types"
)

// Insert positions the cursor and switches to insert mode.
type Insert struct {
	Position int
}

func (op *Insert) Perform(e *editor.Editor) txd.Mode {
	b := e.Buffer()
	cursor := b.Cursor()
	switch op.Position {
	case txd.InsertAtCursor:
		break
	case txd.InsertAfterCursor:
		b.MoveCursor(1, 0)
	case txd.InsertAtStartOfLine:
		b.PlaceCursor(0, cursor.Row)
	case txd.InsertAfterEndOfLine:
		b.PlaceCursor(b.GetRowLength(cursor.Row), cursor.Row)
	case txd.InsertAtNewLineBelowCursor:
		b.InsertLine("")
	case txd.InsertAtNewLineAboveCursor:
		b.InsertLineAbove("")
	}
	return txd.ModeInsert
}

func (op *Insert) String() string {
	return fmt.Sprintf("Insert(%d)", op.Position)
}

// Command opens the command line.
type Command struct{}

func (op *Command) Perform(e *editor.Editor) txd.Mode {
	e.Command.Clear()
	return txd.ModeCommand
}

func (op *Command) String() string {
	return "Command"
}
