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

// Replace substitutes the character under the cursor.
type Replace struct {
	Character rune
}

func (op *Replace) Perform(e *editor.Editor) txd.Mode {
	b := e.Buffer()
	if b.GetRowLength(b.Cursor().Row) == 0 {
		return txd.ModeNormal
	}
	b.DeleteChar()
	at := b.Cursor()
	b.InsertChar(op.Character)
	b.PlaceCursor(at.Col, at.Row)
	return txd.ModeNormal
}

func (op *Replace) String() string {
	return fmt.Sprintf("Replace(%q)", op.Character)
}
