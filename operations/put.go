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

	"github.com/samber/mo"

	"github.com/timburks/txd/editor"
	txd "github.com/timburks/txd/types"
)

// Put inserts the most recent clip of a register at the cursor.
// Whole-line clips go in below the cursor's line.
type Put struct {
	Register rune
	Consume  bool // take the clip off the register
}

func (op *Put) Perform(e *editor.Editor) txd.Mode {
	var clip mo.Option[editor.Clip]
	if op.Consume {
		clip = e.Registers.Pop(op.Register)
	} else {
		clip = e.Registers.Top(op.Register)
	}
	if c, ok := clip.Get(); ok {
		e.Buffer().InsertString(c.Text)
	}
	return txd.ModeNormal
}

func (op *Put) String() string {
	return fmt.Sprintf("Put(%q, consume=%t)", op.Register, op.Consume)
}
