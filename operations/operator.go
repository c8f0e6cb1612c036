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
	"github.com/timburks/txd/motion"
	txd "github.com/timburks/txd/types"
)

// Delete removes the text covered by a motion and saves it in a register.
type Delete struct {
	Motion   motion.Motion
	Register rune
}

func (op *Delete) Perform(e *editor.Editor) txd.Mode {
	cut(e, op.Motion, op.Register)
	return txd.ModeNormal
}

func (op *Delete) String() string {
	return fmt.Sprintf("Delete(%s, %q)", op.Motion, op.Register)
}

// Change deletes like Delete and then starts inserting.
type Change struct {
	Motion   motion.Motion
	Register rune
}

func (op *Change) Perform(e *editor.Editor) txd.Mode {
	cut(e, op.Motion, op.Register)
	return txd.ModeInsert
}

func (op *Change) String() string {
	return fmt.Sprintf("Change(%s, %q)", op.Motion, op.Register)
}

// Yank saves the text covered by a motion in a register.
type Yank struct {
	Motion   motion.Motion
	Register rune
}

func (op *Yank) Perform(e *editor.Editor) txd.Mode {
	clip := e.Buffer().Copy(op.Motion)
	if clip.Text != "" {
		e.Registers.Push(op.Register, clip)
	}
	return txd.ModeNormal
}

func (op *Yank) String() string {
	return fmt.Sprintf("Yank(%s, %q)", op.Motion, op.Register)
}

// an empty cut leaves the register alone
func cut(e *editor.Editor, m motion.Motion, register rune) {
	clip := e.Buffer().Cut(m)
	if clip.Text != "" {
		e.Registers.Push(register, clip)
	}
}
