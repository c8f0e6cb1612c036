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
	"github.com/timburks/txd/editor"
	"github.com/timburks/txd/motion"
	txd "github.com/timburks/txd/types"
)

// Move puts the cursor where a motion lands.
type Move struct {
	Motion motion.Motion
}

func (op *Move) Perform(e *editor.Editor) txd.Mode {
	b := e.Buffer()
	r := motion.Resolve(b, b.Cursor(), op.Motion)
	b.PlaceCursor(r.Target.Col, r.Target.Row)
	return txd.ModeNormal
}

func (op *Move) String() string {
	return "Move(" + op.Motion.String() + ")"
}
