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

// Package commander converts user input and scripts into actions on an
// editor. It owns the modal state machine: keys typed in Normal mode are
// collected until they name a complete action, Insert mode edits the active
// buffer directly and Command mode edits the command line.
package commander

import (
	"fmt"
	"log"

	"github.com/timburks/txd/editor"
	"github.com/timburks/txd/motion"
	"github.com/timburks/txd/operations"
	txd "github.com/timburks/txd/types"
)

// The Commander converts user input into actions for the Editor.
type Commander struct {
	editor   *editor.Editor
	mode     txd.Mode
	debug    bool   // debug mode displays information about events (key codes, etc)
	editKeys string // normal-mode key sequence in progress

	evaluating bool // inside Eval
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: txd.ModeNormal}
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() txd.Mode {
	return c.mode
}

func (c *Commander) SetMode(m txd.Mode) {
	c.mode = m
}

// GetEditKeys returns the keys of an unfinished normal-mode command.
func (c *Commander) GetEditKeys() string {
	return c.editKeys
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) ProcessEvent(event *txd.Event) error {
	if c.debug {
		c.editor.Status = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case txd.EventKey:
		return c.ProcessKey(event)
	case txd.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

// ProcessResize has nothing to do; the screen reports new sizes to the editor.
func (c *Commander) ProcessResize(event *txd.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *txd.Event) error {
	var err error
	switch c.mode {
	case txd.ModeNormal:
		err = c.ProcessKeyNormalMode(event)
	case txd.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case txd.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyNormalMode(event *txd.Event) error {
	b := c.editor.Buffer()

	if event.Key != 0 {
		// special keys abandon any command in progress
		c.editKeys = ""
		switch event.Key {
		case txd.KeyArrowUp:
			c.perform(step(motion.Line, false))
		case txd.KeyArrowDown:
			c.perform(step(motion.Line, true))
		case txd.KeyArrowLeft:
			c.perform(step(motion.Char, false))
		case txd.KeyArrowRight:
			c.perform(step(motion.Char, true))
		case txd.KeyHome:
			c.perform(&operations.Move{Motion: motion.Motion{Kind: motion.StartOfLine}})
		case txd.KeyEnd:
			c.perform(&operations.Move{Motion: motion.Motion{Kind: motion.EndOfLine, Inclusion: motion.Inclusive}})
		case txd.KeyPgup, txd.KeyPgdn:
			v := b.Viewport()
			page := motion.Repeat(v.End-v.Start, step(motion.Line, event.Key == txd.KeyPgdn).Motion)
			c.perform(&operations.Move{Motion: page})
		}
		return nil
	}
	if event.Ch < ' ' {
		return nil
	}

	c.editKeys += string(event.Ch)
	action, result := ParseAction(c.editKeys)
	switch result {
	case motion.Complete:
		c.editKeys = ""
		c.perform(action)
	case motion.Invalid:
		c.editKeys = ""
	}
	return nil
}

func (c *Commander) perform(action operations.Action) {
	if c.debug {
		log.Printf("perform %s", action)
	}
	c.mode = action.Perform(c.editor)
}

// step is a one-character or one-line move.
func step(kind motion.Kind, forward bool) *operations.Move {
	m := motion.Motion{Kind: kind, Forward: forward, Inclusion: motion.Exclusive}
	if kind == motion.Line {
		m.Inclusion = motion.Linewise
	}
	return &operations.Move{Motion: m}
}
