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

// Package types holds the vocabulary shared by the txd packages:
// positions, modes and input events.
package types

// Mode is the state of the modal input machine.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// A Point is a position in a buffer, measured in characters.
type Point struct {
	Col int
	Row int
}

// Before reports whether p comes strictly before q in reading order.
func (p Point) Before(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

// An Event is a single input event, already translated from the terminal library.
// Printable input arrives in Ch with Key == 0.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key) *Event {
	return &Event{Type: EventKey, Key: k}
}

// CharEvent builds a key event for a printable character.
func CharEvent(c rune) *Event {
	return &Event{Type: EventKey, Ch: c}
}

// Insert positions
const (
	InsertAtCursor = iota
	InsertAfterCursor
	InsertAtStartOfLine
	InsertAfterEndOfLine
	InsertAtNewLineBelowCursor
	InsertAtNewLineAboveCursor
)
