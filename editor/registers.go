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
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/samber/mo"
)

// Register names with special meaning.
const (
	DefaultRegister   = '"'
	ClipboardRegister = '+'
)

// A Clip is one register entry. Linewise clips hold whole lines and always
// end in a line terminator; other clips are spans within or across lines.
type Clip struct {
	Text     string
	Linewise bool
}

// ClipFromText infers the kind of a clip from its text.
func ClipFromText(text string) Clip {
	return Clip{Text: text, Linewise: strings.HasSuffix(text, "\n")}
}

// Clipboard is the system clipboard, when there is one.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Registers is a set of named LIFO stacks of clips.
// They outlive any single buffer.
type Registers struct {
	stacks    map[rune][]Clip
	clipboard Clipboard
}

func NewRegisters() *Registers {
	return &Registers{stacks: make(map[rune][]Clip)}
}

// SetClipboard connects the + register to a system clipboard; nil disconnects it.
func (r *Registers) SetClipboard(c Clipboard) {
	r.clipboard = c
}

func (r *Registers) Push(name rune, c Clip) {
	r.stacks[name] = append(r.stacks[name], c)
	if name == ClipboardRegister && r.clipboard != nil {
		if err := r.clipboard.WriteAll(c.Text); err != nil {
			log.Printf("clipboard write: %v", err)
		}
	}
}

// Top returns the most recent clip in a register without removing it.
func (r *Registers) Top(name rune) mo.Option[Clip] {
	stack := r.stacks[name]
	if len(stack) == 0 {
		return r.fromClipboard(name)
	}
	return mo.Some(stack[len(stack)-1])
}

// Pop removes and returns the most recent clip in a register.
func (r *Registers) Pop(name rune) mo.Option[Clip] {
	stack := r.stacks[name]
	if len(stack) == 0 {
		return r.fromClipboard(name)
	}
	c := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(r.stacks, name)
	} else {
		r.stacks[name] = stack[:len(stack)-1]
	}
	return mo.Some(c)
}

func (r *Registers) fromClipboard(name rune) mo.Option[Clip] {
	if name != ClipboardRegister || r.clipboard == nil {
		return mo.None[Clip]()
	}
	text, err := r.clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard read: %v", err)
		return mo.None[Clip]()
	}
	if text == "" {
		return mo.None[Clip]()
	}
	return mo.Some(ClipFromText(text))
}

// Depth returns the number of clips stored in a register.
func (r *Registers) Depth(name rune) int {
	return len(r.stacks[name])
}

// Names returns the non-empty registers in sorted order.
func (r *Registers) Names() []rune {
	names := make([]rune, 0, len(r.stacks))
	for name := range r.stacks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Dump renders every register as {name: [oldest ... newest]}.
func (r *Registers) Dump() string {
	entries := make([]string, 0, len(r.stacks))
	for _, name := range r.Names() {
		texts := make([]string, 0, len(r.stacks[name]))
		for _, c := range r.stacks[name] {
			texts = append(texts, c.Text)
		}
		entries = append(entries, fmt.Sprintf("%q: %q", string(name), texts))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
