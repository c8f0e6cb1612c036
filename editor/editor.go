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
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"
)

// SaveQuietPeriod is how long change notifications are ignored for a file
// after the editor writes it.
const SaveQuietPeriod = 2 * time.Second

var ErrNoFileName = errors.New("no file name")

// A Watcher reports changes made to open files by other programs.
type Watcher interface {
	Add(path string) error
	Suppress(path string, d time.Duration)
}

// Settings are the user preferences that shape new buffers.
type Settings struct {
	TabWidth     int
	ScrollMargin int
}

// The Editor owns every open buffer along with the state shared between
// them: registers, the status message and the command line.
type Editor struct {
	Registers *Registers
	Status    string // message shown below the text
	Quit      bool   // set when the user asks to leave
	Command   *Buffer

	buffers  []*Buffer
	current  int
	previous int
	store    FileStore
	watcher  Watcher
	settings Settings
	height   int
}

func NewEditor(store FileStore, settings Settings) *Editor {
	if settings.TabWidth <= 0 {
		settings.TabWidth = DefaultTabWidth
	}
	if settings.ScrollMargin < 0 {
		settings.ScrollMargin = DefaultScrollMargin
	}
	e := &Editor{
		Registers: NewRegisters(),
		Command:   NewBuffer(),
		store:     store,
		settings:  settings,
		height:    DefaultViewportHeight,
	}
	e.addBuffer(e.newBuffer())
	return e
}

// SetWatcher starts reporting changes to files opened from now on.
func (e *Editor) SetWatcher(w Watcher) {
	e.watcher = w
	for _, b := range e.buffers {
		e.watch(b.GetFileName())
	}
}

func (e *Editor) watch(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	// new files can't be watched until they are saved
	if err := e.watcher.Add(path); err != nil {
		log.Printf("watch %s: %v", path, err)
	}
}

func (e *Editor) newBuffer() *Buffer {
	b := NewBuffer()
	b.SetTabWidth(e.settings.TabWidth)
	b.SetScrollMargin(e.settings.ScrollMargin)
	b.SetViewportHeight(e.height)
	return b
}

func (e *Editor) addBuffer(b *Buffer) {
	b.number = len(e.buffers)
	e.buffers = append(e.buffers, b)
	e.choose(b.number)
}

func (e *Editor) choose(i int) {
	if i != e.current {
		e.previous = e.current
	}
	e.current = i
}

// Buffer returns the active buffer.
func (e *Editor) Buffer() *Buffer {
	return e.buffers[e.current]
}

func (e *Editor) Buffers() []*Buffer {
	return e.buffers
}

// replaceable reports whether the active buffer is the untouched one
// created at start-up, which a newly opened file may take over.
func (e *Editor) replaceable() bool {
	b := e.Buffer()
	return len(e.buffers) == 1 && b.GetFileName() == "" && !b.Dirty() &&
		b.GetRowCount() == 1 && b.GetRowLength(0) == 0
}

// Open reads a file into a new buffer and makes it active. On failure the
// editor is left as it was.
func (e *Editor) Open(path string) error {
	lines, indent, err := e.store.Load(path)
	if err != nil {
		return err
	}
	b := e.newBuffer()
	b.LoadLines(lines, indent)
	b.SetFileName(path)
	e.install(b)
	e.watch(path)
	return nil
}

// OpenEmpty makes a new empty buffer bound to path the active one.
func (e *Editor) OpenEmpty(path string) {
	b := e.newBuffer()
	b.SetFileName(path)
	e.install(b)
}

func (e *Editor) install(b *Buffer) {
	if e.replaceable() {
		b.number = 0
		e.buffers[0] = b
		return
	}
	e.addBuffer(b)
}

// Save writes the active buffer to path, or to its own file when path is
// empty. A buffer without a file name takes path as its name.
func (e *Editor) Save(path string) error {
	b := e.Buffer()
	if path == "" {
		path = b.GetFileName()
	}
	if path == "" {
		return ErrNoFileName
	}
	if e.watcher != nil {
		e.watcher.Suppress(path, SaveQuietPeriod)
	}
	if err := e.store.Save(path, b.Lines()); err != nil {
		return err
	}
	if b.GetFileName() == "" {
		b.SetFileName(path)
		e.watch(path)
	}
	if path == b.GetFileName() {
		b.markClean()
	}
	e.Status = fmt.Sprintf("%q %dL written", path, b.GetRowCount())
	return nil
}

// SelectBuffer makes the buffer at index i active.
func (e *Editor) SelectBuffer(i int) error {
	if i < 0 || i >= len(e.buffers) {
		return fmt.Errorf("no buffer %d", i)
	}
	e.choose(i)
	return nil
}

// SelectPreviousBuffer returns to the buffer that was active before the current one.
func (e *Editor) SelectPreviousBuffer() error {
	return e.SelectBuffer(e.previous)
}

// ListBuffers describes every buffer on one line. The active buffer is
// marked with %, the previous one with # and modified ones with +.
func (e *Editor) ListBuffers() string {
	entries := make([]string, 0, len(e.buffers))
	for i, b := range e.buffers {
		mark := " "
		switch {
		case i == e.current:
			mark = "%"
		case i == e.previous:
			mark = "#"
		}
		name := b.GetFileName()
		if name == "" {
			name = "[No Name]"
		}
		if b.Dirty() {
			name += " +"
		}
		entries = append(entries, fmt.Sprintf("%d%s %s", i, mark, name))
	}
	return strings.Join(entries, " | ")
}

// NoteExternalChange reports a change to path made outside the editor.
func (e *Editor) NoteExternalChange(path string) {
	for _, b := range e.buffers {
		if b.GetFileName() == "" {
			continue
		}
		if sameFile(b.GetFileName(), path) {
			e.Status = fmt.Sprintf("%s changed on disk", b.GetFileName())
			return
		}
	}
}

func sameFile(a, b string) bool {
	if a == b {
		return true
	}
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}

// SetViewportHeight is called by the renderer when the text area changes size.
func (e *Editor) SetViewportHeight(rows int) {
	e.height = rows
	for _, b := range e.buffers {
		b.SetViewportHeight(rows)
	}
}
