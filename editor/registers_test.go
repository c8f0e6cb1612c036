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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.text, c.err
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestRegistersAreStacks(t *testing.T) {
	r := NewRegisters()
	assert.False(t, r.Pop('a').IsPresent())

	r.Push('a', Clip{Text: "first"})
	r.Push('a', Clip{Text: "second"})
	r.Push('b', Clip{Text: "other"})
	assert.Equal(t, 2, r.Depth('a'))

	top, ok := r.Top('a').Get()
	require.True(t, ok)
	assert.Equal(t, "second", top.Text)
	assert.Equal(t, 2, r.Depth('a'))

	assert.Equal(t, "second", r.Pop('a').MustGet().Text)
	assert.Equal(t, "first", r.Pop('a').MustGet().Text)
	assert.False(t, r.Pop('a').IsPresent())
	assert.Equal(t, []rune{'b'}, r.Names())
}

func TestRegistersDump(t *testing.T) {
	r := NewRegisters()
	assert.Equal(t, "{}", r.Dump())

	r.Push('b', Clip{Text: "two\n", Linewise: true})
	r.Push(DefaultRegister, Clip{Text: "one"})
	r.Push(DefaultRegister, Clip{Text: "three"})
	assert.Equal(t, `{"\"": ["one" "three"], "b": ["two\n"]}`, r.Dump())
}

func TestClipboardRegister(t *testing.T) {
	r := NewRegisters()
	board := &fakeClipboard{text: "from outside"}
	r.SetClipboard(board)

	// an empty + register reads the clipboard
	clip, ok := r.Top(ClipboardRegister).Get()
	require.True(t, ok)
	assert.Equal(t, Clip{Text: "from outside"}, clip)

	r.Push(ClipboardRegister, Clip{Text: "line\n", Linewise: true})
	assert.Equal(t, "line\n", board.text)
	assert.Equal(t, "line\n", r.Pop(ClipboardRegister).MustGet().Text)

	board.text = "copied\n"
	clip = r.Pop(ClipboardRegister).MustGet()
	assert.True(t, clip.Linewise)

	// other registers never touch it
	assert.False(t, r.Top('a').IsPresent())

	board.err = errors.New("no clipboard")
	assert.False(t, r.Top(ClipboardRegister).IsPresent())
}
