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
package commander

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/steelseries/golisp"

	txd "github.com/timburks/txd/types"
)

// golisp primitives are global, so they act on whichever commander is evaluating.
var (
	lispMutex  sync.Mutex
	lispTarget *Commander
)

var keyNames = map[string]txd.Key{
	"escape":    txd.KeyEsc,
	"esc":       txd.KeyEsc,
	"enter":     txd.KeyEnter,
	"return":    txd.KeyEnter,
	"backspace": txd.KeyBackspace,
	"delete":    txd.KeyDelete,
	"tab":       txd.KeyTab,
	"up":        txd.KeyArrowUp,
	"down":      txd.KeyArrowDown,
	"left":      txd.KeyArrowLeft,
	"right":     txd.KeyArrowRight,
	"home":      txd.KeyHome,
	"end":       txd.KeyEnd,
}

func init() {
	golisp.MakePrimitiveFunction("keys", "1", KeysImpl)
	golisp.MakePrimitiveFunction("key", "1", KeyImpl)
	golisp.MakePrimitiveFunction("command", "1", CommandImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("line", "1", LineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("status", "1", StatusImpl)
	golisp.MakePrimitiveFunction("mode", "0", ModeImpl)
}

// Eval evaluates lisp source against this commander and returns the value
// of the last expression as text.
func (c *Commander) Eval(source string) (string, error) {
	// scripts may type a command line that evaluates more lisp
	if !c.evaluating {
		lispMutex.Lock()
		defer lispMutex.Unlock()
		lispTarget = c
		c.evaluating = true
		defer func() {
			lispTarget = nil
			c.evaluating = false
		}()
	}

	value, err := golisp.ParseAndEval(source)
	if err != nil {
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

func target() (*Commander, error) {
	if lispTarget == nil {
		return nil, errors.New("no editor")
	}
	return lispTarget, nil
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// (keys "dw") types keys as if they came from the keyboard.
func KeysImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	keys, err := stringArg("keys", args)
	if err != nil {
		return nil, err
	}
	for _, ch := range keys {
		event := txd.CharEvent(ch)
		switch ch {
		case '\n':
			event = txd.KeyEvent(txd.KeyEnter)
		case '\t':
			event = txd.KeyEvent(txd.KeyTab)
		}
		if err := c.ProcessEvent(event); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// (key "escape") presses one special key.
func KeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	name, err := stringArg("key", args)
	if err != nil {
		return nil, err
	}
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	return nil, c.ProcessEvent(txd.KeyEvent(k))
}

// (command "w notes.txt") runs a command line.
func CommandImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	command, err := stringArg("command", args)
	if err != nil {
		return nil, err
	}
	if err := c.PerformCommand(command); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Status), nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("insert-text", args)
	if err != nil {
		return nil, err
	}
	c.editor.Buffer().InsertString(text)
	return nil, nil
}

// (line n) returns the text of line n, counting from zero.
func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("line requires an integer argument")
	}
	row := c.editor.Buffer().Row(int(golisp.IntegerValue(val)))
	if row == nil {
		return nil, fmt.Errorf("no line %d", golisp.IntegerValue(val))
	}
	return golisp.StringWithValue(row.String()), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Buffer().GetRowCount())), nil
}

// (cursor) returns (col row).
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	p := c.editor.Buffer().Cursor()
	return golisp.InternalMakeList(golisp.IntegerWithValue(int64(p.Col)), golisp.IntegerWithValue(int64(p.Row))), nil
}

func StatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	status, err := stringArg("status", args)
	if err != nil {
		return nil, err
	}
	c.editor.Status = status
	return golisp.StringWithValue(status), nil
}

func ModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.mode.String()), nil
}
