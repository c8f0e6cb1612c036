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
	"fmt"
	"log"
	"strconv"
	"strings"

	txd "github.com/timburks/txd/types"
)

type CommandErrorKind int

const (
	UnknownCommand CommandErrorKind = iota
	InvalidCommand
)

// A CommandError reports a command line that couldn't be run.
type CommandError struct {
	Kind    CommandErrorKind
	Command string
	Reason  string
}

func (e *CommandError) Error() string {
	if e.Kind == UnknownCommand {
		return fmt.Sprintf("not an editor command: %s", e.Command)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

func invalid(command, format string, args ...any) error {
	return &CommandError{Kind: InvalidCommand, Command: command, Reason: fmt.Sprintf(format, args...)}
}

func (c *Commander) ProcessKeyCommandMode(event *txd.Event) error {
	e := c.editor
	switch event.Key {
	case txd.KeyEsc:
		e.Command.Clear()
		c.mode = txd.ModeNormal
	case txd.KeyEnter:
		command := e.Command.Text()
		e.Command.Clear()
		c.mode = txd.ModeNormal
		if err := c.PerformCommand(command); err != nil {
			log.Printf("%s: %v", command, err)
			e.Status = err.Error()
		}
	default:
		editLine(e.Command, event)
	}
	return nil
}

// PerformCommand runs one command line.
func (c *Commander) PerformCommand(command string) error {
	e := c.editor

	if expr := strings.TrimSpace(command); strings.HasPrefix(expr, "(") {
		value, err := c.Eval(expr)
		if err != nil {
			return err
		}
		e.Status = value
		return nil
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}
	name, args := parts[0], parts[1:]

	// a line number moves the cursor to that line
	if n, err := strconv.Atoi(name); err == nil {
		b := e.Buffer()
		b.PlaceCursor(0, n-1)
		return nil
	}

	switch name {
	case "q", "quit":
		e.Quit = true
	case "w", "wq":
		if len(args) > 1 {
			return invalid(name, "too many file names")
		}
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		if err := e.Save(path); err != nil {
			return err
		}
		if name == "wq" {
			e.Quit = true
		}
	case "e":
		if len(args) != 1 {
			return invalid(name, "expected one file name")
		}
		return e.Open(args[0])
	case "b":
		if len(args) != 1 {
			return invalid(name, "expected a buffer number or #")
		}
		if args[0] == "#" {
			return e.SelectPreviousBuffer()
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return invalid(name, "%q is not a buffer number", args[0])
		}
		if err := e.SelectBuffer(i); err != nil {
			return invalid(name, "%v", err)
		}
	case "ls":
		e.Status = e.ListBuffers()
	case `"`:
		e.Status = e.Registers.Dump()
	case "debug":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return invalid(name, "expected on or off")
		}
		c.debug = args[0] == "on"
		if !c.debug {
			e.Status = ""
		}
	default:
		return &CommandError{Kind: UnknownCommand, Command: name}
	}
	return nil
}

