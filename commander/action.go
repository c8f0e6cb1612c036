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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/timburks/txd/editor"
	"github.com/timburks/txd/motion"
	"github.com/timburks/txd/operations"
	txd "github.com/timburks/txd/types"
)

var insertKeys = map[rune]int{
	'i': txd.InsertAtCursor,
	'a': txd.InsertAfterCursor,
	'I': txd.InsertAtStartOfLine,
	'A': txd.InsertAfterEndOfLine,
	'o': txd.InsertAtNewLineBelowCursor,
	'O': txd.InsertAtNewLineAboveCursor,
}

// ParseAction reads a Normal-mode command from the keys typed so far.
// An optional "r prefix names the register the command works with.
func ParseAction(keys string) (operations.Action, motion.Result) {
	register := rune(editor.DefaultRegister)
	body := keys
	if len(keys) > 0 && keys[0] == '"' {
		if len(keys) == 1 {
			return nil, motion.Incomplete
		}
		r, size := utf8.DecodeRuneInString(keys[1:])
		register = r
		body = keys[1+size:]
	}
	if body == "" {
		return nil, motion.Incomplete
	}

	// a count in front of an operator repeats its motion
	digits := 0
	for digits < len(body) && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	count := 0
	if digits > 0 {
		n, err := strconv.Atoi(body[:digits])
		if err != nil {
			return nil, motion.Invalid
		}
		count = n
	}
	op := body[digits:]
	if op == "" {
		return nil, motion.Incomplete
	}
	repeat := func(m motion.Motion) motion.Motion {
		if digits > 0 {
			return motion.Repeat(count, m)
		}
		return m
	}

	c, size := utf8.DecodeRuneInString(op)
	rest := op[size:]
	switch c {
	case 'd', 'c', 'y':
		// only the operator's own letter names the current line (dd, not dc)
		if tail := strings.TrimLeft(rest, "0123456789"); tail != "" && strings.ContainsRune("dcy", rune(tail[0])) && rune(tail[0]) != c {
			return nil, motion.Invalid
		}
		m, result := motion.Parse(rest, false)
		if result != motion.Complete {
			return nil, result
		}
		m = repeat(m)
		switch c {
		case 'd':
			return &operations.Delete{Motion: m, Register: register}, motion.Complete
		case 'c':
			return &operations.Change{Motion: m, Register: register}, motion.Complete
		default:
			return &operations.Yank{Motion: m, Register: register}, motion.Complete
		}
	case 'x':
		right := motion.Motion{Kind: motion.Char, Forward: true, Inclusion: motion.Exclusive}
		return single(rest, &operations.Delete{Motion: repeat(right), Register: register})
	case 'p':
		return single(rest, &operations.Put{Register: register, Consume: true})
	case 'P':
		return single(rest, &operations.Put{Register: register})
	case 'r':
		if rest == "" {
			return nil, motion.Incomplete
		}
		ch, size := utf8.DecodeRuneInString(rest)
		return single(rest[size:], &operations.Replace{Character: ch})
	case ';', ':':
		return single(rest, &operations.Command{})
	}
	if position, ok := insertKeys[c]; ok {
		return single(rest, &operations.Insert{Position: position})
	}

	m, result := motion.Parse(body, true)
	if result != motion.Complete {
		return nil, result
	}
	return &operations.Move{Motion: m}, motion.Complete
}

// single accepts an action that takes no further keys.
func single(rest string, a operations.Action) (operations.Action, motion.Result) {
	if rest != "" {
		return nil, motion.Invalid
	}
	return a, motion.Complete
}
