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
	"strings"
)

// Indent is a buffer's indentation style: one tab, or Width spaces.
type Indent struct {
	Tabs  bool
	Width int
}

// TabIndent is used when nothing better is known.
var TabIndent = Indent{Tabs: true}

// Unit returns the text inserted by one press of the tab key.
func (i Indent) Unit() string {
	if i.Tabs || i.Width <= 0 {
		return "\t"
	}
	return strings.Repeat(" ", i.Width)
}

func (i Indent) String() string {
	if i.Tabs || i.Width <= 0 {
		return "tabs"
	}
	return fmt.Sprintf("%d spaces", i.Width)
}

// DetectIndent inspects the first non-empty line. A leading tab means tabs,
// a run of leading spaces means that many spaces, anything else gives fallback.
func DetectIndent(lines []string, fallback Indent) Indent {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if line[0] == '\t' {
			return TabIndent
		}
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		if n > 0 {
			return Indent{Width: n}
		}
		return fallback
	}
	return fallback
}
