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
	"bufio"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// A FileStore reads and writes the files behind buffers.
type FileStore interface {
	Load(path string) ([]string, Indent, error)
	Save(path string, lines []string) error
}

// DiskStore is the FileStore for the local filesystem.
type DiskStore struct {
	// Fallback is the indentation given to files that don't reveal their own.
	Fallback Indent
}

func NewDiskStore(fallback Indent) *DiskStore {
	return &DiskStore{Fallback: fallback}
}

// Load returns the lines of a file without their terminators.
// A final line terminator does not start another line.
func (s *DiskStore) Load(path string) ([]string, Indent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, s.Fallback, newIOError(path, err)
	}
	lines := SplitLines(string(b))
	return lines, DetectIndent(lines, s.Fallback), nil
}

// SplitLines breaks text at "\n" or "\r\n".
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Save truncates and rewrites a file, one terminated line at a time, and
// flushes it to stable storage. The file is locked while this happens.
func (s *DiskStore) Save(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return newIOError(path, err)
	}
	defer f.Close()

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return newIOError(path, err)
	}
	defer lock.Unlock()

	if err := f.Truncate(0); err != nil {
		return newIOError(path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return newIOError(path, err)
	}
	if err := f.Sync(); err != nil {
		return newIOError(path, err)
	}
	return nil
}
