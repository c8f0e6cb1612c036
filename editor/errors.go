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
	"io/fs"
)

type IOErrorKind int

const (
	Other IOErrorKind = iota
	NotFound
	Permission
)

func (k IOErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Permission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// An IOError is returned by a FileStore when a file can't be read or written.
type IOError struct {
	Kind IOErrorKind
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Kind == Other && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(path string, err error) *IOError {
	kind := Other
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = Permission
	}
	return &IOError{Kind: kind, Path: path, Err: err}
}

// IsNotFound reports whether err is an IOError for a missing file.
func IsNotFound(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && ioErr.Kind == NotFound
}
