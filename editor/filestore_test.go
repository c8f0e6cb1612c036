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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "testdata/gettysburg-address.txt"

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	store := NewDiskStore(TabIndent)
	lines, _, err := store.Load(source)
	require.NoError(t, err)
	assert.Len(t, lines, 24)

	final := filepath.Join(t.TempDir(), "final.txt")
	require.NoError(t, store.Save(final, lines))

	want, err := os.ReadFile(source)
	require.NoError(t, err)
	got, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestSaveTruncates(t *testing.T) {
	store := NewDiskStore(TabIndent)
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, store.Save(path, []string{"a much longer first version", "with two lines"}))
	require.NoError(t, store.Save(path, []string{"short"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(got))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{""}, SplitLines(""))
	assert.Equal(t, []string{"a"}, SplitLines("a"))
	assert.Equal(t, []string{"a"}, SplitLines("a\n"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\r\n"))
}

func TestLoadDetectsIndent(t *testing.T) {
	dir := t.TempDir()
	fallback := Indent{Width: 8}
	store := NewDiskStore(fallback)

	spaces := filepath.Join(dir, "spaces.py")
	require.NoError(t, os.WriteFile(spaces, []byte("\n  def f():\n    pass\n"), 0644))
	_, indent, err := store.Load(spaces)
	require.NoError(t, err)
	assert.Equal(t, Indent{Width: 2}, indent)

	plain := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(plain, []byte("no indentation\n"), 0644))
	_, indent, err = store.Load(plain)
	require.NoError(t, err)
	assert.Equal(t, fallback, indent)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewDiskStore(TabIndent)
	_, _, err := store.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, NotFound, ioErr.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveWithoutPermission(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0500))
	defer os.Chmod(dir, 0700)

	err := NewDiskStore(TabIndent).Save(filepath.Join(dir, "locked.txt"), []string{"x"})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, Permission, ioErr.Kind)
}
