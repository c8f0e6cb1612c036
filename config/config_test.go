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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/txd/editor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "tab_width: 4\nexpand_tabs: true\nscroll_margin: 1\nclipboard: false\nlog_file: /tmp/txd.log\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.True(t, cfg.ExpandTabs)
	assert.Equal(t, 1, cfg.ScrollMargin)
	assert.False(t, cfg.Clipboard)
	assert.Equal(t, "/tmp/txd.log", cfg.LogFile)

	assert.Equal(t, editor.Indent{Width: 4}, cfg.FallbackIndent())
	assert.Equal(t, editor.Settings{TabWidth: 4, ScrollMargin: 1}, cfg.Settings())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "scroll_margin: 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	defaults := Defaults()
	assert.Equal(t, defaults.TabWidth, cfg.TabWidth)
	assert.Equal(t, 0, cfg.ScrollMargin)
	assert.True(t, cfg.Clipboard)
	assert.Equal(t, editor.TabIndent, cfg.FallbackIndent())
}

func TestLoadEnvironment(t *testing.T) {
	path := writeConfig(t, "tab_width: 4\n")
	t.Setenv("TXD_TAB_WIDTH", "2")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabWidth)
}

func TestLoadDefaultLocation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultTabWidth, cfg.TabWidth)
	assert.Equal(t, editor.DefaultScrollMargin, cfg.ScrollMargin)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "tab_width: 0\n"))
	assert.ErrorContains(t, err, "tab_width")

	_, err = Load(writeConfig(t, "scroll_margin: -1\n"))
	assert.ErrorContains(t, err, "scroll_margin")
}
