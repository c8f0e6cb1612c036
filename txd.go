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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timburks/txd/commander"
	"github.com/timburks/txd/config"
	"github.com/timburks/txd/editor"
	"github.com/timburks/txd/screen"
	txd "github.com/timburks/txd/types"
	"github.com/timburks/txd/watcher"
)

// the event loop wakes up this often to look for files changed on disk
const pollInterval = time.Second

var (
	cfgFile string
	script  string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "txd [files...]",
	Short:        "A modal text editor",
	Long:         `txd is a small vi-like text editor that runs in a terminal and can be scripted with lisp.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/txd/config.yaml)")
	rootCmd.Flags().StringVar(&script, "eval", "",
		"run a lisp script against the files and exit")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"show information about input events")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Open a log file. Scripts log to stderr since no screen is in the way.
	if script == "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(editor.NewDiskStore(cfg.FallbackIndent()), cfg.Settings())
	if cfg.Clipboard && editor.ClipboardAvailable() {
		e.Registers.SetClipboard(editor.SystemClipboard{})
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetDebug(debug)

	if script != "" {
		openFiles(e, args)
		return runScript(c, script, cmd.OutOrStdout())
	}

	w, err := watcher.New()
	if err != nil {
		log.Printf("%v", err)
	} else {
		defer w.Close()
		e.SetWatcher(w)
	}
	openFiles(e, args)

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Interrupt()
			case <-done:
				return
			}
		}
	}()

	// Run the main event loop.
	for !e.Quit {
		s.Render(e, c)
		event := s.GetNextEvent()
		if event.Type == txd.EventKey && event.Key == txd.KeyCtrlC {
			break
		}
		if err := c.ProcessEvent(event); err != nil {
			log.Printf("%v", err)
		}
		if w != nil {
			for _, path := range w.Poll() {
				e.NoteExternalChange(path)
			}
		}
	}
	return nil
}

// openFiles loads each named file into its own buffer. Files that do not
// exist yet become empty buffers that will be written to that name.
func openFiles(e *editor.Editor, names []string) {
	for _, name := range names {
		err := e.Open(name)
		switch {
		case err == nil:
		case editor.IsNotFound(err):
			e.OpenEmpty(name)
		default:
			log.Printf("%v", err)
			e.Status = err.Error()
		}
	}
}

func runScript(c *commander.Commander, path string, out io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	// a script is a sequence of forms; its value is that of the last one
	result, err := c.Eval("(begin\n" + string(source) + "\n)")
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", path, err)
	}
	fmt.Fprintln(out, result)
	return nil
}
