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

// Package watcher reports files that change on disk while they are open.
package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects changes to a set of files. A background goroutine queues
// changed paths and the editor loop drains them with Poll.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup

	mu         sync.Mutex
	files      map[string]bool      // absolute paths being watched
	dirs       map[string]int       // watched directories and how many files use them
	suppressed map[string]time.Time // ignore events on a path until this time
	pending    []string
}

// New creates a watcher and starts its event loop.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsWatcher:  fsw,
		done:       make(chan struct{}),
		files:      make(map[string]bool),
		dirs:       make(map[string]int),
		suppressed: make(map[string]time.Time),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Add starts watching path. The containing directory is watched so that
// files replaced by rename are still noticed.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Suppress ignores changes to path for the duration d. The editor calls it
// before writing a file itself.
func (w *Watcher) Suppress(path string, d time.Duration) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.suppressed[abs] = time.Now().Add(d)
	w.mu.Unlock()
}

// Poll returns the paths that changed since the last call, each once, in the
// order they first changed. It never blocks.
func (w *Watcher) Poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	changed := w.pending
	w.pending = nil
	return changed
}

// Close stops the event loop and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.note(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) note(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[abs] {
		return
	}
	if until, ok := w.suppressed[abs]; ok {
		if time.Now().Before(until) {
			return
		}
		delete(w.suppressed, abs)
	}
	for _, p := range w.pending {
		if p == abs {
			return
		}
	}
	w.pending = append(w.pending, abs)
}
