// Package shaderwatch notices edits to shader sources on disk so the render
// loop can rebuild its program without restarting.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// editors tend to write a file in several steps; wait this long after the
// last event before asking for a reload
const settleTime = 100 * time.Millisecond

type Watcher struct {
	watcher *inotify.Watcher
	reload  chan struct{}
	done    chan struct{}
}

// New watches dir for shader files (*.vert, *.frag, *.glsl) being written or
// moved into place.
func New(dir string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	_, err = watcher.AddWatch(dir, inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher: watcher,
		reload:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Reload receives a value whenever shaders changed since the last receive.
// Bursts of changes are coalesced into one notification.
func (w *Watcher) Reload() <-chan struct{} {
	return w.reload
}

// Pending reports without blocking whether a reload was requested.
func (w *Watcher) Pending() bool {
	select {
	case <-w.reload:
		return true
	default:
		return false
	}
}

// Close stops watching. Errors the watcher ran into are reported here.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	if err != nil {
		slog.Warn(fmt.Sprintf("inotify watcher stopped with error: %s", err), slog.String("module", "shaderwatch"))
	}
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var settle <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Event:
			if !ok {
				return
			}
			if !isShaderEvent(ev) {
				continue
			}
			slog.Debug(fmt.Sprintf("shader %s changed", filepath.Base(ev.Name)), slog.String("module", "shaderwatch"))
			settle = time.After(settleTime)
		case <-settle:
			settle = nil
			select {
			case w.reload <- struct{}{}:
			default:
			}
		}
	}
}

func isShaderEvent(ev inotify.Event) bool {
	if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
		return false
	}
	return IsShaderFile(ev.Name)
}

func IsShaderFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vert", ".frag", ".glsl":
		return true
	default:
		return false
	}
}
