package fsview

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"explorer/internal/log"
)

// Notifier delivers external filesystem change notifications for a
// view's directory. It invokes the callback from its own goroutine;
// the callback is expected to hand off to whatever serializes access
// to the view (typically by calling Refresh from the UI loop, which is
// idempotent).
type Notifier struct {
	fsWatcher *fsnotify.Watcher
	onChange  func()
	stopChan  chan struct{}
}

// NewNotifier creates a notifier that fires onChange for every event
// under dir.
func NewNotifier(dir string, onChange func()) (*Notifier, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	n := &Notifier{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		stopChan:  make(chan struct{}),
	}

	go func() {
		for {
			select {
			case _, ok := <-n.fsWatcher.Events:
				if !ok {
					return
				}
				n.onChange()
			case err, ok := <-n.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Warnf("view watcher error: %v", err)
			case <-n.stopChan:
				return
			}
		}
	}()

	return n, nil
}

// Stop shuts the notifier down.
func (n *Notifier) Stop() {
	close(n.stopChan)
	n.fsWatcher.Close()
}
