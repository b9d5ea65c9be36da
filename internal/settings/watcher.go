package settings

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"explorer/internal/fs"
	"explorer/internal/log"
)

// ReloadDelay is how long the watcher waits after a change before
// reloading. External editors need the delay to finish writing the
// file to disk.
const ReloadDelay = 200 * time.Millisecond

// Watcher reloads the settings file when an external program modifies
// it, debounced by ReloadDelay. The callback receives the reloaded
// settings or the reload error; it runs on the watcher goroutine.
type Watcher struct {
	path      string
	fsys      fs.Filesystem
	fsWatcher *fsnotify.Watcher
	onReload  func(*Settings, error)
	stopChan  chan struct{}
	delay     time.Duration
}

// Watch starts watching the settings file at path.
func Watch(fsys fs.Filesystem, path string, onReload func(*Settings, error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(path); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch settings file %s: %w", path, err)
	}

	w := &Watcher{
		path:      path,
		fsys:      fsys,
		fsWatcher: fsWatcher,
		onReload:  onReload,
		stopChan:  make(chan struct{}),
		delay:     ReloadDelay,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("settings changed: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.delay)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.delay)
			}
		case <-fire:
			timer, fire = nil, nil
			w.onReload(LoadFile(w.fsys, w.path))
			// Editors that replace the file drop the watch with it.
			if err := w.fsWatcher.Add(w.path); err != nil {
				log.Warnf("failed to rewatch settings file: %v", err)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("settings watcher error: %v", err)
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.fsWatcher.Close()
}
