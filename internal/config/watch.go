package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to a config file while a game is running.
// The runner reloads its config on every restart, so a notification is all
// that is needed for edits to take effect.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	logger   *log.Logger
	onChange func(path string)
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. The parent directory is watched rather than
// the file itself so that editors which replace the file on save are seen.
// onChange is invoked from the watcher goroutine.
func Watch(path string, logger *log.Logger, onChange func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if _, err := LoadRunner(w.path); err != nil {
				w.logger.Warn("config changed but does not load", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("config changed, applies on next restart", "path", w.path)
			if w.onChange != nil {
				w.onChange(w.path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}
