package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written or replaced.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path, the file a config was loaded from. Each change
// reloads with customPath exactly as the initial load did, so an empty
// customPath re-reads every search path layer. onChange receives every
// successfully reloaded config; onError receives reload and watcher
// failures. Both run on the watcher goroutine.
func Watch(loader *Loader, customPath, path string, onChange func(*Config), onError func(error)) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("no config file to watch")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{watcher: fsw, done: make(chan struct{})}
	go w.run(func() (*Config, error) {
		cfg, _, err := loader.LoadConfig(customPath)
		return cfg, err
	}, absPath, onChange, onError)
	return w, nil
}

func (w *Watcher) run(reload func() (*Config, error), path string, onChange func(*Config), onError func(error)) {
	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := reload()
			if err != nil {
				report(err)
				continue
			}
			if onChange != nil {
				onChange(cfg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			report(fmt.Errorf("config watcher: %w", err))
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
