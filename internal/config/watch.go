package config

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is the outcome of reloading the config file after a change.
// Exactly one of Config and Err is set.
type Reload struct {
	Config *Config
	Err    error
}

// Watch reloads the config file at path whenever it is written and sends
// the result. A reader that falls behind only sees the latest reload. The
// channel is closed once ctx is done.
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file instead of writing it, so watch the
	// directory.
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) ||
					!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(path)
				if err != nil {
					log.Printf("Config reload failed: %v", err)
				}
				publish(out, Reload{Config: cfg, Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher: %v", err)
			}
		}
	}()
	return out, nil
}

func publish(out chan Reload, r Reload) {
	select {
	case <-out:
	default:
	}
	out <- r
}
