package filewatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrModified is the cause of contexts canceled by modifications.
var ErrModified = errors.New("watched file is modified")

// UntilModifyContext returns a context that is canceled
// when one of target files is modified (= written, created, removed, or renamed).
//
// Changes only of file mode are ignored.
//
// # Args
//
// - ctx: context.Context
//
// - targets ...string: paths to be watched.
// A directory is watched with its entries.
// A file is watched via its parent directory, so replacing the file
// (like editors or ConfigMap volumes do) is also detected.
//
// # Returns
//
// - context.Context: context that is canceled when one of targets is modified.
// Its cause wraps ErrModified.
//
// - func(): cancel function.
//
// - error: error caused when it fails to start watching files.
//
// If error is not nil, both of the context and the cancel function are nil.
func UntilModifyContext(ctx context.Context, targets ...string) (context.Context, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// watched directory -> file names in it. nil means all entries.
	filters := map[string]map[string]struct{}{}
	for _, t := range targets {
		abs, err := filepath.Abs(t)
		if err != nil {
			w.Close()
			return nil, nil, err
		}
		stat, err := os.Stat(abs)
		if err != nil {
			w.Close()
			return nil, nil, err
		}
		if stat.IsDir() {
			filters[abs] = nil
			continue
		}

		dir, name := filepath.Split(abs)
		dir = filepath.Clean(dir)
		if names, ok := filters[dir]; ok && names == nil {
			continue
		}
		if filters[dir] == nil {
			filters[dir] = map[string]struct{}{}
		}
		filters[dir][name] = struct{}{}
	}

	for dir := range filters {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, nil, err
		}
	}

	cctx, cancel := context.WithCancelCause(ctx)
	go func() {
		defer w.Close()

		for {
			select {
			case <-cctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				cancel(err)
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !interested(filters, event) {
					continue
				}
				cancel(fmt.Errorf("%w: %s (%s)", ErrModified, event.Name, event.Op.String()))
			}
		}
	}()

	return cctx, func() { cancel(nil) }, nil
}

func interested(filters map[string]map[string]struct{}, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	dir, name := filepath.Split(event.Name)
	names, ok := filters[filepath.Clean(dir)]
	if !ok {
		return false
	}
	if names == nil {
		return true
	}
	_, ok = names[name]
	return ok
}
