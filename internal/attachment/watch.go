package attachment

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"sogrinha/internal/model"
)

// EventOp is the kind of change observed in a scope directory.
type EventOp string

const (
	EventCreated EventOp = "created"
	EventWritten EventOp = "written"
	EventRemoved EventOp = "removed"
)

// Event reports a change to one attachment.
type Event struct {
	Op   EventOp `json:"op"`
	Name string  `json:"name"`
}

// Watch reports changes to the attachments of one scope until ctx is done.
// The scope directory is created if missing. The returned channel is closed on exit.
func (s *FileStore) Watch(ctx context.Context, scope model.Scope, log *zap.Logger) (<-chan Event, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dir, err := s.ensureDir(scope)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				out, keep := mapEvent(ev)
				if !keep {
					continue
				}
				select {
				case events <- out:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watch_error", zap.String("dir", dir), zap.Error(err))
			}
		}
	}()
	return events, nil
}

// mapEvent translates fsnotify events, hiding temp files of atomic writes.
// A rename onto the target surfaces as Create of the final name.
func mapEvent(ev fsnotify.Event) (Event, bool) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, tempFilePrefix) {
		return Event{}, false
	}
	switch {
	case ev.Has(fsnotify.Create):
		return Event{Op: EventCreated, Name: name}, true
	case ev.Has(fsnotify.Write):
		return Event{Op: EventWritten, Name: name}, true
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return Event{Op: EventRemoved, Name: name}, true
	}
	return Event{}, false
}
