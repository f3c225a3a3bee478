package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventKind classifies a document change notification.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventModified EventKind = "modified"
	EventDeleted  EventKind = "deleted"
	EventRenamed  EventKind = "renamed"
)

// Event is one change to a markdown document, with a root-relative path.
type Event struct {
	Kind EventKind
	Path string
}

// Watch streams markdown change events for the vault until ctx is done.
// The channel is closed on cancellation or watcher failure.
func (v *Vault) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting vault watcher: %w", err)
	}

	// fsnotify watches are not recursive; register every directory.
	err = filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(v.root, path)
		if relErr != nil {
			return relErr
		}
		if rel != "." && v.isExcluded(rel) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching vault directories: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) {
					// pick up directories created after the watch started
					if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
						_ = watcher.Add(ev.Name)
					}
				}
				event, ok := v.translate(ev)
				if !ok {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return events, nil
}

// translate maps an fsnotify event onto the document change contract.
// Non-markdown paths are dropped. A rename is reported against the old
// path; the new path arrives as its own create event.
func (v *Vault) translate(ev fsnotify.Event) (Event, bool) {
	if !strings.HasSuffix(strings.ToLower(ev.Name), ".md") {
		return Event{}, false
	}
	rel, err := filepath.Rel(v.root, ev.Name)
	if err != nil || v.isExcluded(rel) {
		return Event{}, false
	}
	path := filepath.ToSlash(rel)

	switch {
	case ev.Op.Has(fsnotify.Create):
		return Event{Kind: EventCreated, Path: path}, true
	case ev.Op.Has(fsnotify.Write):
		return Event{Kind: EventModified, Path: path}, true
	case ev.Op.Has(fsnotify.Remove):
		return Event{Kind: EventDeleted, Path: path}, true
	case ev.Op.Has(fsnotify.Rename):
		return Event{Kind: EventRenamed, Path: path}, true
	}
	return Event{}, false
}
