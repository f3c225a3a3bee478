// Package index owns the path-keyed table of parsed campaigns and the
// read-only views over it. Entries are replaced wholesale per document;
// nothing is ever patched in place, so a reader sees either the old or
// the new campaign, never a partial one.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"questlog/internal/campaign"
	"questlog/internal/notation"
	"questlog/internal/parser"
	"questlog/internal/vault"
)

// Store is the file-access collaborator the indexer reads through.
// *vault.Vault satisfies it.
type Store interface {
	parser.DocumentStore
	ListDocuments() ([]string, error)
}

// Options tune the indexer. Zero values fall back to the notation
// package defaults.
type Options struct {
	Logger               *slog.Logger
	NearCompleteFraction float64
	TimerUrgentMax       int
}

type Indexer struct {
	store        Store
	logger       *slog.Logger
	nearComplete float64
	timerUrgent  int

	mu        sync.RWMutex
	campaigns map[string]*campaign.Campaign
}

func New(store Store, opts Options) *Indexer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	nearComplete := opts.NearCompleteFraction
	if nearComplete <= 0 {
		nearComplete = notation.NearCompleteFraction
	}
	timerUrgent := opts.TimerUrgentMax
	if timerUrgent <= 0 {
		timerUrgent = notation.TimerUrgentMax
	}
	return &Indexer{
		store:        store,
		logger:       logger,
		nearComplete: nearComplete,
		timerUrgent:  timerUrgent,
		campaigns:    make(map[string]*campaign.Campaign),
	}
}

// Parse parses one document without touching the index table.
func (ix *Indexer) Parse(ctx context.Context, text, path string) *campaign.Campaign {
	return parser.Parse(ctx, text, path, ix.store, ix.logger)
}

// IndexOne reads, parses, and stores the campaign for path, fully
// replacing any previous entry for the same path.
func (ix *Indexer) IndexOne(ctx context.Context, path string) (*campaign.Campaign, error) {
	text, err := ix.store.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}
	c := ix.Parse(ctx, text, path)

	ix.mu.Lock()
	ix.campaigns[path] = c
	ix.mu.Unlock()
	return c, nil
}

// IndexAll indexes every document in the vault. Documents that fail to
// read are logged and skipped; the count of indexed campaigns is
// returned.
func (ix *Indexer) IndexAll(ctx context.Context) (int, error) {
	paths, err := ix.store.ListDocuments()
	if err != nil {
		return 0, fmt.Errorf("listing documents: %w", err)
	}
	indexed := 0
	for _, path := range paths {
		if _, err := ix.IndexOne(ctx, path); err != nil {
			ix.logger.Warn("document skipped", "path", path, "error", err)
			continue
		}
		indexed++
	}
	return indexed, nil
}

// Remove drops the campaign for path, if any.
func (ix *Indexer) Remove(path string) {
	ix.mu.Lock()
	delete(ix.campaigns, path)
	ix.mu.Unlock()
}

// Campaign returns the indexed campaign for path.
func (ix *Indexer) Campaign(path string) (*campaign.Campaign, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	c, ok := ix.campaigns[path]
	return c, ok
}

// AllCampaigns returns every indexed campaign, ordered by path.
func (ix *Indexer) AllCampaigns() []*campaign.Campaign {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]*campaign.Campaign, 0, len(ix.campaigns))
	for _, c := range ix.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Stats returns the summary counts for one campaign. The second return
// is false when the path has not been indexed.
func (ix *Indexer) Stats(path string) (campaign.Stats, bool) {
	c, ok := ix.Campaign(path)
	if !ok {
		return campaign.Stats{}, false
	}
	return c.Stats(), true
}

// Watch consumes vault change events until the channel closes or ctx is
// done. Created and modified documents are re-indexed; deleted and
// renamed ones drop their entry (the rename target arrives as a create).
func (ix *Indexer) Watch(ctx context.Context, events <-chan vault.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			switch event.Kind {
			case vault.EventCreated, vault.EventModified:
				if _, err := ix.IndexOne(ctx, event.Path); err != nil {
					ix.logger.Warn("re-index failed", "path", event.Path, "error", err)
					continue
				}
				ix.logger.Info("re-indexed", "path", event.Path, "kind", event.Kind)
			case vault.EventDeleted, vault.EventRenamed:
				ix.Remove(event.Path)
				ix.logger.Info("dropped from index", "path", event.Path, "kind", event.Kind)
			}
		}
	}
}
