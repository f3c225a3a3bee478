package index

import (
	"sort"
	"strings"

	"questlog/internal/campaign"
	"questlog/internal/notation"
)

// NPCView pairs an NPC with its owning campaign.
type NPCView struct {
	Campaign string `json:"campaign"`
	*campaign.Entity
}

// ThreadView pairs a thread with its owning campaign.
type ThreadView struct {
	Campaign string `json:"campaign"`
	*campaign.Thread
}

// ProgressView flattens clocks, tracks, events, and timers into one
// shape, annotated with the derived progress semantics. Timers carry
// Value and Urgent; the fill kinds carry Current/Total/Percent.
type ProgressView struct {
	Campaign     string          `json:"campaign"`
	Kind         string          `json:"kind"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Current      int             `json:"current"`
	Total        int             `json:"total"`
	Value        int             `json:"value"`
	Percent      int             `json:"percent"`
	Complete     bool            `json:"complete"`
	NearComplete bool            `json:"near_complete"`
	Urgent       bool            `json:"urgent"`
	Location     campaign.Source `json:"location"`
}

// AllNPCs returns every NPC across indexed campaigns, ordered by
// campaign path then identity key.
func (ix *Indexer) AllNPCs() []NPCView {
	var out []NPCView
	for _, c := range ix.AllCampaigns() {
		for _, npc := range sortedEntities(c.NPCs) {
			out = append(out, NPCView{Campaign: c.Path, Entity: npc})
		}
	}
	return out
}

// ActiveThreads returns threads whose state is "Open", compared
// case-insensitively, ordered by campaign path then identity key.
func (ix *Indexer) ActiveThreads() []ThreadView {
	var out []ThreadView
	for _, c := range ix.AllCampaigns() {
		keys := make([]string, 0, len(c.Threads))
		for key := range c.Threads {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			thread := c.Threads[key]
			if strings.EqualFold(thread.State, "Open") {
				out = append(out, ThreadView{Campaign: c.Path, Thread: thread})
			}
		}
	}
	return out
}

// AllProgressElements returns the union of clocks, tracks, events, and
// timers across indexed campaigns, annotated with the configured
// thresholds.
func (ix *Indexer) AllProgressElements() []ProgressView {
	var out []ProgressView
	for _, c := range ix.AllCampaigns() {
		out = append(out, ix.progressViews(c.Path, "clock", c.Clocks)...)
		out = append(out, ix.progressViews(c.Path, "track", c.Tracks)...)
		out = append(out, ix.progressViews(c.Path, "event", c.Events)...)
		out = append(out, ix.timerViews(c.Path, c.Timers)...)
	}
	return out
}

func (ix *Indexer) progressViews(path, kind string, elements map[string]*campaign.Progress) []ProgressView {
	keys := make([]string, 0, len(elements))
	for key := range elements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]ProgressView, 0, len(keys))
	for _, key := range keys {
		element := elements[key]
		view := ProgressView{
			Campaign:     path,
			Kind:         kind,
			ID:           element.ID,
			Name:         element.Name,
			Current:      element.Current,
			Total:        element.Total,
			Percent:      notation.CalculateProgress(element.Current, element.Total),
			Complete:     notation.IsComplete(element.Current, element.Total),
			NearComplete: notation.IsNearCompleteAt(element.Current, element.Total, ix.nearComplete),
		}
		if len(element.Locations) > 0 {
			view.Location = element.Locations[len(element.Locations)-1]
		}
		out = append(out, view)
	}
	return out
}

func (ix *Indexer) timerViews(path string, timers map[string]*campaign.Timer) []ProgressView {
	keys := make([]string, 0, len(timers))
	for key := range timers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]ProgressView, 0, len(keys))
	for _, key := range keys {
		timer := timers[key]
		view := ProgressView{
			Campaign: path,
			Kind:     "timer",
			ID:       timer.ID,
			Name:     timer.Name,
			Value:    timer.Value,
			Urgent:   notation.IsTimerUrgentAt(timer.Value, ix.timerUrgent),
		}
		if len(timer.Locations) > 0 {
			view.Location = timer.Locations[len(timer.Locations)-1]
		}
		out = append(out, view)
	}
	return out
}

// Entity looks an identity key up across every kind map of every
// campaign and returns a uniform view: the entity's name, kind, and
// source locations.
type EntityView struct {
	Campaign  string            `json:"campaign"`
	Kind      string            `json:"kind"`
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Tags      []string          `json:"tags,omitempty"`
	State     string            `json:"state,omitempty"`
	Locations []campaign.Source `json:"locations"`
}

// Entity resolves an identity key (e.g. "npc:grim") across all indexed
// campaigns. The bool is false when no campaign knows the key.
func (ix *Indexer) Entity(key string) (EntityView, bool) {
	for _, c := range ix.AllCampaigns() {
		if e, ok := c.NPCs[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "npc", ID: e.ID, Name: e.Name, Tags: e.Tags, Locations: e.Mentions}, true
		}
		if e, ok := c.Locations[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "location", ID: e.ID, Name: e.Name, Tags: e.Tags, Locations: e.Mentions}, true
		}
		if e, ok := c.PlayerCharacters[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "pc", ID: e.ID, Name: e.Name, Tags: e.Tags, Locations: e.Mentions}, true
		}
		if th, ok := c.Threads[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "thread", ID: th.ID, Name: th.Name, State: th.State, Locations: th.Mentions}, true
		}
		if p, ok := c.Clocks[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "clock", ID: p.ID, Name: p.Name, Locations: p.Locations}, true
		}
		if p, ok := c.Tracks[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "track", ID: p.ID, Name: p.Name, Locations: p.Locations}, true
		}
		if p, ok := c.Events[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "event", ID: p.ID, Name: p.Name, Locations: p.Locations}, true
		}
		if tm, ok := c.Timers[key]; ok {
			return EntityView{Campaign: c.Path, Kind: "timer", ID: tm.ID, Name: tm.Name, Locations: tm.Locations}, true
		}
	}
	return EntityView{}, false
}

func sortedEntities(entities map[string]*campaign.Entity) []*campaign.Entity {
	keys := make([]string, 0, len(entities))
	for key := range entities {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]*campaign.Entity, 0, len(keys))
	for _, key := range keys {
		out = append(out, entities[key])
	}
	return out
}
