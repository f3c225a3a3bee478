// Package campaign holds the parsed model of a solo session log: the
// structural skeleton (sessions, scenes, elements) and the canonical
// entities merged from tag mentions. A Campaign is built fresh per parse
// and never mutated afterwards.
package campaign

import (
	"strconv"
	"strings"

	"questlog/internal/notation"
)

// DefaultTitle is used when a document carries neither a front-matter
// title nor a heading.
const DefaultTitle = "Untitled Campaign"

// Source pinpoints where an entity mention or element lives, precise
// enough for a caller to open the document and place a cursor.
type Source struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Session string `json:"session,omitempty"`
	Scene   string `json:"scene,omitempty"`
}

// Entity is a tag-carrying entity: NPCs, locations, and player characters
// share this shape. Tags is set-like: ordered, no duplicates.
type Entity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Tags         []string `json:"tags"`
	FirstMention Source   `json:"first_mention"`
	Mentions     []Source `json:"mentions"`
}

// Thread is a tracked story question. State is last-write-wins across
// mentions (Open, Closed, Abandoned, or whatever the author wrote).
type Thread struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	State        string   `json:"state"`
	FirstMention Source   `json:"first_mention"`
	Mentions     []Source `json:"mentions"`
}

// Progress is a fill-up counter: clocks, tracks, and events share this
// shape. Current and Total reflect the most recent mention.
type Progress struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Current   int      `json:"current"`
	Total     int      `json:"total"`
	Locations []Source `json:"locations"`
}

// Timer is a countdown counter; Value reflects the most recent mention.
type Timer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Value     int      `json:"value"`
	Locations []Source `json:"locations"`
}

// Reference records back-reference tags ([#N:...], [#L:...]) keyed by
// (Type, ID). Type is "npc" or "location".
type Reference struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	FirstMention Source   `json:"first_mention"`
	Mentions     []Source `json:"mentions"`
}

// Scene is the smallest narrative unit. Elements appear in source order.
// Scene IDs need not be globally unique; thread-prefixed IDs like T2-S5
// disambiguate parallel lines.
type Scene struct {
	ID        string             `json:"id"`
	Context   string             `json:"context,omitempty"`
	Elements  []notation.Element `json:"elements"`
	StartLine int                `json:"start_line"`
	EndLine   int                `json:"end_line"`
}

// Session groups scenes under a numbered play session. Meta carries the
// free-form metadata pairs (date, duration, recap, goals). LinkedFrom is
// the path of the external document when the session body lives in a
// separate file.
type Session struct {
	Number     int               `json:"number"`
	Meta       map[string]string `json:"meta,omitempty"`
	Scenes     []*Scene          `json:"scenes"`
	StartLine  int               `json:"start_line"`
	EndLine    int               `json:"end_line"`
	LinkedFrom string            `json:"linked_from,omitempty"`
}

// Label returns the session's display label, e.g. "Session 3".
func (s *Session) Label() string {
	return "Session " + strconv.Itoa(s.Number)
}

// Campaign is the parse result for one campaign document. Entity maps are
// keyed by identity key (kind prefix + lowercased trimmed name, e.g.
// "npc:grim").
type Campaign struct {
	Path        string         `json:"path"`
	Title       string         `json:"title"`
	FrontMatter map[string]any `json:"front_matter,omitempty"`

	Sessions []*Session `json:"sessions"`

	NPCs             map[string]*Entity    `json:"npcs"`
	Locations        map[string]*Entity    `json:"locations"`
	PlayerCharacters map[string]*Entity    `json:"player_characters"`
	Threads          map[string]*Thread    `json:"threads"`
	Clocks           map[string]*Progress  `json:"clocks"`
	Tracks           map[string]*Progress  `json:"tracks"`
	Events           map[string]*Progress  `json:"events"`
	Timers           map[string]*Timer     `json:"timers"`
	References       map[string]*Reference `json:"references"`
}

// New returns an empty campaign for path with the default title and all
// entity maps initialized.
func New(path string) *Campaign {
	return &Campaign{
		Path:             path,
		Title:            DefaultTitle,
		NPCs:             make(map[string]*Entity),
		Locations:        make(map[string]*Entity),
		PlayerCharacters: make(map[string]*Entity),
		Threads:          make(map[string]*Thread),
		Clocks:           make(map[string]*Progress),
		Tracks:           make(map[string]*Progress),
		Events:           make(map[string]*Progress),
		Timers:           make(map[string]*Timer),
		References:       make(map[string]*Reference),
	}
}

// Stats are the per-campaign summary counts.
type Stats struct {
	Sessions         int `json:"sessions"`
	Scenes           int `json:"scenes"`
	NPCs             int `json:"npcs"`
	Locations        int `json:"locations"`
	ActiveThreads    int `json:"active_threads"`
	ProgressElements int `json:"progress_elements"`
	TableLookups     int `json:"table_lookups"`
	Generators       int `json:"generators"`
	MetaNotes        int `json:"meta_notes"`
}

// Stats counts the campaign's structural and entity totals. Active
// threads are those whose state equals "Open" case-insensitively.
func (c *Campaign) Stats() Stats {
	stats := Stats{
		Sessions:         len(c.Sessions),
		NPCs:             len(c.NPCs),
		Locations:        len(c.Locations),
		ProgressElements: len(c.Clocks) + len(c.Tracks) + len(c.Timers) + len(c.Events),
	}
	for _, thread := range c.Threads {
		if strings.EqualFold(thread.State, "Open") {
			stats.ActiveThreads++
		}
	}
	for _, session := range c.Sessions {
		stats.Scenes += len(session.Scenes)
		for _, scene := range session.Scenes {
			for _, element := range scene.Elements {
				switch element.Kind() {
				case notation.KindTableLookup:
					stats.TableLookups++
				case notation.KindGenerator:
					stats.Generators++
				case notation.KindMetaNote:
					stats.MetaNotes++
				}
			}
		}
	}
	return stats
}
