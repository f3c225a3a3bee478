package campaign

import (
	"testing"

	"questlog/internal/notation"
)

func TestSessionLabel(t *testing.T) {
	s := &Session{Number: 3}
	if got := s.Label(); got != "Session 3" {
		t.Errorf("Label() = %q, want %q", got, "Session 3")
	}
}

func TestNewInitializesMaps(t *testing.T) {
	c := New("campaigns/foo.md")
	if c.Path != "campaigns/foo.md" {
		t.Errorf("Path = %q", c.Path)
	}
	if c.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", c.Title, DefaultTitle)
	}
	// Maps must be usable without further initialization.
	c.NPCs["npc:grim"] = &Entity{ID: "npc:grim", Name: "Grim"}
	c.Timers["timer:ambush"] = &Timer{ID: "timer:ambush", Name: "Ambush", Value: 2}
}

func TestStats(t *testing.T) {
	c := New("campaigns/foo.md")
	c.Sessions = []*Session{
		{
			Number: 1,
			Scenes: []*Scene{
				{
					ID: "S1",
					Elements: []notation.Element{
						notation.Action{Content: "scout the ridge", LineNumber: 5},
						notation.TableLookup{Roll: "d100=42", Result: "Ambush", LineNumber: 6},
						notation.Generator{System: "Action + Theme", Result: "Guard the Past", LineNumber: 7},
						notation.MetaNote{Category: "note", Content: "check supplies", LineNumber: 8},
					},
				},
				{ID: "S2"},
			},
		},
		{Number: 2, Scenes: []*Scene{{ID: "S3"}}},
	}
	c.NPCs["npc:grim"] = &Entity{ID: "npc:grim", Name: "Grim"}
	c.Locations["location:gate"] = &Entity{ID: "location:gate", Name: "Gate"}
	c.Threads["thread:way home"] = &Thread{ID: "thread:way home", State: "open"}
	c.Threads["thread:old debt"] = &Thread{ID: "thread:old debt", State: "Closed"}
	c.Clocks["clock:ritual"] = &Progress{ID: "clock:ritual", Current: 3, Total: 4}
	c.Timers["timer:ambush"] = &Timer{ID: "timer:ambush", Value: 2}

	got := c.Stats()
	want := Stats{
		Sessions:         2,
		Scenes:           3,
		NPCs:             1,
		Locations:        1,
		ActiveThreads:    1,
		ProgressElements: 2,
		TableLookups:     1,
		Generators:       1,
		MetaNotes:        1,
	}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
