package main

import (
	"strings"
	"testing"

	"questlog/internal/campaign"
	"questlog/internal/index"
)

func TestPrintEntity(t *testing.T) {
	view := index.EntityView{
		Campaign: "campaigns/chronicle.md",
		Kind:     "npc",
		ID:       "npc:grim",
		Name:     "Grim",
		Tags:     []string{"friendly", "merchant"},
		Locations: []campaign.Source{
			{File: "campaigns/chronicle.md", Line: 15, Session: "Session 1", Scene: "S1"},
		},
	}

	var out strings.Builder
	printEntity(&out, view)
	got := out.String()

	if !strings.Contains(got, "Grim (npc)") {
		t.Fatalf("missing header in %q", got)
	}
	if !strings.Contains(got, "friendly, merchant") {
		t.Fatalf("missing tags in %q", got)
	}
	want := "Seen: campaigns/chronicle.md:15 (Session 1, scene S1)"
	if !strings.Contains(got, want) {
		t.Fatalf("locator line %q not found in %q", want, got)
	}
}
