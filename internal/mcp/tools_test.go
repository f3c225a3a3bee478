package mcp

import (
	"context"
	"testing"

	"questlog/internal/campaign"
	"questlog/internal/index"
)

type mockQuerier struct {
	campaigns []*campaign.Campaign
	stats     campaign.Stats
	statsOK   bool
	npcs      []index.NPCView
	threads   []index.ThreadView
	progress  []index.ProgressView
	entity    index.EntityView
	entityOK  bool

	lastStatsPath string
	lastEntityKey string
}

func (m *mockQuerier) AllCampaigns() []*campaign.Campaign { return m.campaigns }

func (m *mockQuerier) Stats(path string) (campaign.Stats, bool) {
	m.lastStatsPath = path
	return m.stats, m.statsOK
}

func (m *mockQuerier) AllNPCs() []index.NPCView             { return m.npcs }
func (m *mockQuerier) ActiveThreads() []index.ThreadView    { return m.threads }
func (m *mockQuerier) AllProgressElements() []index.ProgressView { return m.progress }

func (m *mockQuerier) Entity(key string) (index.EntityView, bool) {
	m.lastEntityKey = key
	return m.entity, m.entityOK
}

func TestHandleListCampaigns(t *testing.T) {
	c := campaign.New("a.md")
	c.Title = "Test Campaign"
	c.Sessions = []*campaign.Session{{Number: 1}, {Number: 2}}
	q := &mockQuerier{campaigns: []*campaign.Campaign{c}}
	s := NewServer(q, "test")

	_, out, err := s.handleListCampaigns(context.Background(), nil, ListCampaignsInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(out.Campaigns))
	}
	if out.Campaigns[0].Title != "Test Campaign" || out.Campaigns[0].Sessions != 2 {
		t.Fatalf("unexpected output %#v", out.Campaigns[0])
	}
}

func TestHandleCampaignStats(t *testing.T) {
	t.Run("requires path", func(t *testing.T) {
		s := NewServer(&mockQuerier{}, "test")
		if _, _, err := s.handleCampaignStats(context.Background(), nil, CampaignStatsInput{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		s := NewServer(&mockQuerier{}, "test")
		if _, _, err := s.handleCampaignStats(context.Background(), nil, CampaignStatsInput{Path: "x.md"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("returns stats", func(t *testing.T) {
		q := &mockQuerier{stats: campaign.Stats{Sessions: 3}, statsOK: true}
		s := NewServer(q, "test")
		_, out, err := s.handleCampaignStats(context.Background(), nil, CampaignStatsInput{Path: "a.md"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Sessions != 3 {
			t.Fatalf("unexpected stats %#v", out)
		}
		if q.lastStatsPath != "a.md" {
			t.Fatalf("unexpected path %q", q.lastStatsPath)
		}
	})
}

func TestHandleListNPCs(t *testing.T) {
	q := &mockQuerier{npcs: []index.NPCView{{
		Campaign: "a.md",
		Entity: &campaign.Entity{
			ID:       "npc:grim",
			Name:     "Grim",
			Tags:     []string{"friendly"},
			Mentions: []campaign.Source{{File: "a.md", Line: 10}},
		},
	}}}
	s := NewServer(q, "test")

	_, out, err := s.handleListNPCs(context.Background(), nil, ListNPCsInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.NPCs) != 1 {
		t.Fatalf("expected 1 npc, got %d", len(out.NPCs))
	}
	if out.NPCs[0].ID != "npc:grim" || out.NPCs[0].Mentions != 1 {
		t.Fatalf("unexpected output %#v", out.NPCs[0])
	}
}

func TestHandleGetEntity(t *testing.T) {
	t.Run("requires key", func(t *testing.T) {
		s := NewServer(&mockQuerier{}, "test")
		if _, _, err := s.handleGetEntity(context.Background(), nil, GetEntityInput{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := NewServer(&mockQuerier{}, "test")
		if _, _, err := s.handleGetEntity(context.Background(), nil, GetEntityInput{Key: "npc:nobody"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("resolves", func(t *testing.T) {
		q := &mockQuerier{entity: index.EntityView{Kind: "npc", ID: "npc:grim", Name: "Grim"}, entityOK: true}
		s := NewServer(q, "test")
		_, out, err := s.handleGetEntity(context.Background(), nil, GetEntityInput{Key: "npc:grim"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Name != "Grim" || q.lastEntityKey != "npc:grim" {
			t.Fatalf("unexpected output %#v", out)
		}
	})
}
