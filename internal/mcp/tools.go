package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"questlog/internal/campaign"
	"questlog/internal/index"
)

// Querier is the slice of the indexer the MCP tools need.
type Querier interface {
	AllCampaigns() []*campaign.Campaign
	Stats(path string) (campaign.Stats, bool)
	AllNPCs() []index.NPCView
	ActiveThreads() []index.ThreadView
	AllProgressElements() []index.ProgressView
	Entity(key string) (index.EntityView, bool)
}

type ListCampaignsInput struct{}

type CampaignSummaryOutput struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Sessions int    `json:"sessions"`
}

type ListCampaignsOutput struct {
	Campaigns []CampaignSummaryOutput `json:"campaigns"`
}

type CampaignStatsInput struct {
	Path string `json:"path" jsonschema:"campaign document path"`
}

type CampaignStatsOutput struct {
	campaign.Stats
}

type ListNPCsInput struct{}

type NPCOutput struct {
	Campaign string          `json:"campaign"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Tags     []string        `json:"tags"`
	First    campaign.Source `json:"first_mention"`
	Mentions int             `json:"mentions"`
}

type ListNPCsOutput struct {
	NPCs []NPCOutput `json:"npcs"`
}

type ActiveThreadsInput struct{}

type ThreadOutput struct {
	Campaign string          `json:"campaign"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	State    string          `json:"state"`
	First    campaign.Source `json:"first_mention"`
}

type ActiveThreadsOutput struct {
	Threads []ThreadOutput `json:"threads"`
}

type ProgressElementsInput struct{}

type ProgressElementsOutput struct {
	Elements []index.ProgressView `json:"elements"`
}

type GetEntityInput struct {
	Key string `json:"key" jsonschema:"identity key, e.g. npc:grim or clock:forest ritual"`
}

type GetEntityOutput struct {
	index.EntityView
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_campaigns",
		Description: "List indexed campaigns with session counts",
	}, s.handleListCampaigns)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "campaign_stats",
		Description: "Summary counts for one campaign",
	}, s.handleCampaignStats)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_npcs",
		Description: "List NPCs across all campaigns",
	}, s.handleListNPCs)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "active_threads",
		Description: "List story threads whose state is Open",
	}, s.handleActiveThreads)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "progress_elements",
		Description: "List clocks, tracks, events, and timers with progress semantics",
	}, s.handleProgressElements)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entity",
		Description: "Resolve an identity key to an entity and its source locations",
	}, s.handleGetEntity)
}

func (s *Server) handleListCampaigns(ctx context.Context, req *sdk.CallToolRequest, input ListCampaignsInput) (*sdk.CallToolResult, ListCampaignsOutput, error) {
	campaigns := s.idx.AllCampaigns()
	output := make([]CampaignSummaryOutput, 0, len(campaigns))
	for _, c := range campaigns {
		output = append(output, CampaignSummaryOutput{
			Path:     c.Path,
			Title:    c.Title,
			Sessions: len(c.Sessions),
		})
	}
	return nil, ListCampaignsOutput{Campaigns: output}, nil
}

func (s *Server) handleCampaignStats(ctx context.Context, req *sdk.CallToolRequest, input CampaignStatsInput) (*sdk.CallToolResult, CampaignStatsOutput, error) {
	if input.Path == "" {
		return nil, CampaignStatsOutput{}, fmt.Errorf("path is required")
	}
	stats, ok := s.idx.Stats(input.Path)
	if !ok {
		return nil, CampaignStatsOutput{}, fmt.Errorf("campaign not indexed: %s", input.Path)
	}
	return nil, CampaignStatsOutput{Stats: stats}, nil
}

func (s *Server) handleListNPCs(ctx context.Context, req *sdk.CallToolRequest, input ListNPCsInput) (*sdk.CallToolResult, ListNPCsOutput, error) {
	npcs := s.idx.AllNPCs()
	output := make([]NPCOutput, 0, len(npcs))
	for _, npc := range npcs {
		output = append(output, NPCOutput{
			Campaign: npc.Campaign,
			ID:       npc.ID,
			Name:     npc.Name,
			Tags:     npc.Tags,
			First:    npc.FirstMention,
			Mentions: len(npc.Mentions),
		})
	}
	return nil, ListNPCsOutput{NPCs: output}, nil
}

func (s *Server) handleActiveThreads(ctx context.Context, req *sdk.CallToolRequest, input ActiveThreadsInput) (*sdk.CallToolResult, ActiveThreadsOutput, error) {
	threads := s.idx.ActiveThreads()
	output := make([]ThreadOutput, 0, len(threads))
	for _, thread := range threads {
		output = append(output, ThreadOutput{
			Campaign: thread.Campaign,
			ID:       thread.ID,
			Name:     thread.Name,
			State:    thread.State,
			First:    thread.FirstMention,
		})
	}
	return nil, ActiveThreadsOutput{Threads: output}, nil
}

func (s *Server) handleProgressElements(ctx context.Context, req *sdk.CallToolRequest, input ProgressElementsInput) (*sdk.CallToolResult, ProgressElementsOutput, error) {
	return nil, ProgressElementsOutput{Elements: s.idx.AllProgressElements()}, nil
}

func (s *Server) handleGetEntity(ctx context.Context, req *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, GetEntityOutput, error) {
	if input.Key == "" {
		return nil, GetEntityOutput{}, fmt.Errorf("key is required")
	}
	view, ok := s.idx.Entity(input.Key)
	if !ok {
		return nil, GetEntityOutput{}, fmt.Errorf("entity not found: %s", input.Key)
	}
	return nil, GetEntityOutput{EntityView: view}, nil
}
