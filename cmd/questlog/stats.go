package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questlog/internal/campaign"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Print summary counts for one campaign or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := loadProjectAll(ctx)
	if err != nil {
		return err
	}
	ix := p.Index

	if len(args) == 1 {
		c, ok := ix.Campaign(args[0])
		if !ok {
			return fmt.Errorf("campaign not found: %s", args[0])
		}
		printCampaignStats(c.Path, c.Title, c.Stats())
		return nil
	}

	campaigns := ix.AllCampaigns()
	if len(campaigns) == 0 {
		fmt.Fprintln(os.Stdout, "No campaigns found.")
		return nil
	}
	for _, c := range campaigns {
		printCampaignStats(c.Path, c.Title, c.Stats())
	}
	return nil
}

func printCampaignStats(path, title string, stats campaign.Stats) {
	fmt.Fprintf(os.Stdout, "%s (%s)\n", title, path)
	fmt.Fprintf(os.Stdout, "  Sessions:          %d\n", stats.Sessions)
	fmt.Fprintf(os.Stdout, "  Scenes:            %d\n", stats.Scenes)
	fmt.Fprintf(os.Stdout, "  NPCs:              %d\n", stats.NPCs)
	fmt.Fprintf(os.Stdout, "  Locations:         %d\n", stats.Locations)
	fmt.Fprintf(os.Stdout, "  Active threads:    %d\n", stats.ActiveThreads)
	fmt.Fprintf(os.Stdout, "  Progress elements: %d\n", stats.ProgressElements)
	fmt.Fprintf(os.Stdout, "  Table lookups:     %d\n", stats.TableLookups)
	fmt.Fprintf(os.Stdout, "  Generators:        %d\n", stats.Generators)
	fmt.Fprintf(os.Stdout, "  Meta notes:        %d\n", stats.MetaNotes)
}
