package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [path]",
		Short: "Parse campaign documents into the index and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIndex,
	}
	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := loadProject()
	if err != nil {
		return err
	}
	ix := p.Index

	if len(args) == 1 {
		c, err := ix.IndexOne(ctx, args[0])
		if err != nil {
			return err
		}
		printCampaignStats(c.Path, c.Title, c.Stats())
		return nil
	}

	indexed, err := ix.IndexAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Indexed %d campaign(s).\n", indexed)
	for _, c := range ix.AllCampaigns() {
		fmt.Fprintf(os.Stdout, "  %s: %s (%d sessions)\n", c.Path, c.Title, len(c.Sessions))
	}
	return nil
}
