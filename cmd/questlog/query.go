package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"questlog/internal/index"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the campaign index from the CLI",
	}
	cmd.AddCommand(queryCampaignsCmd())
	cmd.AddCommand(queryNPCsCmd())
	cmd.AddCommand(queryThreadsCmd())
	cmd.AddCommand(queryProgressCmd())
	cmd.AddCommand(queryEntityCmd())
	return cmd
}

func queryCampaignsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "campaigns",
		Short: "List indexed campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjectAll(context.Background())
			if err != nil {
				return err
			}
			campaigns := p.Index.AllCampaigns()
			if len(campaigns) == 0 {
				fmt.Fprintln(os.Stdout, "No campaigns found.")
				return nil
			}
			for _, c := range campaigns {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%d sessions\n", c.Path, c.Title, len(c.Sessions))
			}
			return nil
		},
	}
}

func queryNPCsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "npcs",
		Short: "List NPCs across all campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjectAll(context.Background())
			if err != nil {
				return err
			}
			npcs := p.Index.AllNPCs()
			if len(npcs) == 0 {
				fmt.Fprintln(os.Stdout, "No NPCs found.")
				return nil
			}
			for _, n := range npcs {
				line := n.Name
				if len(n.Tags) > 0 {
					line += " [" + strings.Join(n.Tags, ", ") + "]"
				}
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", n.ID, line, n.Campaign)
			}
			return nil
		},
	}
}

func queryThreadsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "List open threads, or every thread with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjectAll(context.Background())
			if err != nil {
				return err
			}
			if !all {
				threads := p.Index.ActiveThreads()
				if len(threads) == 0 {
					fmt.Fprintln(os.Stdout, "No open threads.")
					return nil
				}
				for _, th := range threads {
					fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\n", th.ID, th.Name, th.State, th.Campaign)
				}
				return nil
			}
			printed := false
			for _, c := range p.Index.AllCampaigns() {
				keys := make([]string, 0, len(c.Threads))
				for key := range c.Threads {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					th := c.Threads[key]
					fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\n", th.ID, th.Name, th.State, c.Path)
					printed = true
				}
			}
			if !printed {
				fmt.Fprintln(os.Stdout, "No threads found.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include resolved and abandoned threads")
	return cmd
}

func queryProgressCmd() *cobra.Command {
	var urgent bool
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "List clocks, tracks, events, and timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjectAll(context.Background())
			if err != nil {
				return err
			}
			views := p.Index.AllProgressElements()
			printed := false
			for _, v := range views {
				if urgent && !v.Urgent && !v.NearComplete {
					continue
				}
				switch v.Kind {
				case "timer":
					marker := ""
					if v.Urgent {
						marker = "\turgent"
					}
					fmt.Fprintf(os.Stdout, "%s\t%s\t%d remaining%s\t%s\n", v.Kind, v.Name, v.Value, marker, v.Campaign)
				default:
					marker := ""
					if v.Complete {
						marker = "\tcomplete"
					} else if v.NearComplete {
						marker = "\tnear complete"
					}
					fmt.Fprintf(os.Stdout, "%s\t%s\t%d/%d (%d%%)%s\t%s\n", v.Kind, v.Name, v.Current, v.Total, v.Percent, marker, v.Campaign)
				}
				printed = true
			}
			if !printed {
				fmt.Fprintln(os.Stdout, "No progress elements found.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&urgent, "urgent", false, "only timers at or below the urgency threshold and near-complete tracks")
	return cmd
}

func printEntity(w io.Writer, view index.EntityView) {
	fmt.Fprintf(w, "%s (%s)\n", view.Name, view.Kind)
	fmt.Fprintf(w, "  Key:      %s\n", view.ID)
	fmt.Fprintf(w, "  Campaign: %s\n", view.Campaign)
	if view.State != "" {
		fmt.Fprintf(w, "  State:    %s\n", view.State)
	}
	if len(view.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(view.Tags, ", "))
	}
	for _, loc := range view.Locations {
		fmt.Fprintf(w, "  Seen: %s:%d (%s, scene %s)\n", loc.File, loc.Line, loc.Session, loc.Scene)
	}
}

func queryEntityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entity <key>",
		Short: "Show one entity by identity key, e.g. npc:grim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjectAll(context.Background())
			if err != nil {
				return err
			}
			view, ok := p.Index.Entity(args[0])
			if !ok {
				return fmt.Errorf("entity not found: %s", args[0])
			}
			printEntity(os.Stdout, view)
			return nil
		},
	}
}
