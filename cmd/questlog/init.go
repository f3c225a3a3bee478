package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const exampleCampaign = `---
title: %s
---

# %s

## Session 1
*2026-01-01 | Starting out*

### S1 *The first scene*

` + "```" + `qlog
> [N:Guide|friendly] greets the party at [L:Crossroads]
? Does the guide know the way - Yes
[Thread: Find the way home | Open]
[Clock: Pursuit 0/6]
` + "```" + `
`

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new questlog project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\nvault:\n  root: ./campaigns/\n  exclude:\n    - ./campaigns/archive/\n\nnotation:\n  near_complete_fraction: 0.75\n  timer_urgent_max: 2\n\nlog:\n  level: info\n  format: text\n", projectName)
	if err := os.WriteFile(configFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}

	campaignDir := "campaigns"
	if err := os.MkdirAll(campaignDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", campaignDir, err)
	}
	campaignPath := filepath.Join(campaignDir, "example.md")
	if _, err := os.Stat(campaignPath); err == nil {
		return nil
	}
	doc := fmt.Sprintf(exampleCampaign, projectName, projectName)
	if err := os.WriteFile(campaignPath, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", campaignPath, err)
	}

	fmt.Fprintf(os.Stdout, "Initialized %s with %s and %s.\n", projectName, configFile, campaignPath)
	return nil
}
