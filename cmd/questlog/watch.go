package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Index all campaigns and re-index on file changes",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := loadProjectAll(ctx)
	if err != nil {
		return err
	}

	events, err := p.Vault.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Watching %s for changes. Press Ctrl-C to stop.\n", p.Vault.Root())
	p.Index.Watch(ctx, events)
	return nil
}
