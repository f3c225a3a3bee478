package main

import (
	"context"
	"log/slog"

	"questlog/internal/config"
	"questlog/internal/index"
	"questlog/internal/log"
	"questlog/internal/vault"
)

const configFile = "questlog.yaml"

// loadedProject bundles the wired pieces a command needs.
type loadedProject struct {
	Config *config.ProjectConfig
	Vault  *vault.Vault
	Index  *index.Indexer
	Logger *slog.Logger
}

// loadProject wires the project: config, logger, vault, indexer.
func loadProject() (*loadedProject, error) {
	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	v := vault.New(cfg.Vault.Root, cfg.Vault.Exclude)
	ix := index.New(v, index.Options{
		Logger:               logger,
		NearCompleteFraction: cfg.Notation.NearCompleteFraction,
		TimerUrgentMax:       cfg.Notation.TimerUrgentMax,
	})
	return &loadedProject{Config: cfg, Vault: v, Index: ix, Logger: logger}, nil
}

// loadProjectAll wires the project and indexes every campaign document.
func loadProjectAll(ctx context.Context) (*loadedProject, error) {
	p, err := loadProject()
	if err != nil {
		return nil, err
	}
	if _, err := p.Index.IndexAll(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
