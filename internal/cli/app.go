package cli

import (
	"fmt"
	"time"

	"daybook/internal/config"
	"daybook/internal/store"
	"daybook/internal/timeline"
)

// app bundles the resolved configuration, store, and engine for one
// command invocation.
type app struct {
	cfg     *config.Config
	store   *store.FileStore
	engine  *timeline.Engine
	project string
	loc     *time.Location
}

func newApp() (*app, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve timezone: %w", err)
	}

	project := projectFlag
	if project == "" {
		project = cfg.DefaultProject
	}

	st := store.NewFileStore(cfg.DataDir)
	return &app{
		cfg:     cfg,
		store:   st,
		engine:  timeline.NewEngine(st),
		project: project,
		loc:     loc,
	}, nil
}
