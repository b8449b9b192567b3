package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spaceman/internal/adapters/config"                       //nolint:depguard // Wired in app layer
	"go.trai.ch/spaceman/internal/adapters/console"                      //nolint:depguard // Wired in app layer
	"go.trai.ch/spaceman/internal/adapters/logger"                       //nolint:depguard // Wired in app layer
	"go.trai.ch/spaceman/internal/adapters/storage"                      //nolint:depguard // Wired in app layer
	telemetry "go.trai.ch/spaceman/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/core/ports"
	"go.trai.ch/spaceman/internal/engine/parser"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Config    *domain.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			storage.NodeID,
			parser.NodeID,
			console.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.TaskStore](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*parser.Parser](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, p, renderer, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Source != "" {
		log.Debug("using configuration " + cfg.Source)
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
		Config:    cfg,
	}, nil
}
