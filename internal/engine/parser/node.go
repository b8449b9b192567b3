package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spaceman/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spaceman/internal/core/domain"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "engine.parser"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Parser, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.DateLayouts...), nil
		},
	})
}
