package console

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/spaceman/internal/adapters/config"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/core/ports"
)

// NodeID is the unique identifier for the console renderer Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(os.Stdout, cfg.Color), nil
		},
	})
}
