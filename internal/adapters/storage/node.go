package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spaceman/internal/adapters/config"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/core/ports"
)

// NodeID is the unique identifier for the task store Graft node.
const NodeID graft.ID = "adapter.task_store"

func init() {
	graft.Register(graft.Node[ports.TaskStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.TaskStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileStore(cfg.DataFile), nil
		},
	})
}
