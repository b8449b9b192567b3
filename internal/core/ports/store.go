// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/spaceman/internal/core/domain"

// TaskStore defines the interface for persisting the task list.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TaskStore interface {
	// Load reads the whole task list.
	// Returns domain.ErrStoreNotFound if nothing has been stored yet.
	Load() (*domain.TaskList, error)

	// Init creates an empty store, including any missing parent directory.
	Init() error

	// Save replaces the stored list with the given one.
	Save(list *domain.TaskList) error
}
