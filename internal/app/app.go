// Package app implements the application layer for spaceman.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/core/ports"
	"go.trai.ch/spaceman/internal/engine/parser"
	"go.trai.ch/zerr"
)

// App runs the interactive session: read a line, parse it, apply it to the
// in-memory list, persist on mutation and render the outcome.
type App struct {
	store     ports.TaskStore
	parser    *parser.Parser
	renderer  ports.Renderer
	logger    ports.Logger
	telemetry ports.Telemetry

	tasks *domain.TaskList
}

// New creates a new App instance.
func New(
	store ports.TaskStore,
	p *parser.Parser,
	renderer ports.Renderer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		store:     store,
		parser:    p,
		renderer:  renderer,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Open loads the task list. When nothing has been stored yet the user is
// told so and an empty store is created.
func (a *App) Open() error {
	list, err := a.store.Load()
	if errors.Is(err, domain.ErrStoreNotFound) {
		a.logger.Info("no task file found, starting with an empty list")
		a.renderer.NoPreviousData()
		if err := a.store.Init(); err != nil {
			return zerr.Wrap(err, "failed to initialize task store")
		}
		list, err = a.store.Load()
	}
	if err != nil {
		return zerr.Wrap(err, "failed to load tasks")
	}

	a.tasks = list
	a.logger.Debug(fmt.Sprintf("loaded %d tasks", list.Len()))
	return nil
}

// Tasks returns the in-memory task list, nil before Open.
func (a *App) Tasks() *domain.TaskList {
	return a.tasks
}

// Run greets the user and processes lines from in until `bye`, the end of
// input or the cancellation of ctx. Open is called first if it has not been.
func (a *App) Run(ctx context.Context, in ports.LineReader) error {
	if a.tasks == nil {
		if err := a.Open(); err != nil {
			return err
		}
	}

	a.renderer.Welcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			a.renderer.Render(domain.Result{Kind: domain.ResultExit, Count: a.tasks.Len()})
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read command")
		}

		if a.Execute(line) {
			return nil
		}
	}
}

// Execute handles a single command line and reports whether the session is over.
// Command errors are rendered, never returned. A failed save is rendered and
// logged while the in-memory list keeps the change.
func (a *App) Execute(line string) bool {
	vertex := a.telemetry.Record(line)

	res, err := a.apply(line)
	if err != nil {
		vertex.Log(domain.LogLevelWarn, err.Error())
		vertex.Complete(err)
		a.renderer.RenderError(err)
		return false
	}

	var saveErr error
	if res.Mutates() {
		saveErr = a.store.Save(a.tasks)
	}

	a.renderer.Render(res)
	if saveErr != nil {
		a.logger.Error(saveErr)
		a.renderer.RenderError(saveErr)
	}
	vertex.Complete(saveErr)

	return res.Kind == domain.ResultExit
}

func (a *App) apply(line string) (domain.Result, error) {
	cmd, err := a.parser.Parse(line)
	if err != nil {
		return domain.Result{}, err
	}
	return cmd.Apply(a.tasks)
}
