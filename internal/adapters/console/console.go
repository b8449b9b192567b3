// Package console implements the terminal user interface: a line reader over
// stdin and a renderer printing framed, optionally colored, feedback blocks.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/spaceman/internal/ui/output"
	"go.trai.ch/spaceman/internal/ui/style"
)

// Console implements ports.Renderer on a termenv output.
type Console struct {
	out *termenv.Output
}

// New creates a Console writing to w with the color behavior of mode.
func New(w io.Writer, mode domain.ColorMode) *Console {
	return &Console{out: output.New(w, mode)}
}

// Welcome prints the logo and the greeting.
func (c *Console) Welcome() {
	c.writeLines("Hello from", c.paint(logo, style.Nebula))
	c.block(msgWelcome)
}

// Goodbye prints the farewell message.
func (c *Console) Goodbye() {
	c.block(c.paint(msgGoodbye, style.Star))
}

// NoPreviousData tells the user that a fresh task file is being started.
func (c *Console) NoPreviousData() {
	c.block(c.paint(msgNoData, style.Yellow))
}

// Render prints the feedback for a command result.
func (c *Console) Render(res domain.Result) {
	switch res.Kind {
	case domain.ResultAdded:
		c.block(msgAdded, c.task(res.Task), c.count(res.Count))
	case domain.ResultRemoved:
		c.block(msgRemoved, c.task(res.Task), c.count(res.Count))
	case domain.ResultMarked:
		c.block(msgMarked, c.task(res.Task))
	case domain.ResultUnmarked:
		c.block(msgUnmarked, c.task(res.Task))
	case domain.ResultListed:
		c.listing(msgList, msgEmptyList, res.Tasks)
	case domain.ResultFound:
		c.listing(msgFound, msgNoneFound, res.Tasks)
	case domain.ResultHelp:
		c.block(helpLines...)
	case domain.ResultExit:
		c.Goodbye()
	}
}

// RenderError prints the user-facing message for err.
func (c *Console) RenderError(err error) {
	if err == nil {
		return
	}
	c.block(c.paint(domain.UserMessage(err), style.Red))
}

func (c *Console) listing(header, empty string, tasks []*domain.Task) {
	if len(tasks) == 0 {
		c.block(empty)
		return
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, header)
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c.styledTask(t)))
	}
	c.block(lines...)
}

func (c *Console) task(t *domain.Task) string {
	return msgTaskIndent + c.styledTask(t)
}

func (c *Console) styledTask(t *domain.Task) string {
	if t.Done() {
		return c.paint(t.String(), style.Green)
	}
	return t.String()
}

func (c *Console) count(n int) string {
	return fmt.Sprintf(msgTaskCount, n)
}

func (c *Console) paint(s string, color lipgloss.Color) string {
	return c.out.String(s).Foreground(c.out.Color(string(color))).String()
}

func (c *Console) block(lines ...string) {
	divider := c.paint(Divider, style.Slate)
	c.writeLines(append(append([]string{divider}, lines...), divider)...)
}

func (c *Console) writeLines(lines ...string) {
	_, _ = c.out.WriteString(strings.Join(lines, "\n") + "\n")
}
