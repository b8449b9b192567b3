// Package commands implements the CLI commands for spaceman.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/spaceman/internal/adapters/console" //nolint:depguard // Line reader over the command input
	"go.trai.ch/spaceman/internal/app"
	"go.trai.ch/spaceman/internal/build"
)

// Session builds the application for an interactive session. It only runs
// when the root command does, so version and help work without a valid config.
type Session func(ctx context.Context) (*app.App, error)

// CLI represents the command line interface for spaceman.
type CLI struct {
	session Session
	rootCmd *cobra.Command
}

// New creates a new CLI instance that starts sessions with session.
func New(session Session) *CLI {
	c := &CLI{session: session}

	rootCmd := &cobra.Command{
		Use:   "spaceman",
		Short: "A task tracker for the terminal",
		Long: "spaceman keeps todos, deadlines and events in a plain text file.\n" +
			"Run it without arguments to start an interactive session; type `help` inside it for the commands.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Open(); err != nil {
				return err
			}
			return a.Run(cmd.Context(), console.NewReader(cmd.InOrStdin()))
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetIn sets the reader the interactive session consumes.
func (c *CLI) SetIn(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// SetOut sets the destination of cobra's own output (help, version).
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
