// Package commands implements the CLI commands for the noxy session runner.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/noxy/internal/app"
	"go.trai.ch/noxy/internal/build"
	"go.trai.ch/noxy/internal/core/domain"
)

// environmentHelp documents the variables that shape the session list and runs.
const environmentHelp = `Environment:
  PY_VER       Python versions to test, comma or space separated (default 3.6,3.7,3.8)
  COVERAGE     Enable coverage; empty, 0, false, no or off (any case) disable it,
               any other value enables it
  IRIS_SOURCE  Iris checkout to test against, e.g. github:main`

// CLI represents the command line interface for noxy.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, names []string, opts app.RunOptions) error
	List(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "noxy",
		Short:         "Run lint, test and lock file sessions in cached environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().String("envdir", "", "Directory holding the session environments")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newStatusCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func globalOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	envDir, _ := cmd.Flags().GetString("envdir")
	debug, _ := cmd.Flags().GetBool("debug")
	return app.Options{
		ConfigPath: configPath,
		EnvDir:     envDir,
		Debug:      debug,
	}
}
