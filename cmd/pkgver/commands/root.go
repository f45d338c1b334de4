// Package commands implements the CLI commands for pkgver.
package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgver/internal/build"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for pkgver.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	flags    globalFlags
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Events() []domain.LifecycleEvent
	HandleEvent(ctx context.Context, event string, overrides domain.ConfigOverrides) error
	DumpVersions(ctx context.Context, overrides domain.ConfigOverrides) (domain.WriteOutcome, error)
	Check(ctx context.Context, overrides domain.ConfigOverrides) (string, error)
	Versions(ctx context.Context, overrides domain.ConfigOverrides) (*domain.VersionMap, error)
	Lookup(ctx context.Context, overrides domain.ConfigOverrides, packageName string) (string, error)
	Watch(ctx context.Context, overrides domain.ConfigOverrides) error
	ConfigureLogging(format string) error
	EnableTracing() func(context.Context) error
}

type globalFlags struct {
	config        string
	logFormat     string
	trace         bool
	vendorDir     string
	lockFile      string
	rootName      string
	rootVersion   string
	rootReference string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgver",
		Short:         "Generate a Go file recording the versions of installed packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.config, "config", "c", "", "Path to "+domain.ConfigFileName+" (default: searched from the working directory)")
	pf.StringVar(&c.flags.logFormat, "log-format", "auto", "Log format: auto, pretty, plain, or json")
	pf.BoolVar(&c.flags.trace, "trace", false, "Log the duration of every pipeline stage")
	pf.StringVar(&c.flags.vendorDir, "vendor-dir", "", "Override the vendor directory")
	pf.StringVar(&c.flags.lockFile, "lock-file", "", "Override the lock file")
	pf.StringVar(&c.flags.rootName, "root-name", "", "Override the root package name")
	pf.StringVar(&c.flags.rootVersion, "root-version", "", "Override the root package version")
	pf.StringVar(&c.flags.rootReference, "root-reference", "", "Override the root package source reference")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if err := c.app.ConfigureLogging(c.flags.logFormat); err != nil {
			return err
		}
		if c.flags.trace {
			c.shutdown = c.app.EnableTracing()
		}
		return nil
	}

	rootCmd.AddCommand(c.newHookCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		_ = c.shutdown(ctx)
		c.shutdown = nil
	}
	return err
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

// overrides converts the persistent flags. Paths are made absolute against
// the working directory so they do not depend on where the config file lives.
func (c *CLI) overrides() (domain.ConfigOverrides, error) {
	o := domain.ConfigOverrides{
		RootName:      c.flags.rootName,
		RootVersion:   c.flags.rootVersion,
		RootReference: c.flags.rootReference,
	}

	for _, p := range []struct {
		src string
		dst *string
	}{
		{c.flags.config, &o.ConfigPath},
		{c.flags.vendorDir, &o.VendorDir},
		{c.flags.lockFile, &o.LockFile},
	} {
		if p.src == "" {
			continue
		}
		abs, err := filepath.Abs(p.src)
		if err != nil {
			return domain.ConfigOverrides{}, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", p.src)
		}
		*p.dst = abs
	}

	return o, nil
}
