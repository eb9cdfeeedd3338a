package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pippidis/project-tools/internal/branding"
	"github.com/pippidis/project-tools/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// app carries state shared by every command of one invocation.
type app struct {
	logLevel string
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard)}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` builds a conventional multi-component project layout (code, tests,
config, logs, assets, shared utilities) and fills it with boilerplate
generated from templates. Files that already have content are never
overwritten, so a build can be rerun at any time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: log_level setting or info)")

	rootCmd.AddCommand(
		newBuildCmd(a),
		newConfigCmd(),
		newValidateCmd(),
		newAssetsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// newLogger returns a logger writing to w. An empty level falls back to the
// log_level setting, then to info.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = config.Get(config.KeyLogLevel)
	}
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{Prefix: branding.CLIName()})
	logger.SetLevel(lvl)
	return logger, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := newRootCmd().Execute(); err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: branding.CLIName()}).Error(err)
		return err
	}
	return nil
}
