// Command mealboard is a demo food diary whose entries and quick-add
// templates are moved between meals with long-press drags. It runs in an
// Ebitengine window, in the terminal, or headless from a gesture script.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/phanxgames/holddrag"
	"github.com/spf13/cobra"
)

// Version information (set by the release build)
var (
	version = "dev"
	commit  = "none"
)

// options holds the persistent flags.
type options struct {
	configPath string
	debug      bool
	logFile    string
}

// loadConfig reads --config, or the user config file if it exists.
func (o *options) loadConfig() (*holddrag.Config, error) {
	var (
		cfg *holddrag.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = holddrag.LoadConfig(o.configPath)
	} else {
		cfg, err = holddrag.LoadUserConfig()
	}
	if err != nil {
		return nil, err
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// logger writes to --log-file, or to fallback. A nil fallback without a
// log file disables logging.
func (o *options) logger(cfg *holddrag.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	if w == nil {
		return nil, closeFn, nil
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "mealboard",
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
	}), closeFn, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "mealboard",
		Short: "Long-press drag demo food diary",
		Long: `Mealboard logs a day of food in four meals. Hold an entry or a quick-add
template still for a moment, then drag it onto another meal to move or add it.
A short click is a tap.`,
		Example: `  # Open the window
  mealboard run

  # Use the terminal instead
  mealboard tui

  # Replay a recorded gesture script
  mealboard replay drag.json

  # Show the effective configuration
  mealboard config show`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: user config dir)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log every gesture transition")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the diary in a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := opts.logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			return runWindow(cfg, logger)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the diary in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			// Only log to a file; stderr belongs to the terminal UI.
			logger, closeLog, err := opts.logger(cfg, nil)
			if err != nil {
				return err
			}
			defer closeLog()
			return runTUI(cfg, logger)
		},
	}

	replayCmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a JSON gesture script without a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := opts.logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			return replayFile(cmd.OutOrStdout(), cfg, logger, args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the user config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := holddrag.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	configCmd.AddCommand(configPathCmd, configShowCmd)

	root.AddCommand(runCmd, tuiCmd, replayCmd, configCmd)
	return root
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s", version, commit)),
	); err != nil {
		os.Exit(1)
	}
}
