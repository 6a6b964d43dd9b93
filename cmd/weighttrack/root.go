package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/app"
	"weighttrack/internal/config"
	"weighttrack/internal/logging"
)

var (
	configPath string

	cfg   *config.Config
	store config.Store

	records  *app.RecordsService
	settings *app.SettingsService
	progress *app.ProgressService
	charts   *app.ChartsService
)

var rootCmd = &cobra.Command{
	Use:   "weighttrack",
	Short: "Weight-loss progress tracker",
	Long: `Weighttrack records one weight measurement per day and tracks progress
toward a target weight and date.

QUICK START:

  $ weighttrack setup --height 175 --initial 82 --target 72 --target-date 2026-09-01
  $ weighttrack record 81.4                      # today's weight
  $ weighttrack record 81.1 --at 2026-03-14 --fat 24.5
  $ weighttrack progress                         # pace, BMI, ETA
  $ weighttrack serve                            # HTTP API on :8080

STORAGE:

  The backend is chosen with 'backend' in the config file or
  WEIGHTTRACK_BACKEND: badger (default, under ~/.local/share/weighttrack),
  postgres (DATABASE_URL), redis (REDIS_ADDR) or memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.LogFile,
			LogToStdout:   cfg.LogToStdout,
			LogLevel:      cfg.LogLevel,
			LogFormatJSON: cfg.LogJSON,
		})

		store, err = cfg.OpenStore()
		if err != nil {
			return err
		}
		repo := app.NewRepository(store, cfg.Keys())
		records = app.NewRecordsService(repo, "")
		settings = app.NewSettingsService(repo, "")
		progress = app.NewProgressService(repo)
		charts = app.NewChartsService(repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML config file")
}

// printValidation lists the field errors of err, if any, and reports
// whether it did.
func printValidation(w io.Writer, err error) bool {
	fields := app.ValidationErrors(err)
	if len(fields) == 0 {
		return false
	}
	red := color.New(color.FgRed)
	for _, f := range fields {
		red.Fprintf(w, "✗ %s %s\n", f.Field, f.Msg)
	}
	return true
}

func checkValidation(cmd *cobra.Command, err error) error {
	if printValidation(cmd.ErrOrStderr(), err) {
		return fmt.Errorf("invalid input")
	}
	return err
}
