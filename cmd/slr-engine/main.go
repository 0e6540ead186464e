// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slr-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE. Commands run without the root
// hook (tests) leave it nil and the packages fall back to a no-op logger.
var logger *zap.Logger

// rootCmd is the base command for the slr-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "slr-engine",
	Short: "Classify and report on a systematic literature review spreadsheet",
	Long: `slr-engine reads the data-extraction spreadsheet of a systematic literature
review on regression testing, classifies each paper (taxonomy class, algorithm
family, evaluation metrics, objective count, SUT origin), and prints
cross-tabulations listing the papers behind every label.

Each report is a subcommand: bib, taxonomy, metrics, sut, and dump. The
catalog command indexes the classified papers for ad-hoc queries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./slr-engine.yaml or ~/.config/slr-engine/config.yaml)")
	pf.StringP("input", "i", "", "spreadsheet to read (default: first .xlsx, .xls, or .csv in --dir)")
	pf.String("dir", ".", "directory searched when --input is not given")
	pf.String("sheet", "", "worksheet name (default: first sheet)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("input.path", pf.Lookup("input"))
	_ = viper.BindPFlag("input.dir", pf.Lookup("dir"))
	_ = viper.BindPFlag("input.sheet", pf.Lookup("sheet"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))

	setColumnDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slr-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slr-engine"))
		}
	}

	viper.SetEnvPrefix("SLR_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setColumnDefaults registers every column key so that environment
// variables such as SLR_ENGINE_COLUMNS_TITLE are picked up by Unmarshal.
func setColumnDefaults(v *viper.Viper) {
	for field, pos := range types.DefaultColumns().Positions() {
		v.SetDefault("columns."+string(field), pos)
	}
}

// loadConfig reads the effective configuration from v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{Columns: types.DefaultColumns()}
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
