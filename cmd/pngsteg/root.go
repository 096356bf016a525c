package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jdtully/pngsteg/internal/config"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pngsteg",
	Short: "Hide and recover files inside PNG and BMP images",
	Long: "pngsteg embeds an arbitrary file into the least-significant bits of an\n" +
		"image's color channels, and recovers it again byte for byte.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
		if err := applyLogLevel(cfg.LogLevel); err != nil {
			log.Warn().Str("log_level", cfg.LogLevel).
				Msg("Unknown log level in config, keeping the default")
		}
	},
}

// applyLogLevel sets the global zerolog level from a config level name.
func applyLogLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to a YAML config file")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pngsteg.yaml"
	}
	return filepath.Join(home, ".pngsteg.yaml")
}

// canonicalCommand maps any token starting with embed/extract/capacity,
// in any case, onto the command name, so "EMBED", "Embedding" and
// "extractor" are all accepted.
func canonicalCommand(arg string) string {
	upper := strings.ToUpper(arg)
	for _, name := range []string{"embed", "extract", "capacity"} {
		if strings.HasPrefix(upper, strings.ToUpper(name)) {
			return name
		}
	}
	return arg
}

func Execute() {
	if len(os.Args) > 1 {
		os.Args[1] = canonicalCommand(os.Args[1])
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
