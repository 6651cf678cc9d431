// Package cmd provides the supafox command-line interface.
//
// Configuration is read from, highest priority first:
//  1. command-line flags (--port, --environment, ...)
//  2. SUPAFOX_<SECTION>_<OPTION> environment variables, plus the
//     SUPAFOX_ENVIRONMENT / VERCEL_ENV and SUPAFOX_PUBLIC_URL / VERCEL_URL
//     fallbacks
//  3. the config file: --config, else SUPAFOX_CONFIG_FILE, else .supafox.yml
//     in the working directory
//  4. built-in defaults
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/supafox/supafox/internal/config"
	"github.com/supafox/supafox/internal/logging"
)

var (
	cfgFile string
	// configErr is a config file that was asked for explicitly but could not
	// be read. Commands report it instead of running on defaults.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "supafox",
	Short: "Serve the SupaFox site",
	Long: `SupaFox serves the marketing and legal pages of the SupaFox starter with
Supabase session handling, per-request CSP nonces and security headers.

Quick Start:
  supafox serve                   Start the server
  supafox legal list              List the legal documents
  supafox routes /dashboard       Show how a path is guarded
  supafox version                 Show version information`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .supafox.yml, can also use SUPAFOX_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log-level":  "log.level",
		"log-format": "log.format",
	})
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	configErr = nil

	explicit := true
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv(config.EnvPrefix+"_CONFIG_FILE") != "":
		v.SetConfigFile(os.Getenv(config.EnvPrefix + "_CONFIG_FILE"))
	default:
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".supafox")
	}

	err := v.ReadInConfig()
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	case explicit:
		configErr = fmt.Errorf("failed to read config file: %w", err)
	default:
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config file: %w", err)
		}
	}
}

// loadConfig loads and validates the configuration and builds the logger it
// describes.
func loadConfig() (*config.Config, logging.Logger, error) {
	if configErr != nil {
		return nil, nil, configErr
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	return cfg, logger, nil
}
