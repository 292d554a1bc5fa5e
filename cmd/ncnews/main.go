// Command ncnews runs the NC News API and manages its database.
//
//	ncnews serve            start the HTTP server
//	ncnews seed --dataset   drop, recreate and seed the schema
//
// Configuration comes from the environment; a .env file is loaded first when
// present.
//
// @title       NC News API
// @version     1.0
// @description REST API for news articles, topics, comments and users.
// @license.name MIT
// @BasePath    /api
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tbourn/nc-news/internal/config"
	"github.com/tbourn/nc-news/internal/repo"
	"github.com/tbourn/nc-news/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// envFile is set by the --env-file flag.
	envFile string

	// cfg is loaded once by the root command's PersistentPreRunE.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ncnews",
	Short:         "NC News REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return loadConfig()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ncnews", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads the dotenv file (a missing file is fine), loads and
// validates the configuration and installs the global logger.
func loadConfig() error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = c
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName, os.Stderr)
	return nil
}

// storeOptions maps the loaded configuration onto repo.Open.
func storeOptions(c config.Config) repo.Options {
	return repo.Options{
		Driver:       c.DB.Driver,
		DSN:          c.DB.URL,
		Path:         c.DB.Path,
		MaxOpenConns: c.DB.MaxOpenConns,
		Tracing:      c.OTEL.Enabled,
		LogSQL:       c.DB.LogSQL,
	}
}
