// Root command for the channelstore CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/feedforge/channelstore/internal/paths"
	"github.com/feedforge/channelstore/pkg/channelstore"
)

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagJSON      bool
)

// configDBPath holds the db_path value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDBPath string

var rootCmd = &cobra.Command{
	Use:     "channelstore",
	Short:   "Channelstore manages distribution pipeline configuration",
	Version: channelstore.Version,
	Long: `Channelstore maintains the operator-edited configuration for a content
distribution pipeline: output channels, the sources scraped for each
channel, and the sites each source polls. Data lives in a single SQLite
file; deleting a channel cascades to its sources and their sites.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDBPath = cfg.GetString(cfgKeyDBPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default: $(CWD)/channels.db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(channelCmd)
	rootCmd.AddCommand(sourceCmd)
	rootCmd.AddCommand(siteCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CHANNELSTORE_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDBPath returns the database file path following the precedence:
// --db flag > config.yaml db_path > CHANNELSTORE_DB env > $(CWD)/channels.db.
func resolveDBPath() (string, error) {
	return paths.ResolveDBPath(flagDB, configDBPath)
}
