// Root command for the tablecore CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ofekshp/TableCore/internal/paths"
)

// Exit codes: 1 for user mistakes, 2 for environment failures.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
)

// cfgBackend and friends hold values loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use them.
var (
	cfgBackend  string
	cfgDataDir  string
	cfgPageSize int
	cfgSeedRows int
)

var rootCmd = &cobra.Command{
	Use:     "tablecore",
	Short:   "Tablecore is a local-first editable data table",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfgBackend = cfg.GetString(cfgKeyBackend)
		cfgDataDir = cfg.GetString(cfgKeyDataDir)
		cfgPageSize = cfg.GetInt(cfgKeyPageSize)
		cfgSeedRows = cfg.GetInt(cfgKeySeedRows)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tablecore-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, file or badger (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartCmd)
}

// resolveDataDir returns the data directory path:
// --data-dir flag > config.yaml data_dir > TABLECORE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfgDataDir)
}

// resolveConfigDir returns the configuration directory:
// --config-dir flag > TABLECORE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBackend returns the backend name, preferring the --backend flag
// over config.yaml.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	return cfgBackend
}
