package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jhardy773/security-plus-study-app/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "secplus",
	Short: "Security+ exam study app",
	Long:  "secplus is a terminal study app for the CompTIA Security+ exam with adaptive weak-area tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SECPLUS_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (default: built-in bank)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SECPLUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
