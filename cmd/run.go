package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhardy773/security-plus-study-app/internal/app"
	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/config"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/store"
)

// runApp opens the store, loads the bank and config, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	repo, err := loadBank(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine := progress.Load(st, logger)

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		// A broken config file should not block studying.
		logger.Warn("config file ignored", "path", cfgPath, "error", err)
		fileCfg = config.FileConfig{}
	}

	return app.Run(app.Options{
		Repo:       repo,
		Engine:     engine,
		FileConfig: fileCfg,
	})
}

// loadBank returns the repository from --bank, or the embedded bank.
func loadBank(cmd *cobra.Command) (*bank.Repository, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		repo, err := bank.LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		return repo, nil
	}
	repo, err := bank.Default()
	if err != nil {
		return nil, fmt.Errorf("load built-in question bank: %w", err)
	}
	return repo, nil
}
