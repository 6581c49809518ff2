package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

var (
	verbose    bool
	configPath string
	dataDir    string
	adapter    string
	recordKey  string

	cfg *platform.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Take, tag and search short notes stored locally",
	Long: `jot keeps a collection of short notes in one local record.
Notes can be added, edited, deleted, tagged, searched and filtered by tag.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; a malformed one is worth reporting.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: ignoring .env: %v\n", err)
		}

		loaded, err := platform.LoadConfig(resolveConfigPath())
		if err != nil {
			return err
		}
		loaded.ApplyEnv()
		if adapter != "" {
			loaded.Adapter = adapter
		}
		if recordKey != "" {
			loaded.Key = recordKey
		}
		cfg = loaded

		slog.SetDefault(platform.NewLogger(os.Stderr, cfg.Log, verbose))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: jot.yaml in the project root)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (overrides config and JOT_DIR)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&recordKey, "key", "", "Name of the persisted record")
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root, err := platform.FindRoot(wd)
	if err != nil {
		return ""
	}
	return filepath.Join(root, platform.ConfigFile)
}

// openService builds the session and reports a failed initial load.
// The session still works in memory in that case.
func openService() *core.Service {
	dir := dataDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}
		base := wd
		if root, err := platform.FindRoot(wd); err == nil {
			base = root
		}
		dir = cfg.DataDir(base)
	}

	opts := append(cfg.Options(), platform.WithLogger(slog.Default()))
	svc, err := platform.New(dir, opts...)
	if err != nil {
		fatal("Failed to initialize jot", err)
	}
	if err := svc.LastError(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: starting with no notes: %v\n", err)
		svc.ClearError()
	}
	return svc
}

// checkSaved reports a failed persistence attempt after a mutation.
func checkSaved(svc *core.Service) {
	if err := svc.LastError(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: change kept in memory only: %v\n", err)
		os.Exit(1)
	}
}
