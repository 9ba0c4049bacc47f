package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charadex/charadex/internal/api"
	"github.com/charadex/charadex/internal/config"
	"github.com/charadex/charadex/internal/store"
	"github.com/charadex/charadex/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagRefresh bool
	flagNoCache bool
)

var rootCmd = &cobra.Command{
	Use:   "charadex",
	Short: "TUI character browser",
	Long: `charadex fetches the full character collection from a paginated REST API,
caches it locally, and browses it with keyword, species, and date filters.`,
	RunE: runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "drop the cached character set and refetch")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "fetch without reading or writing the cache")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var st *store.Store
	if !flagNoCache {
		st, err = store.Open(config.StorePath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()
	}

	client := api.New(cfg.Endpoint, st, cfg.CacheTTLDuration())
	if flagRefresh {
		client.Invalidate()
	}

	return tui.Run(tui.RunOpts{Cfg: cfg, Store: st, Client: client})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("charadex %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
