package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/opensubtitles"
	"github.com/Belphemur/Subtitler/internal/subtitler"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "subtitler",
		Short:         "Download matching subtitles for local media files from OpenSubtitles",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Reload()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			setupReporting(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("lang", "l", "", "Subtitle language as an ISO 639-1 code (default from config, \"en\")")
	flags.String("catalog-url", "", "OpenSubtitles XML-RPC endpoint")
	flags.String("user-agent", "", "Client identifier registered with OpenSubtitles")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	for key, name := range map[string]string{
		"language":    "lang",
		"catalog_url": "catalog-url",
		"user_agent":  "user-agent",
		"log_level":   "log-level",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newShowCommand())

	return rootCmd
}

// newFetcher builds the catalog client and fetcher from the loaded configuration.
func newFetcher() *subtitler.Fetcher {
	cfg := config.GetConfig()
	return subtitler.NewFetcher(cfg, opensubtitles.NewClient(cfg))
}
