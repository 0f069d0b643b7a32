package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Belphemur/Subtitler/internal/models"
)

func newShowCommand() *cobra.Command {
	var (
		season  int
		episode int
		target  string
	)

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Fetch an episode subtitle by title, season and episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := models.ShowQuery{
				Title:    args[0],
				Season:   season,
				Episode:  episode,
				Language: viper.GetString("language"),
			}

			out, err := newFetcher().FetchShow(cmd.Context(), query, target)
			if err != nil {
				captureError(err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&season, "season", 0, "Season number")
	cmd.Flags().IntVar(&episode, "episode", 0, "Episode number")
	cmd.Flags().StringVar(&target, "target", "", "Media file path the subtitle is written next to")
	_ = cmd.MarkFlagRequired("season")
	_ = cmd.MarkFlagRequired("episode")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
