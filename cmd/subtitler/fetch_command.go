package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <file>...",
		Short: "Fetch the subtitle of each media file and write it next to the file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := newFetcher()
			language := viper.GetString("language")

			var errs []error
			for _, path := range args {
				out, err := fetcher.Fetch(cmd.Context(), path, language)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			if len(errs) > 0 {
				captureError(errors.Join(errs...))
				return fmt.Errorf("%d of %d fetches failed", len(errs), len(args))
			}
			return nil
		},
	}
}
