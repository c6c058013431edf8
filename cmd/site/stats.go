package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"editfolio.dev/internal/analytics"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Analytics.Enabled() {
			return errors.New("analytics is disabled; set analytics.db or EDITFOLIO_ANALYTICS_DB")
		}

		store, err := analytics.Open(cfg.Analytics.DBPath, cfg.Analytics.Salt)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total visits:     %d\n", stats.TotalVisits)
		fmt.Fprintf(out, "Unique visitors:  %d\n", stats.UniqueVisitors)
		fmt.Fprintf(out, "Today:            %d\n", stats.VisitsToday)
		fmt.Fprintf(out, "Last 7 days:      %d\n", stats.VisitsThisWeek)
		if len(stats.TopPaths) > 0 {
			fmt.Fprintln(out, "\nTop pages:")
			for _, p := range stats.TopPaths {
				fmt.Fprintf(out, "  %6d  %s\n", p.Views, p.Path)
			}
		}
		return nil
	},
}
