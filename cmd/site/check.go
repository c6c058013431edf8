package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"editfolio.dev/internal/media"
	"editfolio.dev/internal/models"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content file and list how each project resolves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		site := store.Site()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok (%d projects, %d testimonials)\n",
			store.Path(), len(site.Projects), len(site.Testimonials))

		kinds := lo.CountValuesBy(site.Projects, func(p models.Project) media.Kind {
			return media.Resolve(p.Src, p.Type).Kind
		})
		for _, p := range site.Projects {
			src := media.Resolve(p.Src, p.Type)
			fmt.Fprintf(out, "  #%-3d %-12s %s\n", p.ID, src.Kind, p.Title)
		}
		for _, k := range []media.Kind{media.YouTube, media.Dailymotion, media.GoogleDrive, media.DirectVideo, media.DirectImage} {
			if n := kinds[k]; n > 0 {
				fmt.Fprintf(out, "%s: %d\n", k, n)
			}
		}
		return nil
	},
}
