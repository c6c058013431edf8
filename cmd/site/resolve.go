package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"editfolio.dev/internal/media"
	"editfolio.dev/internal/models"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("declared", "d", string(models.DeclaredImage), "Declared media kind (image or video)")
}

var resolveCmd = &cobra.Command{
	Use:     "resolve <url>",
	Short:   "Show how a media URL will be embedded",
	Example: "  site resolve https://dai.ly/x9v7kru\n  site resolve https://cdn.example.com/reel --declared video",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		declared, err := cmd.Flags().GetString("declared")
		if err != nil {
			return err
		}
		src := media.Resolve(args[0], models.DeclaredKind(declared))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(src)
	},
}
