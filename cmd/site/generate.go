package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"editfolio.dev/internal/models"
	"editfolio.dev/internal/services"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the resolved project catalogue and content schema as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}

		outputDir := args[0]
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		outputs := []struct {
			name string
			data any
		}{
			{"projects.json", services.NewProjectService(store).Views()},
			{"testimonials.json", services.NewTestimonialService(store).GetAll()},
			{"profile.json", services.NewProfileService(store).Hero()},
			{"schema.json", jsonschema.Reflect(&models.Site{})},
		}

		for _, out := range outputs {
			data, err := json.MarshalIndent(out.data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal %s: %w", out.name, err)
			}

			path := filepath.Join(outputDir, out.name)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logrus.WithField("file", path).Info("Generated")
		}
		return nil
	},
}
