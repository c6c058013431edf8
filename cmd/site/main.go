// Command site serves and maintains the portfolio site.
package main

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editfolio.dev/internal/config"
	"editfolio.dev/internal/content"
	"editfolio.dev/internal/logging"
)

var cfg *config.Config

func init() {
	rootCmd.PersistentFlags().StringP("content", "c", "", "Path to the site content file")
	lo.Must0(viper.BindPFlag(config.ContentPath, rootCmd.PersistentFlags().Lookup("content")))

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	lo.Must0(viper.BindPFlag(config.LogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored help output")
}

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Portfolio site for a freelance video editor",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.Load()
		logging.Setup(cfg.Log)
		return nil
	},
}

// loadContent reads the configured content file from disk
func loadContent() (*content.Store, error) {
	store, err := content.NewStore(afero.NewOsFs(), cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return store, nil
}

func main() {
	if !lo.Contains(os.Args[1:], "--no-color") {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Debug("Command failed")
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
