package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"editfolio.dev/internal/analytics"
	"editfolio.dev/internal/config"
	"editfolio.dev/internal/handlers"
	"editfolio.dev/internal/middleware"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(config.ServerAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().BoolP("watch", "w", false, "Reload the content file when it changes")
	lo.Must0(viper.BindPFlag(config.ContentWatch, serveCmd.Flags().Lookup("watch")))

	serveCmd.Flags().String("analytics-db", "", "SQLite database for visitor analytics (disabled when empty)")
	lo.Must0(viper.BindPFlag(config.AnalyticsDB, serveCmd.Flags().Lookup("analytics-db")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	store, err := loadContent()
	if err != nil {
		return err
	}

	opts := handlers.Options{Content: store}
	if cfg.Analytics.Enabled() {
		visits, err := analytics.Open(cfg.Analytics.DBPath, cfg.Analytics.Salt)
		if err != nil {
			return err
		}
		defer visits.Close()

		removed, err := visits.Cleanup(ctx, cfg.Analytics.Retention)
		if err != nil {
			logrus.WithError(err).Warn("Visit cleanup failed")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Removed expired visits")
		}
		tracker := middleware.NewVisitTracker(visits)
		// Runs before Close so pending visits are written first.
		defer tracker.Wait()
		opts.Visits = tracker
	}

	router, err := handlers.SetupRoutes(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"addr":    cfg.ServerAddr,
			"content": store.Path(),
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logrus.Info("Server stopped")
		return nil
	})

	if cfg.WatchContent {
		g.Go(func() error {
			return store.Watch(ctx)
		})
	}

	return g.Wait()
}
