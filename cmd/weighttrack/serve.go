package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	adapthttp "weighttrack/internal/adapter/http"
	"weighttrack/internal/config"
	"weighttrack/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API, the web pages and /metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.NewManager("weighttrack", "server", reg)
		if cs, ok := store.(*config.CachedStore); ok {
			m.RegisterCacheHitRate(cs.HitRate)
		}

		h := adapthttp.New(records, settings, progress, charts, cfg.WebDir).WithMetrics(m, reg).Handler()
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      time.Minute,
		}

		errc := make(chan error, 1)
		go func() {
			log.Infof("listening on %s (backend %s)", cfg.Addr, cfg.Backend)
			errc <- srv.ListenAndServe()
		}()

		var err error
		select {
		case err = <-errc:
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err = srv.Shutdown(shutdownCtx)
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return multierr.Append(err, closeStore())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
