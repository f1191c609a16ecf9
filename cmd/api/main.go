package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/cameronehrlich/deals-sub001/internal/config"
	"github.com/cameronehrlich/deals-sub001/internal/handler"
	"github.com/cameronehrlich/deals-sub001/internal/integrations/rates"
)

func main() {
	// Load configuration; CONFIG_PATH is optional and defaults apply
	// without it.
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	if cfg.Logging.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logLevel, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Market mortgage-rate feed: serve the fallback until the first
	// fetch succeeds, then refresh on a schedule.
	ratesClient := rates.NewClient(cfg, logger)
	if err := ratesClient.Refresh(); err != nil {
		logger.Warnf("Failed to fetch market rate, serving fallback %.2f%%: %v",
			cfg.Rates.FallbackRate*100, err)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Rates.RefreshSchedule, func() {
		if err := ratesClient.Refresh(); err != nil {
			logger.Errorf("Scheduled rate refresh failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Invalid rates refresh schedule %q: %v", cfg.Rates.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	h := handler.New(cfg.ExpenseAssumptions(), ratesClient, logger)
	r := mux.NewRouter()
	h.Routes(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
