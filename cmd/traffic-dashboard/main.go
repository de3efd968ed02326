package main

import (
	"fmt"
	"os"

	"traffic-dashboard/internal/config"
	httphandler "traffic-dashboard/internal/http"
	"traffic-dashboard/internal/logger"
	"traffic-dashboard/internal/model"
	"traffic-dashboard/internal/poller"
	"traffic-dashboard/internal/service"
	"traffic-dashboard/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, appLogger)
	trafficService := service.NewTrafficService(client, cfg.Poll.DetectionLimit, appLogger)

	initial := model.Selection{Mode: model.ModeLive, AutoRefresh: true}
	poll := poller.New(trafficService, cfg.Poll.Interval, initial, appLogger)
	go poll.Run()
	defer poll.Stop()

	handler := httphandler.NewHandler(trafficService, poll, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Str("upstream", cfg.Upstream.BaseURL).Msg("starting traffic dashboard")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
