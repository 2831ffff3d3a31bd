package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fvg-dashboard/src/config"
	"fvg-dashboard/src/interfaces"
	"fvg-dashboard/src/logger"
	"fvg-dashboard/src/network"
	"fvg-dashboard/src/scanner"
	"fvg-dashboard/src/server"
	"fvg-dashboard/src/utils"
	"fvg-dashboard/src/view"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file (+ env overrides)
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.LogLevel, config.Name)

	// 1. Outbound HTTP + scanner boundary
	netMgr := network.NewManager(config.MConfig, logger.NewLogger(config.LogLevel, "Network"))
	var client interfaces.IMarketClient = scanner.NewClient(config.MConfig, netMgr, logger.NewLogger(config.LogLevel, "Scanner"))

	// 2. View state + session tracking
	controller := view.NewController(client, logger.NewLogger(config.LogLevel, "ViewController"))
	sessions := utils.NewSessionTracker(logger.NewLogger(config.LogLevel, "SessionTracker"))

	// 3. Dashboard server; it doubles as the snapshot publisher
	srv := server.NewDashboardServer(config.MConfig, controller, sessions, appLogger)
	controller.SetPublisher(srv)

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	// 4. The one summary fetch of the application lifetime ("mount")
	appLogger.Info("Fetching pair summary from %s ...", config.Scanner.BaseURL)
	controller.LoadSummary()

	summary := controller.Summary()
	symbols := make([]string, 0, len(summary))
	for symbol := range summary {
		symbols = append(symbols, symbol)
	}
	sessions.UpdatePairs(symbols)

	appLogger.Info("Dashboard ready with %d pairs", len(symbols))

	// 5. Wait for shutdown signal; everything else is client-driven
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	srv.Stop()
}
