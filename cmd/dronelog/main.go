package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vova4o/dronelog/internal/app/flags"
	"github.com/vova4o/dronelog/internal/app/handlers"
	"github.com/vova4o/dronelog/internal/app/service"
	"github.com/vova4o/dronelog/internal/app/storage"
	"github.com/vova4o/dronelog/package/logger"
)

func main() {
	settings := flags.NewSettings()
	settings.LoadConfig()

	logger := logger.NewLogger(settings.GetLogLevel())
	logger.Info("Welcome to dronelog!")
	defer logger.Sync()

	stor, err := storage.NewStorage(settings.GetDBPath(), logger)
	if err != nil {
		log.Fatalf("Failed to create storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flightService, err := service.NewFlightService(ctx, stor, logger)
	if err != nil {
		log.Fatalf("Failed to create flight service: %v", err)
	}

	accountService, err := service.NewAccountService(ctx, stor, logger)
	if err != nil {
		log.Fatalf("Failed to create account service: %v", err)
	}

	flightHandler := handlers.NewFlightHandler(flightService, logger)

	flightsCh, unsubscribeFlights := flightHandler.Subscribe()
	prefsCh, unsubscribePrefs := accountService.Subscribe()

	go func() {
		for flights := range flightsCh {
			logger.Info(fmt.Sprintf("Flight log holds %d flights", len(flights)))
		}
	}()

	go func() {
		for prefs := range prefsCh {
			if prefs.IsLoggedIn {
				logger.Info(fmt.Sprintf("User %q is logged in", prefs.Username))
			} else {
				logger.Info("No user is logged in")
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Block until the process is asked to stop
	<-sigChan
	logger.Info("Shutting down dronelog...")

	unsubscribeFlights()
	unsubscribePrefs()

	if err := stor.Close(); err != nil {
		logger.Error("Failed to close storage: " + err.Error())
	}

	logger.Info("dronelog is shut down")
}
