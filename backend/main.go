package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"eduadmin/backend/config"
	"eduadmin/backend/controllers"
	"eduadmin/backend/gateway"
	"eduadmin/backend/routes"
	"eduadmin/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogFormat == "color",
	})

	// Initialize database
	db, err := utils.InitDB(cfg, logger)
	if err != nil {
		logger.Fatalf("Error initializing database: %v", err)
	}
	if err := controllers.SeedAdmin(db, cfg, logger); err != nil {
		logger.Fatalf("Error seeding admin: %v", err)
	}

	var gw gateway.StatusChecker
	if m, err := gateway.NewMidtrans(cfg.MidtransServerKey, cfg.MidtransProduction); err == nil {
		gw = m
	} else {
		logger.Printf("payment status sync disabled: %v", err)
	}

	app := routes.NewApp(db, cfg, logger, gw)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Println("shutting down")
		_ = app.Shutdown()
	}()

	logger.Printf("listening on :%s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal(err)
	}
}
