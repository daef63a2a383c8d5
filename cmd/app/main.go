package main

import (
	"Planta-Backend/cmd/config"
	migration "Planta-Backend/cmd/database/migrate"
	"Planta-Backend/internal/utils"
	"context"
	"log"
	"os/signal"
	"syscall"

	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	var db *gorm.DB
	if utils.GetConfig("STORAGE_DRIVER") == "postgres" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	app, hub, engine, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go hub.Run()
	engine.Start(ctx)

	go func() {
		if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
