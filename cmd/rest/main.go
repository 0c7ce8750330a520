package main

import (
	"context"
	"log"

	"mindshift-be/internal/bootstrap"
	"mindshift-be/internal/config"
	"mindshift-be/internal/server"
	"mindshift-be/internal/tracer"
	"mindshift-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.JournalService.Close()

	// 4. Start Background Services
	if err := container.WebhookConsumer.Consume(context.Background()); err != nil {
		log.Printf("Background Webhook Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
