package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mentoria-be/internal/bootstrap"
	"mentoria-be/internal/config"
	"mentoria-be/internal/server"
	"mentoria-be/internal/tracer"
	"mentoria-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.App.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Tracer
	shutdownTracer := tracer.Init(context.Background(), cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.App.Environment != "production")
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)
	defer container.Close()

	// 4. Start Background Services
	go func() {
		container.Logger.Info("Main", "Starting email consumer", nil)
		if err := container.ConsumerService.Consume(ctx); err != nil {
			container.Logger.Error("Main", "Email consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()
	container.NotificationService.Start()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("Main", "Shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
