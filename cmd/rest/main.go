package main

import (
	"context"
	"log"

	"hireup-be/internal/bootstrap"
	"hireup-be/internal/config"
	"hireup-be/internal/server"
	"hireup-be/internal/tracer"
	"hireup-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting activity consumer...")
		if err := container.ActivityConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background activity consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
