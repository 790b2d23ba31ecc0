package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anurag07-07/Resculink/internal/config"
	"github.com/Anurag07-07/Resculink/internal/server"
)

func main() {
	cfg := config.Load()

	srv, cleanup, err := server.NewServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}
	defer cleanup()

	go func() {
		log.Printf("RescuLink REST server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
}
