package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"book-lookup/internal/handler"
	web "book-lookup/internal/server"
	"book-lookup/internal/store"
)

var port = flag.String("port", "3000", "http server port")

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	client, err := store.NewClient(context.Background(), os.Getenv("ENV"))
	if err != nil {
		logger.Fatal("Failed to init dynamodb client", zap.Error(err))
	}

	books := store.NewBookStore(store.WithRetry(client, store.DefaultPolicy()))
	srv := web.NewServer(handler.NewLookup(books, logger), logger)

	go func() {
		if err := srv.Start(*port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Setup Signal Handling (Ctrl+C)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	logger.Info("Goodbye!")
}
