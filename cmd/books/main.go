package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"book-lookup/internal/model"
	"book-lookup/internal/store"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "books",
	Short: "Admin tooling for the book lookup service",
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the books table (safe to re-run)",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if err := store.EnsureTable(ctx, newClient(ctx)); err != nil {
			logger.Fatal("Failed to create table", zap.Error(err))
		}

		logger.Info("Table ready", zap.String("table", store.TableBooks))
	},
}

var putCmd = &cobra.Command{
	Use:   "put [title]",
	Short: "Store a book with a fresh id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		books := newBookStore(ctx)

		book := model.NewBook(args[0])
		if err := books.Put(ctx, book); err != nil {
			logger.Fatal("Failed to store book", zap.Error(err))
		}

		logger.Info("Book stored",
			zap.String("id", book.ID.String()),
			zap.String("title", book.Title))
	},
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch a book and print it as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		books := newBookStore(ctx)

		book, err := books.Get(ctx, args[0])
		if err != nil {
			logger.Fatal("Failed to fetch book", zap.Error(err))
		}

		data, err := json.Marshal(book)
		if err != nil {
			logger.Fatal("Failed to marshal book", zap.Error(err))
		}
		fmt.Println(string(data))
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		books := newBookStore(ctx)

		if err := books.Delete(ctx, args[0]); err != nil {
			logger.Fatal("Failed to delete book", zap.Error(err))
		}

		logger.Info("Book deleted", zap.String("id", args[0]))
	},
}

func newClient(ctx context.Context) *dynamodb.Client {
	client, err := store.NewClient(ctx, os.Getenv("ENV"))
	if err != nil {
		logger.Fatal("Failed to init dynamodb client", zap.Error(err))
	}
	return client
}

func newBookStore(ctx context.Context) *store.BookStore {
	return store.NewBookStore(store.WithRetry(newClient(ctx), store.DefaultPolicy()))
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
