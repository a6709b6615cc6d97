package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"book-lookup/internal/handler"
	"book-lookup/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// One client per process, shared by every invocation.
	client, err := store.NewClient(context.Background(), os.Getenv("ENV"))
	if err != nil {
		logger.Fatal("Failed to init dynamodb client", zap.Error(err))
	}

	books := store.NewBookStore(store.WithRetry(client, store.DefaultPolicy()))
	lookup := handler.NewLookup(books, logger)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		requestID := req.RequestContext.RequestID
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			requestID = lc.AwsRequestID
		}

		resp := lookup.Handle(ctx, handler.Request{
			PathParameters: req.PathParameters,
			RequestID:      requestID,
		})

		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	})
}
