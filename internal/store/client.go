package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ModeLive selects the production endpoint. Any other value of the
// mode flag (including unset) falls back to DynamoDB Local.
const ModeLive = "live"

const (
	liveRegion    = "eu-west-2"
	localRegion   = "us-east-1"
	localEndpoint = "http://localhost:8000"
)

type clientConfig struct {
	region      string
	endpoint    string // empty means the SDK default for the region
	staticCreds bool
}

func configFor(mode string) clientConfig {
	if mode == ModeLive {
		return clientConfig{region: liveRegion}
	}
	return clientConfig{
		region:      localRegion,
		endpoint:    localEndpoint,
		staticCreds: true,
	}
}

// NewClient builds the DynamoDB client for the given mode flag. Call
// it once at process start and share the result: the client is safe
// for concurrent use and holds no per-request state. SDK-internal
// retries are disabled; retrying belongs to the WithRetry wrapper.
func NewClient(ctx context.Context, mode string) (*dynamodb.Client, error) {
	cc := configFor(mode)

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cc.region),
	}
	if cc.endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(_, _ string, _ ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					PartitionID:       "aws",
					URL:               cc.endpoint,
					SigningRegion:     cc.region,
					Source:            aws.EndpointSourceCustom,
					HostnameImmutable: true,
				}, nil
			})))
	}
	if cc.staticCreds {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.Retryer = aws.NopRetryer{}
	}), nil
}
