package database

import (
	"context"
	"fmt"

	"storefront/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// ConnectDynamoDB creates a DynamoDB client for the products table.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires
// them, so static ones are always set. An empty Endpoint means the real
// regional endpoint.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	log.Info().Str("component", "dynamodb").Str("region", cfg.Region).Str("endpoint", cfg.Endpoint).Msg("dynamodb client ready")
	return client, nil
}

func NewAWSConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
