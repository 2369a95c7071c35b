package database

import (
	"context"
	"testing"

	"storefront/internal/config"
)

func TestNewAWSConfig(t *testing.T) {
	cfg := config.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	}

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", awsCfg.Region)
	}

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_WithEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint to be set, got %v", got)
	}
}
