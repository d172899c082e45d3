// Package cmd wires the corral CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harnessline/corral/customer"
	"github.com/harnessline/corral/internal/config"
	"github.com/harnessline/corral/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "corral",
	Short: "Customer store CLI",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, builds the DynamoDB client and returns the
// wired repository plus a logger.
func setup(ctx context.Context) (*zap.Logger, *customer.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load aws config: %w", err)
	}

	repo := customer.New(dynamodb.NewFromConfig(awsCfg), customer.Config{
		CustomerTable: cfg.CustomerTable,
		CommonTable:   cfg.CommonTable,
	})

	return log, repo, nil
}
