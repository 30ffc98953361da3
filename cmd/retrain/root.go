package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	source       string
	dataPath     string
	pgDSN        string
	table        string
	out          string
	publishRedis bool
	redisAddr    string
	redisKey     string
	timeout      time.Duration
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "retrain",
		Short: "Fit the house price model and write the artifact",
		Long: `retrain reads the cleaned listings dataset (location, total_sqft, bath, bhk, price),
fits an ordinary least squares model with one-hot encoded locations and writes
the JSON artifact the server loads at startup.

Examples:
  retrain --data Cleaned_data.csv --out model.json
  retrain --source postgres --pg-dsn postgres://... --table listings --out model.json
  retrain --data Cleaned_data.csv --publish-redis --redis-addr localhost:6379`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("newLogger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			return train(cmd.Context(), opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", "csv", "dataset source (csv, postgres)")
	flags.StringVar(&opts.dataPath, "data", "Cleaned_data.csv", "path to the cleaned CSV dataset")
	flags.StringVar(&opts.pgDSN, "pg-dsn", "", "postgres DSN for --source postgres")
	flags.StringVar(&opts.table, "table", "listings", "postgres table with listings")
	flags.StringVarP(&opts.out, "out", "o", "model.json", "where to write the artifact")
	flags.BoolVar(&opts.publishRedis, "publish-redis", false, "also store the artifact in redis")
	flags.StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address for --publish-redis")
	flags.StringVar(&opts.redisKey, "redis-key", "house-price:model", "redis key for --publish-redis")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Minute, "timeout for the whole run")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug output")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return cfg.Build()
}
