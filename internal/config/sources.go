package config

import "time"

type DatasetSource string

const (
	DatasetSourceCSV      DatasetSource = "csv"
	DatasetSourcePostgres DatasetSource = "postgres"
)

type Dataset struct {
	Source DatasetSource `env:"DATASET_SOURCE" envDefault:"csv"`
	Path   string        `env:"DATASET_PATH" envDefault:"Cleaned_data.csv"`
	Table  string        `env:"DATASET_TABLE" envDefault:"listings"`
}

type ModelSource string

const (
	ModelSourceFile  ModelSource = "file"
	ModelSourceRedis ModelSource = "redis"
	ModelSourceHTTP  ModelSource = "http"
)

type Model struct {
	Source       ModelSource   `env:"MODEL_SOURCE" envDefault:"file"`
	Path         string        `env:"MODEL_PATH" envDefault:"model.json"`
	URL          string        `env:"MODEL_URL"`
	RedisKey     string        `env:"MODEL_REDIS_KEY" envDefault:"house-price:model"`
	FetchTimeout time.Duration `env:"MODEL_FETCH_TIMEOUT" envDefault:"30s"`
}
