package config

type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"2"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"0"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"2"`
}
