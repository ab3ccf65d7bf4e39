package config

type CacheDriver string

const (
	CacheDriverMemory   CacheDriver = "memory"
	CacheDriverRedis    CacheDriver = "redis"
	CacheDriverPostgres CacheDriver = "postgres"
	CacheDriverSQLite   CacheDriver = "sqlite"
)

func (d CacheDriver) Valid() bool {
	switch d {
	case CacheDriverMemory, CacheDriverRedis, CacheDriverPostgres, CacheDriverSQLite:
		return true
	}

	return false
}

// Cache — хранилище профилей (реквизиты, флаг покупателя).
type Cache struct {
	Driver    CacheDriver `env:"CACHE_DRIVER" envDefault:"memory"`
	KeyPrefix string      `env:"CACHE_KEY_PREFIX" envDefault:"dealshell_user_"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"dealshell.db"`
}
