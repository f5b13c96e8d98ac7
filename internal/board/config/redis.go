package config

import (
	"fmt"
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"BOARD_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"BOARD_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"BOARD_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"BOARD_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"BOARD_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"BOARD_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"BOARD_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"BOARD_REDIS_POOL_SIZE" env-default:"10"`
	BoardTTL       time.Duration `yaml:"board_ttl" env:"BOARD_REDIS_BOARD_TTL" env-default:"5m"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
