package config

import (
	"fmt"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"BOARD_POSTGRES_HOST" env-default:"0.0.0.0"`
	Port     int    `yaml:"port" env:"BOARD_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"BOARD_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"BOARD_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"BOARD_POSTGRES_DB" env-default:"gumboard"`
	MinConn  int    `yaml:"min_conn" env:"BOARD_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"BOARD_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
