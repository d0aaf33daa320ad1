package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
	Activity  ActivityConfigs `toml:"activity"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	LogLevel string `toml:"log_level"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host         string        `toml:"host"`
	Port         string        `toml:"port"`
	AllowCORS    []string      `toml:"allow_cors"`
	DefaultLimit int           `toml:"default_limit"`
	MaxLimit     int           `toml:"max_limit"`
	CloseTimeout time.Duration `toml:"close_timeout"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type ActivityConfigs struct {
	// MaxUpdateRetry bounds the number of times a snapshot update is retried
	// after a version conflict before the request is surfaced as transient
	// failure.
	MaxUpdateRetry int `toml:"max_update_retry"`
}
