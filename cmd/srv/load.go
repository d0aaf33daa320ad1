package main

import (
	"context"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fitstride-lab/backend/config"
	"github.com/fitstride-lab/backend/internal/domain"
	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/logger"
	"github.com/fitstride-lab/backend/pkg/xcontext"
	"github.com/fitstride-lab/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// loadConfig starts from defaults, overlays the TOML file named by
// CONFIG_FILE if one exists, and finally applies environment overrides for
// the values that differ per deployment.
func (s *srv) loadConfig() {
	configs := config.Configs{
		Env: "local",
		ApiServer: config.ServerConfigs{
			Host:         "localhost",
			Port:         "8080",
			AllowCORS:    []string{"http://localhost:3000"},
			DefaultLimit: 10,
			MaxLimit:     50,
			CloseTimeout: 30 * time.Second,
		},
		Database: config.DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "fitstride",
			User:     "root",
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Redis: config.RedisConfigs{
			Addr: "localhost:6379",
		},
		Activity: config.ActivityConfigs{
			MaxUpdateRetry: 5,
		},
	}

	if configFile := os.Getenv("CONFIG_FILE"); configFile != "" {
		if _, err := toml.DecodeFile(configFile, &configs); err != nil {
			panic(err)
		}
	}

	configs.Env = getEnv("ENV", configs.Env)
	configs.ApiServer.Port = getEnv("PORT", configs.ApiServer.Port)
	configs.Database.Host = getEnv("MYSQL_HOST", configs.Database.Host)
	configs.Database.User = getEnv("MYSQL_USER", configs.Database.User)
	configs.Database.Password = getEnv("MYSQL_PASSWORD", configs.Database.Password)
	configs.Auth.TokenSecret = getEnv("TOKEN_SECRET", configs.Auth.TokenSecret)
	configs.Redis.Addr = getEnv("REDIS_ADDR", configs.Redis.Addr)

	s.configs = &configs
	s.ctx = xcontext.WithConfigs(context.Background(), configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(), // data source name
		DefaultStringSize:         256,                                   // default size for string fields
		DisableDatetimePrecision:  true,                                  // disable datetime precision, which not supported before MySQL 5.6
		DontSupportRenameIndex:    true,                                  // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
		DontSupportRenameColumn:   true,                                  // `change` when rename column, rename column not supported before MySQL 8, MariaDB
		SkipInitializeWithVersion: false,                                 // auto configure based on currently MySQL version
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.statisticRepo = repository.NewStatisticRepository()
}

func (s *srv) loadBadgeManager() {
	s.badgeManager = badge.NewDefaultManager()
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.activityRepo, s.redisClient)
	s.activityDomain = domain.NewActivityDomain(
		s.activityRepo, s.statisticRepo, s.badgeManager, s.leaderboard)
	s.statisticDomain = domain.NewStatisticDomain(
		s.activityRepo, s.statisticRepo, s.userRepo, s.badgeManager, s.leaderboard)
}
