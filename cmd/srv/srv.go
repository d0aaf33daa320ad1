package main

import (
	"context"
	"net/http"

	"github.com/fitstride-lab/backend/config"
	"github.com/fitstride-lab/backend/internal/domain"
	"github.com/fitstride-lab/backend/internal/domain/badge"
	"github.com/fitstride-lab/backend/internal/domain/statistic"
	"github.com/fitstride-lab/backend/internal/repository"
	"github.com/fitstride-lab/backend/pkg/logger"
	"github.com/fitstride-lab/backend/pkg/router"
	"github.com/fitstride-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	userRepo      repository.UserRepository
	activityRepo  repository.ActivityRepository
	statisticRepo repository.StatisticRepository

	badgeManager *badge.Manager
	leaderboard  statistic.Leaderboard

	activityDomain  domain.ActivityDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}
