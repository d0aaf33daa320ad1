package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fitstride-lab/backend/internal/middleware"
	"github.com/fitstride-lab/backend/pkg/prometheus"
	"github.com/fitstride-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadBadgeManager()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	notifyCtx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-notifyCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.configs.ApiServer.CloseTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("Cannot shutdown server gracefully: %v", err)
		}
	}()

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authRouter.Before(authVerifier.Middleware())
	{
		// Activity API
		router.POST(authRouter, "/recordActivity", s.activityDomain.Record)
		router.GET(authRouter, "/getListActivity", s.activityDomain.GetList)

		// Statistic API
		router.GET(authRouter, "/getStatistics", s.statisticDomain.GetStatistics)
		router.GET(authRouter, "/getAchievements", s.statisticDomain.GetAchievements)
		router.GET(authRouter, "/getActivityCalendar", s.statisticDomain.GetActivityCalendar)
	}

	// Public API.
	router.GET(s.router, "/getLeaderBoard", s.statisticDomain.GetLeaderBoard)

	s.router.Handle("/metrics", prometheus.NewHandler())
}
