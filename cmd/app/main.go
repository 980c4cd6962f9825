package main

import (
	"context"
	"time"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/genesys"
	"webrtc-provisioner/internal/repository"
	"webrtc-provisioner/internal/usecase"

	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Токен
	tokens := genesys.NewTokenSource(genesys.LoginBaseURL(cfg.Environment), cfg)
	token, err := tokens.Token(ctx)
	if err != nil {
		logger.Fatalf("Could not obtain access token: %v", err)
	}
	logger.Info("Access token obtained")

	// API клиент
	client := genesys.NewClient(genesys.APIBaseURL(cfg.Environment), cfg, token, logger)

	// Репозитории
	userRepo := repository.NewUserRepository(client)
	phoneRepo := repository.NewPhoneRepository(client)
	stationRepo := repository.NewStationRepository(client)
	routingRepo := repository.NewRoutingRepository(client)

	// Use Cases
	provisionUC := usecase.NewProvisionUseCase(phoneRepo, stationRepo, routingRepo, cfg, logger)
	batchUC := usecase.NewBatchUseCase(userRepo, phoneRepo, stationRepo, routingRepo, provisionUC, cfg, logger)

	logger.Infof("Provisioning job started (%s)", time.Now().Format(time.RFC3339))

	summary, err := batchUC.Run(ctx)
	if err != nil {
		logger.Fatalf("Run aborted: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"ok":    summary.OK,
		"fail":  summary.Fail,
		"total": summary.Total,
	}).Info("DONE")
}
