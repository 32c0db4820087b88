package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/superstore-dashboard-api/internal/api"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
	"github.com/vfg2006/superstore-dashboard-api/internal/scheduler"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	// Camada de fetch-and-cache: uma entrada global com TTL em frente à planilha
	datasetService := dataset.NewService(cfg, sheetsIntegrator)

	insightService := insighting.NewService()

	// Agendador opcional de pré-aquecimento do cache
	datasetRefreshService := scheduler.NewDatasetRefreshService(datasetService, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	}

	server, err := api.New(cfg, datasetService, insightService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
