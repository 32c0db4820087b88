package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
)

// DatasetRefreshConfig representa a configuração do agendador de atualização do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService pré-aquece o cache do dataset em background para que
// o primeiro acesso do dia não pague o custo do fetch. Desabilitado por
// padrão: o comportamento normal é dirigido por requisição.
type DatasetRefreshService struct {
	scheduler          *gocron.Scheduler
	config             DatasetRefreshConfig
	datasetService     dataset.DatasetService
	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewDatasetRefreshService cria uma nova instância do serviço de atualização do dataset
func NewDatasetRefreshService(
	datasetService dataset.DatasetService,
	appConfig *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		datasetService: datasetService,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização do dataset em background desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset executa uma atualização completa do snapshot em cache
func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do dataset já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRunCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	info, err := s.datasetService.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar o dataset em background")
		return
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": info.ID,
		"row_count":   info.RowCount,
		"duration":    time.Since(s.lastRunStartedAt).String(),
	}).Info("Dataset atualizado em background com sucesso")
}
