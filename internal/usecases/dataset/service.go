package dataset

import (
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
)

// SnapshotInfo descreve o estado atual do cache para o endpoint de status
type SnapshotInfo struct {
	ID        string    `json:"id"`
	FetchedAt time.Time `json:"fetchedAt"`
	RowCount  int       `json:"rowCount"`
	Stale     bool      `json:"stale"`
	Expired   bool      `json:"expired"`
}

// DatasetService é a camada de fetch-and-cache em frente à planilha remota.
// Existe exatamente um snapshot por processo; os consumidores não devem
// modificar a fatia de registros recebida.
type DatasetService interface {
	// GetTable retorna a tabela de vendas atual, buscando na fonte apenas
	// quando o snapshot em cache expirou (ou ainda não existe)
	GetTable(ctx context.Context) ([]domain.SalesRecord, error)

	// Refresh ignora o TTL e busca a tabela na fonte. Erros sempre propagam
	// e o snapshot anterior permanece intacto em caso de falha
	Refresh(ctx context.Context) (*SnapshotInfo, error)

	// Invalidate descarta o snapshot atual; a próxima leitura busca na fonte
	Invalidate()

	// Status retorna os metadados do snapshot atual, ou nil se não há snapshot
	Status() *SnapshotInfo
}

// snapshot é a entrada única do cache: tabela completa + instante da busca
type snapshot struct {
	id        string
	records   []domain.SalesRecord
	fetchedAt time.Time
	stale     bool
}

type Service struct {
	cfg           *config.Config
	sheetsService sheets.SheetsIntegrator

	// mutex serializa a sequência check-and-refresh entre sessões concorrentes
	mutex    sync.Mutex
	snapshot *snapshot

	// now é substituível nos testes para controlar a expiração do TTL
	now func() time.Time
}

// NewService cria uma nova instância do serviço de dataset
func NewService(cfg *config.Config, sheetsService sheets.SheetsIntegrator) DatasetService {
	return &Service{
		cfg:           cfg,
		sheetsService: sheetsService,
		now:           time.Now,
	}
}

func (s *Service) GetTable(ctx context.Context) ([]domain.SalesRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Caminho quente: snapshot presente e dentro da validade, nenhuma
	// chamada de rede é feita
	if s.snapshot != nil && !s.expiredLocked() {
		return s.snapshot.records, nil
	}

	fresh, err := s.fetchLocked(ctx)
	if err != nil {
		// Política de fallback: com um snapshot anterior disponível, servimos
		// a tabela desatualizada e registramos a falha; o erro só propaga
		// quando não há nada para servir. Ver DESIGN.md.
		if s.snapshot != nil {
			s.snapshot.stale = true
			logrus.WithError(err).WithFields(logrus.Fields{
				"snapshot_id": s.snapshot.id,
				"fetched_at":  s.snapshot.fetchedAt,
			}).Warn("Falha ao atualizar o dataset, servindo snapshot desatualizado")
			return s.snapshot.records, nil
		}
		return nil, err
	}

	s.snapshot = fresh
	return fresh.records, nil
}

func (s *Service) Refresh(ctx context.Context) (*SnapshotInfo, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	fresh, err := s.fetchLocked(ctx)
	if err != nil {
		return nil, err
	}

	s.snapshot = fresh

	logrus.WithFields(logrus.Fields{
		"snapshot_id": fresh.id,
		"row_count":   len(fresh.records),
	}).Info("Dataset atualizado por solicitação explícita")

	return s.infoLocked(), nil
}

func (s *Service) Invalidate() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.snapshot = nil
}

func (s *Service) Status() *SnapshotInfo {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.infoLocked()
}

// fetchLocked busca e converte a tabela remota. Chamador segura o mutex.
func (s *Service) fetchLocked(ctx context.Context) (*snapshot, error) {
	records, err := s.sheetsService.FetchSalesTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar a tabela de vendas")
	}

	return &snapshot{
		id:        newSnapshotID(),
		records:   records,
		fetchedAt: s.now(),
	}, nil
}

func (s *Service) expiredLocked() bool {
	return s.now().Sub(s.snapshot.fetchedAt) > s.cfg.Dataset.CacheTTL
}

func (s *Service) infoLocked() *SnapshotInfo {
	if s.snapshot == nil {
		return nil
	}

	return &SnapshotInfo{
		ID:        s.snapshot.id,
		FetchedAt: s.snapshot.fetchedAt,
		RowCount:  len(s.snapshot.records),
		Stale:     s.snapshot.stale,
		Expired:   s.expiredLocked(),
	}
}

const snapshotIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func newSnapshotID() string {
	id, err := gonanoid.Generate(snapshotIDCharacters, 6)
	if err != nil {
		// gonanoid só falha se o gerador de aleatoriedade do SO falhar
		return "unknown"
	}
	return id
}
