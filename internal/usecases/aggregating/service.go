package aggregating

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// resultado de uma chamada do fan-out; exatamente um dos campos é preenchido
type fetchResult struct {
	integration *domain.Integration
	metrics     *domain.PlatformMetrics
	fetchErr    *domain.FetchError
}

// Service implementa Aggregator e Syncer sobre os adapters de plataforma e
// o armazenamento de snapshots
type Service struct {
	cfg             *config.Config
	integrator      platforms.PlatformIntegrator
	integrationRepo repository.IntegrationRepository
	snapshotRepo    repository.SnapshotRepository
}

// NewService cria uma nova instância do serviço de agregação
func NewService(
	cfg *config.Config,
	integrator platforms.PlatformIntegrator,
	integrationRepo repository.IntegrationRepository,
	snapshotRepo repository.SnapshotRepository,
) CombinedAggregator {
	return &Service{
		cfg:             cfg,
		integrator:      integrator,
		integrationRepo: integrationRepo,
		snapshotRepo:    snapshotRepo,
	}
}

// GetOverview calcula o overview do cliente. Cache hit dentro da janela de
// frescor não dispara nenhuma chamada de adapter; no refresh, cada falha de
// plataforma degrada apenas a contribuição dela para "stale"
func (s *Service) GetOverview(ctx context.Context, clientID string, filters *domain.OverviewFilters) (*domain.Overview, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	integrations, err := s.integrationRepo.ListByClient(clientID, true)
	if err != nil {
		logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao buscar integrações do cliente")
		return nil, err
	}

	connected := make(map[domain.Platform]bool, len(integrations))
	for _, integration := range integrations {
		connected[integration.Platform] = true
	}

	now := time.Now()

	// Nenhuma plataforma conectada: overview zerado, não é erro
	if len(integrations) == 0 {
		overview := domain.ComputeOverview(clientID, nil, nil, now)
		overview.Filters = filters
		return overview, nil
	}

	// 1. Consultar o gate de cache, exceto quando force_refresh
	if !filters.ForceRefresh {
		snapshots, err := s.snapshotRepo.GetAllByClient(clientID)
		if err != nil {
			logrus.WithError(err).WithField("client_id", clientID).Warn("Erro ao ler snapshots do cache, forçando refresh")
		} else {
			current := filterByPlatforms(snapshots, connected)
			if oldest, ok := oldestUpdatedAt(current); ok && len(current) == len(integrations) &&
				isFresh(oldest, s.cfg.CacheGate.FreshnessWindow, now) {
				overview := domain.ComputeOverview(clientID, current, nil, now)
				overview.FromCache = true
				overview.Filters = filters
				return overview, nil
			}
		}
	}

	// 2. Fan-out para todas as plataformas conectadas
	results := s.fetchAll(ctx, clientID, integrations, filters)

	// 3. Persistir os sucessos; falhas deixam o snapshot anterior intacto
	failedBy := make(map[domain.Platform]bool)
	succeeded := 0
	for _, result := range results {
		if result.fetchErr != nil {
			failedBy[result.integration.Platform] = true
			continue
		}
		s.persistSnapshot(clientID, result, now)
		succeeded++
	}

	// 4. Reler todos os snapshots correntes (frescos + previamente bons)
	snapshots, err := s.snapshotRepo.GetAllByClient(clientID)
	if err != nil {
		logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao reler snapshots após o refresh")
		return nil, err
	}

	current := filterByPlatforms(snapshots, connected)

	// Erro duro apenas quando nada utilizável existe
	if len(current) == 0 && succeeded == 0 {
		return nil, ErrNoUsableData
	}

	staleBy := make(map[domain.Platform]bool)
	for _, snapshot := range current {
		if !isFresh(snapshot.UpdatedAt, s.cfg.CacheGate.FreshnessWindow, now) {
			staleBy[snapshot.Platform] = true
		}
	}

	overview := domain.ComputeOverview(clientID, current, staleBy, now)
	overview.Partial = overview.Partial || len(failedBy) > 0
	overview.Filters = filters

	return overview, nil
}

// GetPlatformMetrics serve o snapshot de uma única plataforma pelo mesmo
// gate de frescor do overview
func (s *Service) GetPlatformMetrics(ctx context.Context, clientID string, platform domain.Platform, filters *domain.OverviewFilters) (*domain.Snapshot, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	integration, err := s.integrationRepo.GetByClientAndPlatform(clientID, platform)
	if err != nil {
		return nil, err
	}

	if integration == nil || !integration.Connected {
		return nil, ErrNoConnectedIntegrations
	}

	now := time.Now()

	previous, err := s.snapshotRepo.Get(clientID, platform)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  platform,
		}).Warn("Erro ao ler snapshot do cache, forçando refresh")
	}

	if !filters.ForceRefresh && previous != nil && isFresh(previous.UpdatedAt, s.cfg.CacheGate.FreshnessWindow, now) {
		return previous, nil
	}

	metrics, fetchErr := s.integrator.FetchMetrics(ctx, clientID, platform, *filters.StartDate, *filters.EndDate)
	if fetchErr != nil {
		// Snapshot anterior permanece válido como "último bom conhecido"
		if previous != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": clientID,
				"platform":  platform,
				"error":     fetchErr.Message,
			}).Warn("Fetch falhou, servindo snapshot anterior")
			return previous, nil
		}
		return nil, fetchErr
	}

	result := &fetchResult{integration: integration, metrics: metrics}
	s.persistSnapshot(clientID, result, now)

	snapshot, err := s.snapshotRepo.Get(clientID, platform)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// SyncClient atualiza os snapshots de todas as plataformas conectadas do
// cliente. Idempotente: pode ser disparada pelo agendador ou manualmente
func (s *Service) SyncClient(ctx context.Context, clientID string) (*SyncResult, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	integrations, err := s.integrationRepo.ListByClient(clientID, true)
	if err != nil {
		return nil, err
	}

	if len(integrations) == 0 {
		return nil, ErrNoConnectedIntegrations
	}

	filters, err := normalizeFilters(nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := s.fetchAll(ctx, clientID, integrations, filters)

	syncResult := &SyncResult{
		ClientID: clientID,
		Synced:   make([]domain.Platform, 0, len(results)),
		Failed:   make([]*domain.FetchError, 0),
	}

	for _, result := range results {
		if result.fetchErr != nil {
			syncResult.Failed = append(syncResult.Failed, result.fetchErr)
			continue
		}
		s.persistSnapshot(clientID, result, now)
		syncResult.Synced = append(syncResult.Synced, result.integration.Platform)
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"synced":    len(syncResult.Synced),
		"failed":    len(syncResult.Failed),
	}).Info("Sincronização de snapshots do cliente concluída")

	return syncResult, nil
}

// fetchAll dispara uma goroutine por plataforma conectada e espera todas
// terminarem (sucesso ou FetchError), sem cancelamento entre irmãs: uma
// plataforma lenta ou quebrada não apaga os dados das saudáveis
func (s *Service) fetchAll(ctx context.Context, clientID string, integrations []*domain.Integration, filters *domain.OverviewFilters) []*fetchResult {
	results := make([]*fetchResult, 0, len(integrations))

	wg := sync.WaitGroup{}
	var mutex sync.Mutex

	for _, integration := range integrations {
		wg.Add(1)

		go func(integration *domain.Integration) {
			defer wg.Done()

			metrics, fetchErr := s.integrator.FetchMetrics(ctx, clientID, integration.Platform, *filters.StartDate, *filters.EndDate)

			mutex.Lock()
			results = append(results, &fetchResult{
				integration: integration,
				metrics:     metrics,
				fetchErr:    fetchErr,
			})
			mutex.Unlock()
		}(integration)
	}

	wg.Wait()

	return results
}

// persistSnapshot grava o snapshot de um fetch bem-sucedido e atualiza o
// last_synced_at da integração. Falhas de escrita são logadas e não
// corrompem a linha anterior (o upsert é atômico)
func (s *Service) persistSnapshot(clientID string, result *fetchResult, now time.Time) {
	snapshot := &domain.Snapshot{
		ClientID:     clientID,
		Platform:     result.integration.Platform,
		Payload:      result.metrics,
		Metrics:      result.metrics.Summarize(),
		SnapshotDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  result.integration.Platform,
		}).Error("Erro ao salvar snapshot no banco de dados")
		return
	}

	if err := s.integrationRepo.TouchLastSyncedAt(result.integration.ID, now); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"integration_id": result.integration.ID,
		}).Warn("Erro ao atualizar last_synced_at da integração")
	}
}

// normalizeFilters aplica o período padrão (últimos 30 dias) e valida a
// ordem das datas antes de qualquer chamada de rede
func normalizeFilters(filters *domain.OverviewFilters) (*domain.OverviewFilters, error) {
	if filters == nil {
		filters = &domain.OverviewFilters{}
	}

	if filters.EndDate == nil {
		end := time.Now()
		filters.EndDate = &end
	}

	if filters.StartDate == nil {
		start := filters.EndDate.AddDate(0, 0, -30)
		filters.StartDate = &start
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	return filters, nil
}

// filterByPlatforms restringe os snapshots ao conjunto de plataformas
// conectadas; snapshots de integrações removidas ficam fora do overview
func filterByPlatforms(snapshots []*domain.Snapshot, connected map[domain.Platform]bool) []*domain.Snapshot {
	filtered := make([]*domain.Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if connected[snapshot.Platform] {
			filtered = append(filtered, snapshot)
		}
	}
	return filtered
}
