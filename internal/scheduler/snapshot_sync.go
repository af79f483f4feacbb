package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/usecases/aggregating"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SnapshotSyncService gerencia o agendamento e execução da sincronização de
// snapshots de todas as plataformas conectadas
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	integrationRepo     repository.IntegrationRepository
	syncer              aggregating.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncMutex       sync.RWMutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	integrationRepo repository.IntegrationRepository,
	syncer aggregating.Syncer,
	appConfig *config.Config,
) *SnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		integrationRepo: integrationRepo,
		syncer:          syncer,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	// Agendar a sincronização de snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClients(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllClients sincroniza os snapshots de todos os clientes com alguma
// integração conectada
func (s *SnapshotSyncService) syncAllClients(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.lastSyncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todos os clientes")

	clientIDs, err := s.integrationRepo.ListConnectedClientIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de clientes para sincronização de snapshots")
		return
	}

	if len(clientIDs) == 0 {
		logrus.Info("Nenhum cliente com integração conectada encontrado")
		return
	}

	logrus.WithField("clients", len(clientIDs)).Info("Clientes encontrados para sincronização de snapshots")

	s.processClients(ctx, clientIDs)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  len(clientIDs),
	}).Info("Sincronização de snapshots concluída")

	s.lastSyncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncMutex.Unlock()
}

// processClients sincroniza os clientes com concorrência limitada
func (s *SnapshotSyncService) processClients(ctx context.Context, clientIDs []string) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, clientID := range clientIDs {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(clientID string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processClient(ctx, clientID)

			// Aguardar antes da próxima requisição para evitar sobrecarga nas plataformas
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(clientID)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processClient sincroniza os snapshots de um único cliente
func (s *SnapshotSyncService) processClient(ctx context.Context, clientID string) {
	logrus.WithField("client_id", clientID).Info("Sincronizando snapshots do cliente")

	result, err := s.syncer.SyncClient(ctx, clientID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"error":     err.Error(),
		}).Error("Erro ao sincronizar snapshots do cliente")
		return
	}

	logrus.WithFields(logrus.Fields{
		"client_id": clientID,
		"synced":    len(result.Synced),
		"failed":    len(result.Failed),
	}).Info("Snapshots do cliente sincronizados")

	for _, fetchErr := range result.Failed {
		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  fetchErr.Platform,
			"error":     fetchErr.Message,
		}).Warn("Plataforma falhou durante a sincronização, snapshot anterior preservado")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllClients(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.lastSyncMutex.RLock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.lastSyncMutex.RUnlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
