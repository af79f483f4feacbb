package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/pkg/errors"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/usecases/monitoring"
)

// HealthMonitorService orquestra o ciclo contínuo de monitoramento: sondagem,
// detecção de quedas e limpeza de retenção
type HealthMonitorService struct {
	scheduler       *gocron.Scheduler
	appConfig       *config.Config
	poller          monitoring.HealthPoller
	detector        monitoring.OutageDetector
	healthRepo      repository.HealthRecordRepository
	cycleRunning    bool
	cycleMutex      sync.Mutex
	lastCycleAt     time.Time
	lastCycleMutex  sync.RWMutex
	cyclesCompleted int64
}

// NewHealthMonitorService cria uma nova instância do serviço de monitoramento de saúde
func NewHealthMonitorService(
	poller monitoring.HealthPoller,
	detector monitoring.OutageDetector,
	healthRepo repository.HealthRecordRepository,
	appConfig *config.Config,
) *HealthMonitorService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"poll_interval":     appConfig.HealthMonitor.PollInterval.String(),
		"probe_timeout":     appConfig.HealthMonitor.ProbeTimeout.String(),
		"failure_threshold": appConfig.HealthMonitor.ContinuousFailure.String(),
		"alert_cooldown":    appConfig.HealthMonitor.AlertCooldown.String(),
		"retention_days":    appConfig.HealthMonitor.RetentionDays,
		"monitor_enabled":   appConfig.HealthMonitor.Enabled,
	}).Info("Configuração do monitor de saúde carregada")

	return &HealthMonitorService{
		scheduler:  scheduler,
		appConfig:  appConfig,
		poller:     poller,
		detector:   detector,
		healthRepo: healthRepo,
	}
}

// Start inicia o ciclo de monitoramento e a limpeza diária de retenção
func (s *HealthMonitorService) Start(ctx context.Context) error {
	if !s.appConfig.HealthMonitor.Enabled {
		logrus.Info("Monitor de saúde desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval", s.appConfig.HealthMonitor.PollInterval.String()).Info("Iniciando monitor de saúde")

	_, err := s.scheduler.Every(s.appConfig.HealthMonitor.PollInterval).Do(func() {
		s.runCycle(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de monitoramento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de saúde")
		s.scheduler.Stop()
	}()

	return nil
}

// runCycle executa um ciclo completo: sondagem de todos os serviços seguida
// da avaliação de quedas e recuperações
func (s *HealthMonitorService) runCycle(ctx context.Context) {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Debug("Ciclo de monitoramento já em andamento, ignorando")
		return
	}
	s.cycleRunning = true
	s.cycleMutex.Unlock()

	defer func() {
		s.cycleMutex.Lock()
		s.cycleRunning = false
		s.cycleMutex.Unlock()
	}()

	records, err := s.poller.PollAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro durante sondagem de saúde")
		return
	}

	transitions, err := s.detector.Evaluate(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro durante avaliação de quedas")
	}

	// Retenção aplicada ao fim de cada ciclo
	s.purgeOldRecords()

	s.lastCycleMutex.Lock()
	s.lastCycleAt = time.Now()
	s.cyclesCompleted++
	s.lastCycleMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"services":    len(records),
		"transitions": len(transitions),
	}).Debug("Ciclo de monitoramento concluído")
}

// purgeOldRecords remove registros de saúde além da janela de retenção
func (s *HealthMonitorService) purgeOldRecords() {
	deleted, err := s.healthRepo.DeleteOlderThan(s.appConfig.HealthMonitor.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar registros de saúde antigos")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.appConfig.HealthMonitor.RetentionDays,
		}).Info("Limpeza de retenção de registros de saúde concluída")
	}
}

// Heartbeat é a sondagem interna do agendador: saudável enquanto o último
// ciclo completou dentro de duas janelas de sondagem
func (s *HealthMonitorService) Heartbeat(_ context.Context) error {
	if !s.appConfig.HealthMonitor.Enabled {
		return nil
	}

	s.lastCycleMutex.RLock()
	lastCycleAt := s.lastCycleAt
	s.lastCycleMutex.RUnlock()

	if lastCycleAt.IsZero() {
		// Ainda aquecendo, primeiro ciclo não completou
		return nil
	}

	if time.Since(lastCycleAt) > 2*s.appConfig.HealthMonitor.PollInterval {
		return errors.Errorf("último ciclo de monitoramento há %s", time.Since(lastCycleAt).Round(time.Second))
	}

	return nil
}

// TriggerManualCycle executa imediatamente um ciclo de monitoramento
func (s *HealthMonitorService) TriggerManualCycle() {
	logrus.Info("Iniciando ciclo manual de monitoramento de saúde")
	go s.runCycle(context.Background())
}

// GetStatus retorna o status atual do monitor
func (s *HealthMonitorService) GetStatus() map[string]any {
	s.lastCycleMutex.RLock()
	defer s.lastCycleMutex.RUnlock()

	return map[string]any{
		"monitor_enabled":   s.appConfig.HealthMonitor.Enabled,
		"poll_interval":     s.appConfig.HealthMonitor.PollInterval.String(),
		"failure_threshold": s.appConfig.HealthMonitor.ContinuousFailure.String(),
		"alert_cooldown":    s.appConfig.HealthMonitor.AlertCooldown.String(),
		"retention_days":    s.appConfig.HealthMonitor.RetentionDays,
		"cycles_completed":  s.cyclesCompleted,
		"last_cycle_at":     s.lastCycleAt,
	}
}
