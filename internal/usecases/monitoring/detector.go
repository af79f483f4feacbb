package monitoring

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// janela de histórico examinada por ciclo. Limita o cálculo de downtime em
// quedas muito longas, mas cobre com folga o limiar de falha contínua
const evaluationLookback = 24 * time.Hour

// Detector implementa OutageDetector. Todo o estado vem dos registros
// persistidos: reinícios do processo não perdem quedas em andamento nem
// reenviam alertas já entregues
type Detector struct {
	cfg             *config.Config
	healthRepo      repository.HealthRecordRepository
	preferenceRepo  repository.MonitoringPreferenceRepository
	integrationRepo repository.IntegrationRepository
	notifier        Notifier
}

func NewDetector(
	cfg *config.Config,
	healthRepo repository.HealthRecordRepository,
	preferenceRepo repository.MonitoringPreferenceRepository,
	integrationRepo repository.IntegrationRepository,
	notifier Notifier,
) *Detector {
	return &Detector{
		cfg:             cfg,
		healthRepo:      healthRepo,
		preferenceRepo:  preferenceRepo,
		integrationRepo: integrationRepo,
		notifier:        notifier,
	}
}

// Evaluate examina o histórico de cada serviço alertável, confirma quedas
// sustentadas e recuperações, aplica preferências e cooldown, e despacha no
// máximo um lote de notificações. Retorna as transições efetivamente enviadas
func (d *Detector) Evaluate(ctx context.Context) ([]*domain.AlertTransition, error) {
	now := time.Now()

	services, err := d.alertableServices()
	if err != nil {
		return nil, err
	}

	transitions := make([]*domain.AlertTransition, 0)
	for _, serviceName := range services {
		records, err := d.healthRepo.GetByServiceSince(serviceName, now.Add(-evaluationLookback))
		if err != nil {
			logrus.WithError(err).WithField("service", serviceName).Error("Erro ao carregar histórico de saúde")
			continue
		}

		transition := detectTransition(serviceName, records, d.cfg.HealthMonitor.ContinuousFailure)
		if transition == nil {
			continue
		}

		if !d.anySubscriber(transition) {
			logrus.WithFields(logrus.Fields{
				"service": serviceName,
				"kind":    transition.Kind,
			}).Debug("Transição detectada sem assinantes, alerta descartado")
			continue
		}

		transitions = append(transitions, transition)
	}

	if len(transitions) == 0 {
		return nil, nil
	}

	// Cooldown global entre lotes, derivado dos registros persistidos. As
	// transições seguem pendentes no histórico e voltam no próximo ciclo
	lastSentAt, err := d.healthRepo.GetLastAlertSentAt()
	if err != nil {
		return nil, err
	}
	if lastSentAt != nil && now.Sub(*lastSentAt) < d.cfg.HealthMonitor.AlertCooldown {
		logrus.WithFields(logrus.Fields{
			"last_sent_at": lastSentAt.Format(time.RFC3339),
			"pending":      len(transitions),
		}).Info("Cooldown de alertas ativo, lote adiado")
		return nil, nil
	}

	if err := d.notifier.SendBatch(ctx, transitions); err != nil {
		// Sem marcação: o lote inteiro será reavaliado no próximo ciclo
		logrus.WithError(err).Error("Erro ao enviar lote de alertas")
		return nil, err
	}

	recordIDs := make([]string, 0)
	for _, transition := range transitions {
		recordIDs = append(recordIDs, transition.RecordIDs...)
	}
	if err := d.healthRepo.MarkAlertSent(recordIDs); err != nil {
		return nil, err
	}

	logrus.WithField("transitions", len(transitions)).Info("Lote de alertas de saúde enviado")

	return transitions, nil
}

// alertableServices monta o conjunto de serviços elegíveis a alerta: os
// serviços fixos do sistema mais as plataformas com alguma integração ativa
func (d *Detector) alertableServices() ([]string, error) {
	services := []string{ServiceAPI, ServiceDatabase, ServiceScheduler}

	platforms, err := d.integrationRepo.ListConnectedPlatforms()
	if err != nil {
		return nil, err
	}
	for _, platform := range platforms {
		services = append(services, PlatformServiceName(platform))
	}

	return services, nil
}

// anySubscriber indica se algum usuário optou por receber este tipo de alerta
func (d *Detector) anySubscriber(transition *domain.AlertTransition) bool {
	preferences, err := d.preferenceRepo.ListByService(transition.ServiceName)
	if err != nil {
		logrus.WithError(err).WithField("service", transition.ServiceName).Error("Erro ao carregar preferências de monitoramento")
		return false
	}

	for _, preference := range preferences {
		if transition.Kind == domain.AlertKindDown && preference.NotifyOnDown {
			return true
		}
		if transition.Kind == domain.AlertKindRecovered && preference.NotifyOnRecovery {
			return true
		}
	}

	return false
}

// detectTransition examina as observações de um serviço (ordenadas da mais
// antiga para a mais recente) e decide se há uma transição alertável.
//
// Queda: a sequência contígua de observações não-saudáveis no fim do
// histórico precisa ter ao menos duas amostras, cobrir o limiar de falha
// contínua e não ter sido alertada. Um pico isolado nunca dispara.
// Degradação preserva a sequência, mas sozinha não a abre: a observação
// mais recente precisa ser unhealthy.
//
// Recuperação: a primeira observação healthy após qualquer sequência de
// falha dispara de imediato, com o downtime medido do início da sequência
func detectTransition(serviceName string, records []*domain.HealthRecord, failureThreshold time.Duration) *domain.AlertTransition {
	if len(records) == 0 {
		return nil
	}

	latest := records[len(records)-1]

	if latest.Status == domain.HealthStatusUnhealthy {
		runStart := len(records) - 1
		for runStart > 0 && !records[runStart-1].Status.IsHealthy() {
			runStart--
		}

		run := records[runStart:]
		if len(run) < 2 {
			return nil
		}
		if latest.CheckedAt.Sub(run[0].CheckedAt) < failureThreshold {
			return nil
		}
		for _, record := range run {
			if record.AlertSent {
				return nil
			}
		}

		previous := domain.HealthStatusHealthy
		if runStart > 0 {
			previous = records[runStart-1].Status
		}

		recordIDs := make([]string, 0, len(run))
		for _, record := range run {
			recordIDs = append(recordIDs, record.ID)
		}

		return &domain.AlertTransition{
			ServiceName:    serviceName,
			Kind:           domain.AlertKindDown,
			PreviousStatus: previous,
			CurrentStatus:  latest.Status,
			Message:        latest.Message,
			DetectedAt:     latest.CheckedAt,
			RecordIDs:      recordIDs,
		}
	}

	if !latest.Status.IsHealthy() {
		return nil
	}

	// Recuperação: recua até a primeira observação healthy após a última
	// sequência de falha
	firstHealthy := len(records) - 1
	for firstHealthy > 0 && records[firstHealthy-1].Status.IsHealthy() {
		firstHealthy--
	}
	if firstHealthy == 0 {
		return nil
	}
	if records[firstHealthy].AlertSent {
		// Recuperação já notificada
		return nil
	}

	// A recuperação dispara mesmo quando a queda não chegou a ser alertada
	// (debounce curto, cooldown, sem assinantes)
	runEnd := firstHealthy - 1
	runStart := runEnd
	for runStart > 0 && !records[runStart-1].Status.IsHealthy() {
		runStart--
	}

	recovery := records[firstHealthy]

	return &domain.AlertTransition{
		ServiceName:    serviceName,
		Kind:           domain.AlertKindRecovered,
		PreviousStatus: records[runEnd].Status,
		CurrentStatus:  recovery.Status,
		Downtime:       recovery.CheckedAt.Sub(records[runStart].CheckedAt),
		DetectedAt:     recovery.CheckedAt,
		RecordIDs:      []string{recovery.ID},
	}
}
