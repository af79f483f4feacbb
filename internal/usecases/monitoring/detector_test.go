package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/poconverto/analytics-engine-api/infrastructure/repository/mocks"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	monitoringmocks "github.com/poconverto/analytics-engine-api/internal/usecases/monitoring/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func record(id string, status domain.HealthStatus, offset time.Duration, alertSent bool) *domain.HealthRecord {
	return &domain.HealthRecord{
		ID:          id,
		ServiceName: ServiceDatabase,
		Status:      status,
		AlertSent:   alertSent,
		CheckedAt:   baseTime.Add(offset),
	}
}

func TestDetectTransition(t *testing.T) {
	const threshold = 5 * time.Minute

	tests := []struct {
		name     string
		records  []*domain.HealthRecord
		validate func(t *testing.T, transition *domain.AlertTransition)
	}{
		{
			name:    "Histórico vazio não produz transição",
			records: nil,
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Pico isolado de falha não dispara",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusHealthy, 0, false),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Falha sustentada cobrindo o limiar dispara a queda",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusHealthy, 0, false),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, false),
				record("r3", domain.HealthStatusUnhealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindDown, transition.Kind)
				assert.Equal(t, domain.HealthStatusHealthy, transition.PreviousStatus)
				assert.Equal(t, domain.HealthStatusUnhealthy, transition.CurrentStatus)
				assert.Equal(t, []string{"r2", "r3"}, transition.RecordIDs)
			},
		},
		{
			name: "Falha sustentada abaixo do limiar não dispara",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, false),
				record("r2", domain.HealthStatusUnhealthy, 3*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Queda já alertada não dispara de novo",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, true),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, false),
				record("r3", domain.HealthStatusUnhealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Degradação preserva a sequência de falha",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, false),
				record("r2", domain.HealthStatusDegraded, 5*time.Minute, false),
				record("r3", domain.HealthStatusUnhealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindDown, transition.Kind)
				assert.Equal(t, []string{"r1", "r2", "r3"}, transition.RecordIDs)
			},
		},
		{
			name: "Degradação sustentada sozinha não abre queda",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusDegraded, 0, false),
				record("r2", domain.HealthStatusDegraded, 5*time.Minute, false),
				record("r3", domain.HealthStatusDegraded, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Recuperação de queda alertada dispara com o downtime da sequência",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, true),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, true),
				record("r3", domain.HealthStatusHealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindRecovered, transition.Kind)
				assert.Equal(t, 10*time.Minute, transition.Downtime)
				assert.Equal(t, []string{"r3"}, transition.RecordIDs)
			},
		},
		{
			name: "Recuperação dispara mesmo de queda não alertada",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, false),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, false),
				record("r3", domain.HealthStatusHealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindRecovered, transition.Kind)
				assert.Equal(t, 10*time.Minute, transition.Downtime)
				assert.Equal(t, []string{"r3"}, transition.RecordIDs)
			},
		},
		{
			name: "Pico isolado seguido de healthy dispara recuperação",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusHealthy, 0, false),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, false),
				record("r3", domain.HealthStatusHealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindRecovered, transition.Kind)
				assert.Equal(t, 5*time.Minute, transition.Downtime)
			},
		},
		{
			name: "Saída de degradação também conta como recuperação",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, false),
				record("r2", domain.HealthStatusDegraded, 5*time.Minute, false),
				record("r3", domain.HealthStatusHealthy, 10*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.NotNil(t, transition)
				assert.Equal(t, domain.AlertKindRecovered, transition.Kind)
				assert.Equal(t, domain.HealthStatusDegraded, transition.PreviousStatus)
				assert.Equal(t, 10*time.Minute, transition.Downtime)
			},
		},
		{
			name: "Recuperação já notificada não repete",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusUnhealthy, 0, true),
				record("r2", domain.HealthStatusUnhealthy, 5*time.Minute, true),
				record("r3", domain.HealthStatusHealthy, 10*time.Minute, true),
				record("r4", domain.HealthStatusHealthy, 15*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
		{
			name: "Serviço sempre saudável não produz transição",
			records: []*domain.HealthRecord{
				record("r1", domain.HealthStatusHealthy, 0, false),
				record("r2", domain.HealthStatusHealthy, 5*time.Minute, false),
			},
			validate: func(t *testing.T, transition *domain.AlertTransition) {
				assert.Nil(t, transition)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, detectTransition(ServiceDatabase, tt.records, threshold))
		})
	}
}

func detectorTestConfig() *config.Config {
	return &config.Config{
		HealthMonitor: config.HealthMonitor{
			ContinuousFailure: 5 * time.Minute,
			AlertCooldown:     15 * time.Minute,
		},
	}
}

// failingRun monta uma queda sustentada recente, dentro da janela de avaliação
func failingRun() []*domain.HealthRecord {
	now := time.Now()
	return []*domain.HealthRecord{
		{ID: "h1", ServiceName: ServiceDatabase, Status: domain.HealthStatusUnhealthy, CheckedAt: now.Add(-10 * time.Minute)},
		{ID: "h2", ServiceName: ServiceDatabase, Status: domain.HealthStatusUnhealthy, CheckedAt: now.Add(-5 * time.Minute)},
		{ID: "h3", ServiceName: ServiceDatabase, Status: domain.HealthStatusUnhealthy, CheckedAt: now},
	}
}

func TestDetector_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(healthRepo *mocks.MockHealthRecordRepository, preferenceRepo *mocks.MockMonitoringPreferenceRepository, integrationRepo *mocks.MockIntegrationRepository, notifier *monitoringmocks.MockNotifier)
		validate func(t *testing.T, transitions []*domain.AlertTransition, err error)
	}{
		{
			name: "Queda confirmada com assinante é enviada e marcada",
			setup: func(healthRepo *mocks.MockHealthRecordRepository, preferenceRepo *mocks.MockMonitoringPreferenceRepository, integrationRepo *mocks.MockIntegrationRepository, notifier *monitoringmocks.MockNotifier) {
				integrationRepo.EXPECT().ListConnectedPlatforms().Return([]domain.Platform{}, nil)

				healthRepo.EXPECT().GetByServiceSince(ServiceAPI, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceDatabase, gomock.Any()).Return(failingRun(), nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceScheduler, gomock.Any()).Return(nil, nil)

				preferenceRepo.EXPECT().ListByService(ServiceDatabase).Return([]*domain.MonitoringPreference{
					{UserID: 1, ServiceName: ServiceDatabase, NotifyOnDown: true},
				}, nil)

				healthRepo.EXPECT().GetLastAlertSentAt().Return(nil, nil)
				notifier.EXPECT().SendBatch(gomock.Any(), gomock.Any()).Return(nil)
				healthRepo.EXPECT().MarkAlertSent([]string{"h1", "h2", "h3"}).Return(nil)
			},
			validate: func(t *testing.T, transitions []*domain.AlertTransition, err error) {
				assert.NoError(t, err)
				assert.Len(t, transitions, 1)
				assert.Equal(t, ServiceDatabase, transitions[0].ServiceName)
				assert.Equal(t, domain.AlertKindDown, transitions[0].Kind)
			},
		},
		{
			name: "Cooldown ativo adia o lote sem enviar nada",
			setup: func(healthRepo *mocks.MockHealthRecordRepository, preferenceRepo *mocks.MockMonitoringPreferenceRepository, integrationRepo *mocks.MockIntegrationRepository, notifier *monitoringmocks.MockNotifier) {
				integrationRepo.EXPECT().ListConnectedPlatforms().Return([]domain.Platform{}, nil)

				healthRepo.EXPECT().GetByServiceSince(ServiceAPI, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceDatabase, gomock.Any()).Return(failingRun(), nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceScheduler, gomock.Any()).Return(nil, nil)

				preferenceRepo.EXPECT().ListByService(ServiceDatabase).Return([]*domain.MonitoringPreference{
					{UserID: 1, ServiceName: ServiceDatabase, NotifyOnDown: true},
				}, nil)

				lastSent := time.Now().Add(-1 * time.Minute)
				healthRepo.EXPECT().GetLastAlertSentAt().Return(&lastSent, nil)
				// Nenhuma expectativa de SendBatch nem MarkAlertSent
			},
			validate: func(t *testing.T, transitions []*domain.AlertTransition, err error) {
				assert.NoError(t, err)
				assert.Nil(t, transitions)
			},
		},
		{
			name: "Queda sem assinantes é descartada",
			setup: func(healthRepo *mocks.MockHealthRecordRepository, preferenceRepo *mocks.MockMonitoringPreferenceRepository, integrationRepo *mocks.MockIntegrationRepository, notifier *monitoringmocks.MockNotifier) {
				integrationRepo.EXPECT().ListConnectedPlatforms().Return([]domain.Platform{}, nil)

				healthRepo.EXPECT().GetByServiceSince(ServiceAPI, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceDatabase, gomock.Any()).Return(failingRun(), nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceScheduler, gomock.Any()).Return(nil, nil)

				preferenceRepo.EXPECT().ListByService(ServiceDatabase).Return([]*domain.MonitoringPreference{}, nil)
			},
			validate: func(t *testing.T, transitions []*domain.AlertTransition, err error) {
				assert.NoError(t, err)
				assert.Nil(t, transitions)
			},
		},
		{
			name: "Plataformas conectadas entram no conjunto alertável",
			setup: func(healthRepo *mocks.MockHealthRecordRepository, preferenceRepo *mocks.MockMonitoringPreferenceRepository, integrationRepo *mocks.MockIntegrationRepository, notifier *monitoringmocks.MockNotifier) {
				integrationRepo.EXPECT().ListConnectedPlatforms().Return([]domain.Platform{domain.PlatformAdsNetworkA}, nil)

				healthRepo.EXPECT().GetByServiceSince(ServiceAPI, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceDatabase, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(ServiceScheduler, gomock.Any()).Return(nil, nil)
				healthRepo.EXPECT().GetByServiceSince(PlatformServiceName(domain.PlatformAdsNetworkA), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, transitions []*domain.AlertTransition, err error) {
				assert.NoError(t, err)
				assert.Nil(t, transitions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			healthRepo := mocks.NewMockHealthRecordRepository(ctrl)
			preferenceRepo := mocks.NewMockMonitoringPreferenceRepository(ctrl)
			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			notifier := monitoringmocks.NewMockNotifier(ctrl)

			tt.setup(healthRepo, preferenceRepo, integrationRepo, notifier)

			detector := NewDetector(detectorTestConfig(), healthRepo, preferenceRepo, integrationRepo, notifier)

			transitions, err := detector.Evaluate(context.Background())
			tt.validate(t, transitions, err)
		})
	}
}
