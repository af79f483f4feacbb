package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository/mocks"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	monitoringmocks "github.com/poconverto/analytics-engine-api/internal/usecases/monitoring/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func healthMonitorConfig() *config.Config {
	return &config.Config{
		HealthMonitor: config.HealthMonitor{
			Enabled:       true,
			PollInterval:  time.Minute,
			RetentionDays: 30,
		},
	}
}

func newHealthMonitorForTest(poller *monitoringmocks.MockHealthPoller, detector *monitoringmocks.MockOutageDetector, healthRepo *mocks.MockHealthRecordRepository) *HealthMonitorService {
	return &HealthMonitorService{
		appConfig:  healthMonitorConfig(),
		poller:     poller,
		detector:   detector,
		healthRepo: healthRepo,
	}
}

func TestHealthMonitorService_runCycle(t *testing.T) {
	t.Run("Ciclo completo: sondagem, avaliação e retenção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		poller := monitoringmocks.NewMockHealthPoller(ctrl)
		detector := monitoringmocks.NewMockOutageDetector(ctrl)
		healthRepo := mocks.NewMockHealthRecordRepository(ctrl)

		poller.EXPECT().PollAll(gomock.Any()).Return([]*domain.HealthRecord{
			{ServiceName: "database", Status: domain.HealthStatusHealthy},
		}, nil)
		detector.EXPECT().Evaluate(gomock.Any()).Return(nil, nil)
		healthRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)

		service := newHealthMonitorForTest(poller, detector, healthRepo)
		service.runCycle(context.Background())

		assert.False(t, service.lastCycleAt.IsZero())
		assert.Equal(t, int64(1), service.cyclesCompleted)
	})

	t.Run("Falha na sondagem aborta o ciclo antes da avaliação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		poller := monitoringmocks.NewMockHealthPoller(ctrl)
		detector := monitoringmocks.NewMockOutageDetector(ctrl)
		healthRepo := mocks.NewMockHealthRecordRepository(ctrl)

		poller.EXPECT().PollAll(gomock.Any()).Return(nil, errors.New("repositório indisponível"))

		service := newHealthMonitorForTest(poller, detector, healthRepo)
		service.runCycle(context.Background())

		assert.True(t, service.lastCycleAt.IsZero())
		assert.Equal(t, int64(0), service.cyclesCompleted)
	})

	t.Run("Falha na avaliação não impede a retenção nem o heartbeat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		poller := monitoringmocks.NewMockHealthPoller(ctrl)
		detector := monitoringmocks.NewMockOutageDetector(ctrl)
		healthRepo := mocks.NewMockHealthRecordRepository(ctrl)

		poller.EXPECT().PollAll(gomock.Any()).Return([]*domain.HealthRecord{}, nil)
		detector.EXPECT().Evaluate(gomock.Any()).Return(nil, errors.New("webhook indisponível"))
		healthRepo.EXPECT().DeleteOlderThan(30).Return(int64(12), nil)

		service := newHealthMonitorForTest(poller, detector, healthRepo)
		service.runCycle(context.Background())

		assert.False(t, service.lastCycleAt.IsZero())
	})
}

func TestHealthMonitorService_Heartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newHealthMonitorForTest(
		monitoringmocks.NewMockHealthPoller(ctrl),
		monitoringmocks.NewMockOutageDetector(ctrl),
		mocks.NewMockHealthRecordRepository(ctrl),
	)

	t.Run("Aquecendo: sem ciclo completado ainda não é falha", func(t *testing.T) {
		assert.NoError(t, service.Heartbeat(context.Background()))
	})

	t.Run("Ciclo recente é saudável", func(t *testing.T) {
		service.lastCycleAt = time.Now().Add(-30 * time.Second)
		assert.NoError(t, service.Heartbeat(context.Background()))
	})

	t.Run("Ciclo atrasado além de dois intervalos falha", func(t *testing.T) {
		service.lastCycleAt = time.Now().Add(-5 * time.Minute)
		assert.Error(t, service.Heartbeat(context.Background()))
	})

	t.Run("Monitoramento desabilitado nunca falha", func(t *testing.T) {
		service.appConfig.HealthMonitor.Enabled = false
		service.lastCycleAt = time.Now().Add(-5 * time.Minute)
		assert.NoError(t, service.Heartbeat(context.Background()))
	})
}
