package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	platformmocks "github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms/mocks"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository/mocks"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func pollerTestConfig() *config.Config {
	return &config.Config{
		HealthMonitor: config.HealthMonitor{
			ProbeTimeout:  2 * time.Second,
			LatencyBudget: 800 * time.Millisecond,
		},
	}
}

func recordByService(t *testing.T, records []*domain.HealthRecord, serviceName string) *domain.HealthRecord {
	t.Helper()
	for _, record := range records {
		if record.ServiceName == serviceName {
			return record
		}
	}
	t.Fatalf("nenhum registro para o serviço %s", serviceName)
	return nil
}

func TestPoller_PollAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
	healthRepo := mocks.NewMockHealthRecordRepository(ctrl)

	// Cada plataforma exercita um ramo da classificação
	integrator.EXPECT().
		ProbePlatform(gomock.Any(), domain.PlatformAdsNetworkA).
		Return(0, time.Duration(0), errors.New("connection refused"))
	integrator.EXPECT().
		ProbePlatform(gomock.Any(), domain.PlatformAdsNetworkB).
		Return(503, 15*time.Millisecond, nil)
	integrator.EXPECT().
		ProbePlatform(gomock.Any(), domain.PlatformAnalyticsNetwork).
		Return(200, 2*time.Second, nil)
	integrator.EXPECT().
		ProbePlatform(gomock.Any(), domain.PlatformCommerceNetworkA).
		Return(200, 20*time.Millisecond, nil)
	integrator.EXPECT().
		ProbePlatform(gomock.Any(), domain.PlatformCommerceNetworkB).
		Return(204, 30*time.Millisecond, nil)

	// Um registro persistido por serviço: 5 plataformas, banco e a sondagem
	// interna registrada
	healthRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(7)

	poller := NewPoller(pollerTestConfig(), integrator, healthRepo, &fakePinger{})
	poller.RegisterSystemProbe(ServiceScheduler, func(ctx context.Context) error {
		return errors.New("heartbeat atrasado")
	})

	records, err := poller.PollAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 7)

	adsA := recordByService(t, records, PlatformServiceName(domain.PlatformAdsNetworkA))
	assert.Equal(t, domain.HealthStatusUnhealthy, adsA.Status)
	assert.Equal(t, "connection refused", adsA.Message)

	adsB := recordByService(t, records, PlatformServiceName(domain.PlatformAdsNetworkB))
	assert.Equal(t, domain.HealthStatusUnhealthy, adsB.Status)
	assert.Contains(t, adsB.Message, "503")

	analytics := recordByService(t, records, PlatformServiceName(domain.PlatformAnalyticsNetwork))
	assert.Equal(t, domain.HealthStatusDegraded, analytics.Status)

	commerceA := recordByService(t, records, PlatformServiceName(domain.PlatformCommerceNetworkA))
	assert.Equal(t, domain.HealthStatusHealthy, commerceA.Status)
	assert.Empty(t, commerceA.Message)

	commerceB := recordByService(t, records, PlatformServiceName(domain.PlatformCommerceNetworkB))
	assert.Equal(t, domain.HealthStatusHealthy, commerceB.Status)

	database := recordByService(t, records, ServiceDatabase)
	assert.Equal(t, domain.HealthStatusHealthy, database.Status)

	scheduler := recordByService(t, records, ServiceScheduler)
	assert.Equal(t, domain.HealthStatusUnhealthy, scheduler.Status)
	assert.Equal(t, "heartbeat atrasado", scheduler.Message)
}

func TestPoller_PollAll_DatabaseDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
	healthRepo := mocks.NewMockHealthRecordRepository(ctrl)

	integrator.EXPECT().
		ProbePlatform(gomock.Any(), gomock.Any()).
		Return(200, 10*time.Millisecond, nil).
		Times(len(domain.AllPlatforms))

	// Falha de escrita não derruba o ciclo nem omite o registro no retorno
	healthRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(len(domain.AllPlatforms))
	healthRepo.EXPECT().Save(gomock.Any()).Return(errors.New("write timeout"))

	poller := NewPoller(pollerTestConfig(), integrator, healthRepo, &fakePinger{err: errors.New("driver: bad connection")})

	records, err := poller.PollAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, len(domain.AllPlatforms)+1)

	database := recordByService(t, records, ServiceDatabase)
	assert.Equal(t, domain.HealthStatusUnhealthy, database.Status)
	assert.Equal(t, "driver: bad connection", database.Message)
}

func TestPoller_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthRepo := mocks.NewMockHealthRecordRepository(ctrl)
	healthRepo.EXPECT().
		GetByServiceSince(ServiceDatabase, gomock.Any()).
		DoAndReturn(func(serviceName string, since time.Time) ([]*domain.HealthRecord, error) {
			assert.WithinDuration(t, time.Now().Add(-6*time.Hour), since, time.Minute)
			return []*domain.HealthRecord{}, nil
		})

	poller := NewPoller(pollerTestConfig(), platformmocks.NewMockPlatformIntegrator(ctrl), healthRepo, &fakePinger{})

	records, err := poller.History(ServiceDatabase, 6)
	assert.NoError(t, err)
	assert.Empty(t, records)
}
