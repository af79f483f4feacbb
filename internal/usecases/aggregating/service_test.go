package aggregating

import (
	"context"
	"testing"
	"time"

	platformmocks "github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms/mocks"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository/mocks"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		CacheGate: config.CacheGate{
			FreshnessWindow: 15 * time.Minute,
		},
	}
}

func adsMetrics(platform domain.Platform, spend float64, conversions int) *domain.PlatformMetrics {
	return &domain.PlatformMetrics{
		Platform: platform,
		Kind:     domain.MetricsKindAds,
		Ads: &domain.AdsMetrics{
			Spend:       spend,
			Conversions: conversions,
		},
	}
}

func adsSnapshot(clientID string, platform domain.Platform, spend float64, conversions int, updatedAt time.Time) *domain.Snapshot {
	metrics := adsMetrics(platform, spend, conversions)
	return &domain.Snapshot{
		ID:        "snap-" + string(platform),
		ClientID:  clientID,
		Platform:  platform,
		Payload:   metrics,
		Metrics:   metrics.Summarize(),
		UpdatedAt: updatedAt,
	}
}

func integration(clientID string, platform domain.Platform) *domain.Integration {
	return &domain.Integration{
		ID:        "int-" + string(platform),
		ClientID:  clientID,
		Platform:  platform,
		Connected: true,
	}
}

func TestService_GetOverview(t *testing.T) {
	const clientID = "client-1"

	tests := []struct {
		name     string
		filters  *domain.OverviewFilters
		setup    func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository)
		validate func(t *testing.T, overview *domain.Overview, err error)
	}{
		{
			name: "Cache hit não dispara nenhuma chamada de adapter",
			setup: func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				integrationRepo.EXPECT().
					ListByClient(clientID, true).
					Return([]*domain.Integration{
						integration(clientID, domain.PlatformAdsNetworkA),
						integration(clientID, domain.PlatformAdsNetworkB),
					}, nil)

				// Ambos os snapshots dentro da janela de frescor
				snapshotRepo.EXPECT().
					GetAllByClient(clientID).
					Return([]*domain.Snapshot{
						adsSnapshot(clientID, domain.PlatformAdsNetworkA, 100, 5, time.Now().Add(-2*time.Minute)),
						adsSnapshot(clientID, domain.PlatformAdsNetworkB, 50, 2, time.Now().Add(-4*time.Minute)),
					}, nil)

				// Nenhuma expectativa no integrator: qualquer chamada falha o teste
			},
			validate: func(t *testing.T, overview *domain.Overview, err error) {
				assert.NoError(t, err)
				assert.True(t, overview.FromCache)
				assert.Equal(t, 150.0, overview.TotalSpend)
				assert.Equal(t, 7, overview.TotalConversions)
				assert.False(t, overview.Partial)
			},
		},
		{
			name: "Plataforma vencida que falha no refresh mantém a contribuição anterior",
			setup: func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				integrationRepo.EXPECT().
					ListByClient(clientID, true).
					Return([]*domain.Integration{
						integration(clientID, domain.PlatformAdsNetworkA),
						integration(clientID, domain.PlatformAdsNetworkB),
					}, nil)

				// Gate de cache: snapshots vencidos forçam o refresh
				snapshotRepo.EXPECT().
					GetAllByClient(clientID).
					Return([]*domain.Snapshot{
						adsSnapshot(clientID, domain.PlatformAdsNetworkA, 80, 3, time.Now().Add(-1*time.Hour)),
						adsSnapshot(clientID, domain.PlatformAdsNetworkB, 50, 2, time.Now().Add(-1*time.Hour)),
					}, nil)

				// A busca fresca: A responde, B falha
				integrator.EXPECT().
					FetchMetrics(gomock.Any(), clientID, domain.PlatformAdsNetworkA, gomock.Any(), gomock.Any()).
					Return(adsMetrics(domain.PlatformAdsNetworkA, 100, 5), nil)
				integrator.EXPECT().
					FetchMetrics(gomock.Any(), clientID, domain.PlatformAdsNetworkB, gomock.Any(), gomock.Any()).
					Return(nil, domain.NewFetchError(domain.PlatformAdsNetworkB, "timeout"))

				// Apenas o sucesso é persistido; a linha de B fica intacta
				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.Snapshot) error {
						assert.Equal(t, domain.PlatformAdsNetworkA, snapshot.Platform)
						assert.Equal(t, 100.0, snapshot.Metrics.Cost)
						return nil
					})
				integrationRepo.EXPECT().
					TouchLastSyncedAt("int-"+string(domain.PlatformAdsNetworkA), gomock.Any()).
					Return(nil)

				// Releitura: A fresco, B com o último bom conhecido
				snapshotRepo.EXPECT().
					GetAllByClient(clientID).
					Return([]*domain.Snapshot{
						adsSnapshot(clientID, domain.PlatformAdsNetworkA, 100, 5, time.Now()),
						adsSnapshot(clientID, domain.PlatformAdsNetworkB, 50, 2, time.Now().Add(-1*time.Hour)),
					}, nil)
			},
			validate: func(t *testing.T, overview *domain.Overview, err error) {
				assert.NoError(t, err)
				assert.False(t, overview.FromCache)
				assert.Equal(t, 150.0, overview.TotalSpend)
				assert.Equal(t, 7, overview.TotalConversions)
				assert.True(t, overview.Partial)
				assert.Equal(t, []domain.Platform{domain.PlatformAdsNetworkB}, overview.StalePlatforms)
			},
		},
		{
			name: "Cliente sem integração conectada recebe overview zerado",
			setup: func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				integrationRepo.EXPECT().
					ListByClient(clientID, true).
					Return([]*domain.Integration{}, nil)
			},
			validate: func(t *testing.T, overview *domain.Overview, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, overview.TotalSpend)
				assert.Equal(t, 0.0, overview.TotalRevenue)
				assert.Empty(t, overview.Platforms)
			},
		},
		{
			name: "Todas as plataformas falham sem snapshot anterior",
			setup: func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				integrationRepo.EXPECT().
					ListByClient(clientID, true).
					Return([]*domain.Integration{
						integration(clientID, domain.PlatformAdsNetworkA),
					}, nil)

				snapshotRepo.EXPECT().
					GetAllByClient(clientID).
					Return([]*domain.Snapshot{}, nil)

				integrator.EXPECT().
					FetchMetrics(gomock.Any(), clientID, domain.PlatformAdsNetworkA, gomock.Any(), gomock.Any()).
					Return(nil, domain.NewFetchError(domain.PlatformAdsNetworkA, "connection refused"))

				snapshotRepo.EXPECT().
					GetAllByClient(clientID).
					Return([]*domain.Snapshot{}, nil)
			},
			validate: func(t *testing.T, overview *domain.Overview, err error) {
				assert.Nil(t, overview)
				assert.ErrorIs(t, err, ErrNoUsableData)
			},
		},
		{
			name:    "Intervalo de datas invertido é rejeitado antes de qualquer chamada",
			filters: invertedFilters(),
			setup: func(integrator *platformmocks.MockPlatformIntegrator, integrationRepo *mocks.MockIntegrationRepository, snapshotRepo *mocks.MockSnapshotRepository) {
			},
			validate: func(t *testing.T, overview *domain.Overview, err error) {
				assert.Nil(t, overview)
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

			tt.setup(integrator, integrationRepo, snapshotRepo)

			service := NewService(testConfig(), integrator, integrationRepo, snapshotRepo)

			overview, err := service.GetOverview(context.Background(), clientID, tt.filters)
			tt.validate(t, overview, err)
		})
	}
}

func TestService_GetOverview_ClientIDRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		testConfig(),
		platformmocks.NewMockPlatformIntegrator(ctrl),
		mocks.NewMockIntegrationRepository(ctrl),
		mocks.NewMockSnapshotRepository(ctrl),
	)

	overview, err := service.GetOverview(context.Background(), "", nil)
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrClientIDRequired)
}

func TestService_GetPlatformMetrics(t *testing.T) {
	const clientID = "client-1"
	platform := domain.PlatformAdsNetworkA

	t.Run("Fetch com falha serve o último snapshot bom conhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

		previous := adsSnapshot(clientID, platform, 80, 3, time.Now().Add(-1*time.Hour))

		integrationRepo.EXPECT().
			GetByClientAndPlatform(clientID, platform).
			Return(integration(clientID, platform), nil)
		snapshotRepo.EXPECT().
			Get(clientID, platform).
			Return(previous, nil)
		integrator.EXPECT().
			FetchMetrics(gomock.Any(), clientID, platform, gomock.Any(), gomock.Any()).
			Return(nil, domain.NewFetchError(platform, "timeout"))

		// Nenhum SaveOrUpdate: a linha anterior permanece intacta

		service := NewService(testConfig(), integrator, integrationRepo, snapshotRepo)

		snapshot, err := service.GetPlatformMetrics(context.Background(), clientID, platform, nil)
		assert.NoError(t, err)
		assert.Equal(t, previous, snapshot)
	})

	t.Run("Snapshot fresco é servido sem chamada de adapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

		fresh := adsSnapshot(clientID, platform, 100, 5, time.Now().Add(-1*time.Minute))

		integrationRepo.EXPECT().
			GetByClientAndPlatform(clientID, platform).
			Return(integration(clientID, platform), nil)
		snapshotRepo.EXPECT().
			Get(clientID, platform).
			Return(fresh, nil)

		service := NewService(testConfig(), integrator, integrationRepo, snapshotRepo)

		snapshot, err := service.GetPlatformMetrics(context.Background(), clientID, platform, nil)
		assert.NoError(t, err)
		assert.Equal(t, fresh, snapshot)
	})

	t.Run("Plataforma desconhecida é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			testConfig(),
			platformmocks.NewMockPlatformIntegrator(ctrl),
			mocks.NewMockIntegrationRepository(ctrl),
			mocks.NewMockSnapshotRepository(ctrl),
		)

		snapshot, err := service.GetPlatformMetrics(context.Background(), clientID, "unknown-platform", nil)
		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, ErrInvalidPlatform)
	})
}

func TestService_SyncClient(t *testing.T) {
	const clientID = "client-1"

	t.Run("Sucessos e falhas são reportados por plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := platformmocks.NewMockPlatformIntegrator(ctrl)
		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

		integrationRepo.EXPECT().
			ListByClient(clientID, true).
			Return([]*domain.Integration{
				integration(clientID, domain.PlatformAdsNetworkA),
				integration(clientID, domain.PlatformAdsNetworkB),
			}, nil)

		integrator.EXPECT().
			FetchMetrics(gomock.Any(), clientID, domain.PlatformAdsNetworkA, gomock.Any(), gomock.Any()).
			Return(adsMetrics(domain.PlatformAdsNetworkA, 100, 5), nil)
		integrator.EXPECT().
			FetchMetrics(gomock.Any(), clientID, domain.PlatformAdsNetworkB, gomock.Any(), gomock.Any()).
			Return(nil, domain.NewFetchError(domain.PlatformAdsNetworkB, "rate limited"))

		snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		integrationRepo.EXPECT().TouchLastSyncedAt(gomock.Any(), gomock.Any()).Return(nil)

		service := NewService(testConfig(), integrator, integrationRepo, snapshotRepo)

		result, err := service.SyncClient(context.Background(), clientID)
		assert.NoError(t, err)
		assert.Equal(t, clientID, result.ClientID)
		assert.Equal(t, []domain.Platform{domain.PlatformAdsNetworkA}, result.Synced)
		assert.Len(t, result.Failed, 1)
		assert.Equal(t, domain.PlatformAdsNetworkB, result.Failed[0].Platform)
	})

	t.Run("Cliente sem integrações conectadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		integrationRepo.EXPECT().
			ListByClient(clientID, true).
			Return([]*domain.Integration{}, nil)

		service := NewService(
			testConfig(),
			platformmocks.NewMockPlatformIntegrator(ctrl),
			integrationRepo,
			mocks.NewMockSnapshotRepository(ctrl),
		)

		result, err := service.SyncClient(context.Background(), clientID)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNoConnectedIntegrations)
	})
}

func invertedFilters() *domain.OverviewFilters {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -5)
	return &domain.OverviewFilters{StartDate: &start, EndDate: &end}
}
