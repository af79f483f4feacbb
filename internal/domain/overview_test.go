package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverview(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Conjunto vazio produz overview zerado, não erro", func(t *testing.T) {
		overview := ComputeOverview("client-1", nil, nil, now)

		assert.Equal(t, "client-1", overview.ClientID)
		assert.Equal(t, 0.0, overview.TotalRevenue)
		assert.Equal(t, 0.0, overview.TotalSpend)
		assert.Equal(t, 0.0, overview.ROI)
		assert.Empty(t, overview.Platforms)
		assert.False(t, overview.Partial)
		assert.Nil(t, overview.OldestSnapshot)
	})

	t.Run("Totais são a soma das contribuições por plataforma", func(t *testing.T) {
		snapshots := []*Snapshot{
			{
				Platform:  PlatformAdsNetworkA,
				Metrics:   &SummaryMetrics{Cost: 100, Conversions: 5},
				UpdatedAt: now.Add(-5 * time.Minute),
			},
			{
				Platform:  PlatformAdsNetworkB,
				Metrics:   &SummaryMetrics{Cost: 50, Conversions: 2},
				UpdatedAt: now.Add(-10 * time.Minute),
			},
			{
				Platform:  PlatformCommerceNetworkA,
				Metrics:   &SummaryMetrics{Revenue: 900, Orders: 12},
				UpdatedAt: now.Add(-2 * time.Minute),
			},
		}

		overview := ComputeOverview("client-1", snapshots, nil, now)

		assert.Equal(t, 150.0, overview.TotalSpend)
		assert.Equal(t, 7, overview.TotalConversions)
		assert.Equal(t, 900.0, overview.TotalRevenue)
		assert.Equal(t, 12, overview.TotalOrders)
		assert.Len(t, overview.Platforms, 3)
		assert.Equal(t, 6.0, overview.ROI) // 900 / 150
		assert.Equal(t, now.Add(-10*time.Minute), *overview.OldestSnapshot)
	})

	t.Run("Divisão por zero no ROI e no ROAS resulta em 0", func(t *testing.T) {
		snapshots := []*Snapshot{
			{
				Platform:  PlatformCommerceNetworkA,
				Metrics:   &SummaryMetrics{Revenue: 500, Orders: 3},
				UpdatedAt: now,
			},
		}

		overview := ComputeOverview("client-1", snapshots, nil, now)

		assert.Equal(t, 0.0, overview.TotalSpend)
		assert.Equal(t, 0.0, overview.ROI)
		assert.Equal(t, 0.0, overview.Platforms[0].ROAS)
	})

	t.Run("Plataformas vencidas marcam o overview como parcial", func(t *testing.T) {
		snapshots := []*Snapshot{
			{
				Platform:  PlatformAdsNetworkA,
				Metrics:   &SummaryMetrics{Cost: 100, Conversions: 5},
				UpdatedAt: now,
			},
			{
				Platform:  PlatformAdsNetworkB,
				Metrics:   &SummaryMetrics{Cost: 50, Conversions: 2},
				UpdatedAt: now.Add(-2 * time.Hour),
			},
		}

		staleBy := map[Platform]bool{PlatformAdsNetworkB: true}
		overview := ComputeOverview("client-1", snapshots, staleBy, now)

		// A contribuição vencida continua somada
		assert.Equal(t, 150.0, overview.TotalSpend)
		assert.Equal(t, 7, overview.TotalConversions)
		assert.True(t, overview.Partial)
		assert.Equal(t, []Platform{PlatformAdsNetworkB}, overview.StalePlatforms)
	})

	t.Run("Snapshots sem métricas são ignorados", func(t *testing.T) {
		snapshots := []*Snapshot{
			{Platform: PlatformAdsNetworkA, UpdatedAt: now},
			nil,
		}

		overview := ComputeOverview("client-1", snapshots, nil, now)
		assert.Empty(t, overview.Platforms)
	})
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		metrics  *PlatformMetrics
		expected *SummaryMetrics
	}{
		{
			name: "Variante de anúncios",
			metrics: &PlatformMetrics{
				Kind: MetricsKindAds,
				Ads:  &AdsMetrics{Spend: 120.5, Impressions: 10000, Clicks: 340, Conversions: 9},
			},
			expected: &SummaryMetrics{Cost: 120.5, Conversions: 9},
		},
		{
			name: "Variante de analytics",
			metrics: &PlatformMetrics{
				Kind:      MetricsKindAnalytics,
				Analytics: &AnalyticsMetrics{Sessions: 4200, Users: 3100, BounceRate: 0.4, Conversions: 17},
			},
			expected: &SummaryMetrics{Sessions: 4200, Conversions: 17},
		},
		{
			name: "Variante de loja virtual",
			metrics: &PlatformMetrics{
				Kind:     MetricsKindCommerce,
				Commerce: &CommerceMetrics{Revenue: 980.0, Orders: 14, AverageTicket: 70.0},
			},
			expected: &SummaryMetrics{Revenue: 980.0, Orders: 14},
		},
		{
			name:     "Variante ausente produz resumo zerado",
			metrics:  &PlatformMetrics{Kind: MetricsKindAds},
			expected: &SummaryMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.metrics.Summarize())
		})
	}
}
