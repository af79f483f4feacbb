package domain

import (
	"time"

	"github.com/poconverto/analytics-engine-api/pkg/utils"
)

// PlatformBreakdown é a contribuição de uma plataforma para o overview
type PlatformBreakdown struct {
	Platform  Platform        `json:"platform"`
	Metrics   *SummaryMetrics `json:"metrics"`
	ROAS      float64         `json:"roas"`
	Stale     bool            `json:"stale"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Overview é o agregado derivado dos snapshots correntes de um cliente.
// Nunca é persistido; a validade vem da idade dos snapshots subjacentes
type Overview struct {
	ClientID         string               `json:"client_id"`
	TotalRevenue     float64              `json:"total_revenue"`
	TotalSpend       float64              `json:"total_spend"`
	TotalOrders      int                  `json:"total_orders"`
	TotalConversions int                  `json:"total_conversions"`
	TotalSessions    int                  `json:"total_sessions"`
	ROI              float64              `json:"roi"`
	Platforms        []*PlatformBreakdown `json:"platforms"`
	StalePlatforms   []Platform           `json:"stale_platforms"`
	Partial          bool                 `json:"partial"`
	OldestSnapshot   *time.Time           `json:"oldest_snapshot,omitempty"`
	FromCache        bool                 `json:"from_cache"`
	ComputedAt       time.Time            `json:"computed_at"`
	Filters          *OverviewFilters     `json:"-"`
}

// ComputeOverview soma as métricas dos snapshots correntes de um cliente.
// Divisões (ROI, ROAS) são definidas como 0 quando o denominador é zero.
// Conjunto vazio de snapshots produz o overview zerado, não um erro
func ComputeOverview(clientID string, snapshots []*Snapshot, staleBy map[Platform]bool, now time.Time) *Overview {
	overview := &Overview{
		ClientID:       clientID,
		Platforms:      make([]*PlatformBreakdown, 0, len(snapshots)),
		StalePlatforms: make([]Platform, 0),
		ComputedAt:     now,
	}

	for _, snapshot := range snapshots {
		if snapshot == nil || snapshot.Metrics == nil {
			continue
		}

		overview.TotalRevenue += snapshot.Metrics.Revenue
		overview.TotalSpend += snapshot.Metrics.Cost
		overview.TotalOrders += snapshot.Metrics.Orders
		overview.TotalConversions += snapshot.Metrics.Conversions
		overview.TotalSessions += snapshot.Metrics.Sessions

		stale := staleBy[snapshot.Platform]
		if stale {
			overview.StalePlatforms = append(overview.StalePlatforms, snapshot.Platform)
			overview.Partial = true
		}

		roas := 0.0
		if snapshot.Metrics.Cost > 0 {
			roas = utils.RoundWithTwoDecimalPlace(snapshot.Metrics.Revenue / snapshot.Metrics.Cost)
		}

		overview.Platforms = append(overview.Platforms, &PlatformBreakdown{
			Platform:  snapshot.Platform,
			Metrics:   snapshot.Metrics,
			ROAS:      roas,
			Stale:     stale,
			UpdatedAt: snapshot.UpdatedAt,
		})

		if overview.OldestSnapshot == nil || snapshot.UpdatedAt.Before(*overview.OldestSnapshot) {
			updatedAt := snapshot.UpdatedAt
			overview.OldestSnapshot = &updatedAt
		}
	}

	if overview.TotalSpend > 0 {
		overview.ROI = utils.RoundWithTwoDecimalPlace(overview.TotalRevenue / overview.TotalSpend)
	}

	overview.TotalRevenue = utils.RoundWithTwoDecimalPlace(overview.TotalRevenue)
	overview.TotalSpend = utils.RoundWithTwoDecimalPlace(overview.TotalSpend)

	return overview
}
