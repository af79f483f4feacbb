package domain

import "time"

// Snapshot é o resultado persistido da última busca bem-sucedida de uma
// plataforma para um cliente. No máximo um snapshot corrente por par
// (client_id, platform); cada sincronização substitui o anterior in-place
type Snapshot struct {
	ID           string           `json:"id"`
	ClientID     string           `json:"client_id"`
	Platform     Platform         `json:"platform"`
	Payload      *PlatformMetrics `json:"payload"`
	Metrics      *SummaryMetrics  `json:"metrics"`
	SnapshotDate time.Time        `json:"snapshot_date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Age retorna a idade do snapshot em relação ao instante informado
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// OverviewFilters são os filtros aceitos pelas operações do agregador
type OverviewFilters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	ForceRefresh bool
}
