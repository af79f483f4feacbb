package aggregating

import (
	"context"

	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// Aggregator define as operações de leitura agregada servidas pela API
type Aggregator interface {
	// GetOverview calcula o overview do cliente, servindo do cache quando os
	// snapshots ainda estão dentro da janela de frescor
	GetOverview(ctx context.Context, clientID string, filters *domain.OverviewFilters) (*domain.Overview, error)

	// GetPlatformMetrics retorna o snapshot corrente de uma única plataforma,
	// atualizando-o antes quando vencido ou quando force_refresh é informado
	GetPlatformMetrics(ctx context.Context, clientID string, platform domain.Platform, filters *domain.OverviewFilters) (*domain.Snapshot, error)
}

// Syncer é a entrada idempotente usada pelo agendador e pelo endpoint de
// sincronização manual
type Syncer interface {
	// SyncClient atualiza os snapshots de todas as plataformas conectadas do
	// cliente e retorna o resultado por plataforma
	SyncClient(ctx context.Context, clientID string) (*SyncResult, error)
}

// CombinedAggregator reúne as duas superfícies em um único serviço
type CombinedAggregator interface {
	Aggregator
	Syncer
}

// SyncResult resume uma rodada de sincronização de um cliente
type SyncResult struct {
	ClientID string               `json:"client_id"`
	Synced   []domain.Platform    `json:"synced"`
	Failed   []*domain.FetchError `json:"failed"`
}
