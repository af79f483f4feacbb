package monitoring

import (
	"context"

	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// Nomes dos serviços do conjunto fixo sempre monitorado
const (
	ServiceAPI       = "api"
	ServiceDatabase  = "database"
	ServiceScheduler = "scheduler"

	// Prefixo dos serviços derivados das plataformas
	PlatformServicePrefix = "platform:"
)

// HealthPoller sonda o catálogo de serviços dependentes e registra uma
// observação por serviço por ciclo, mesmo quando o status não mudou
type HealthPoller interface {
	// PollAll executa uma rodada completa de sondagens em paralelo
	PollAll(ctx context.Context) ([]*domain.HealthRecord, error)

	// CurrentStatus retorna a observação mais recente de cada serviço
	CurrentStatus() ([]*domain.HealthRecord, error)

	// History retorna as observações de um serviço nas últimas horas
	History(serviceName string, hours int) ([]*domain.HealthRecord, error)
}

// OutageDetector confirma quedas sustentadas e recuperações a partir do
// histórico persistido e despacha no máximo um lote de alertas por ciclo
type OutageDetector interface {
	// Evaluate examina o histórico de cada serviço alertável e retorna as
	// transições efetivamente notificadas
	Evaluate(ctx context.Context) ([]*domain.AlertTransition, error)
}

// Notifier entrega um lote de transições detectadas
type Notifier interface {
	SendBatch(ctx context.Context, transitions []*domain.AlertTransition) error
}

// PlatformServiceName monta o nome de serviço monitorado de uma plataforma
func PlatformServiceName(platform domain.Platform) string {
	return PlatformServicePrefix + platform.String()
}
