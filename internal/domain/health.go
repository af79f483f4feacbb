package domain

import "time"

// HealthStatus classifica o resultado de uma sondagem de serviço
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// IsHealthy indica se o status representa um serviço operacional
func (s HealthStatus) IsHealthy() bool {
	return s == HealthStatusHealthy
}

// HealthRecord é uma observação de um serviço monitorado em um instante.
// Série temporal append-only; a ordem de inserção define a recência
type HealthRecord struct {
	ID          string        `json:"id"`
	ServiceName string        `json:"service_name"`
	Status      HealthStatus  `json:"status"`
	Latency     time.Duration `json:"latency_ms"`
	Message     string        `json:"message,omitempty"`
	AlertSent   bool          `json:"alert_sent"`
	CheckedAt   time.Time     `json:"checked_at"`
}

// MonitoringPreference é o opt-in de um usuário para alertas de um serviço.
// Mantida pelo sistema CRUD externo; o núcleo apenas lê
type MonitoringPreference struct {
	UserID           int    `json:"user_id"`
	ServiceName      string `json:"service_name"`
	NotifyOnDown     bool   `json:"notify_on_down"`
	NotifyOnRecovery bool   `json:"notify_on_recovery"`
}

// AlertKind distingue os dois tipos de transição alertável
type AlertKind string

const (
	AlertKindDown      AlertKind = "down"
	AlertKindRecovered AlertKind = "recovered"
)

// AlertTransition é uma mudança de estado detectada entre observações de um
// serviço. Efêmera: existe apenas entre a detecção e o envio da notificação
type AlertTransition struct {
	ServiceName    string        `json:"service_name"`
	Kind           AlertKind     `json:"kind"`
	PreviousStatus HealthStatus  `json:"previous_status"`
	CurrentStatus  HealthStatus  `json:"current_status"`
	Downtime       time.Duration `json:"downtime,omitempty"`
	Message        string        `json:"message,omitempty"`
	DetectedAt     time.Time     `json:"detected_at"`
	RecordIDs      []string      `json:"-"`
}
