package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/poconverto/analytics-engine-api/infrastructure/database/postgres"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

const (
	monitoringPreferencesTable = "monitoring_preferences mp"
)

// MonitoringPreferenceRepository lê as preferências de alerta mantidas pelo
// sistema CRUD externo. Somente leitura para o núcleo
type MonitoringPreferenceRepository interface {
	ListByService(serviceName string) ([]*domain.MonitoringPreference, error)
}

type monitoringPreferenceRepository struct {
	conn *postgres.Connection
}

func NewMonitoringPreferenceRepository(conn *postgres.Connection) MonitoringPreferenceRepository {
	return &monitoringPreferenceRepository{
		conn: conn,
	}
}

func (r *monitoringPreferenceRepository) ListByService(serviceName string) ([]*domain.MonitoringPreference, error) {
	query, args, err := squirrel.
		Select("mp.user_id, mp.service_name, mp.notify_on_down, mp.notify_on_recovery").
		From(monitoringPreferencesTable).
		Where(squirrel.Eq{"mp.service_name": serviceName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPreferences(query, args...)
}

func (r *monitoringPreferenceRepository) queryPreferences(query string, args ...interface{}) ([]*domain.MonitoringPreference, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	preferences := make([]*domain.MonitoringPreference, 0)
	for rows.Next() {
		preference := &domain.MonitoringPreference{}
		err := rows.Scan(
			&preference.UserID,
			&preference.ServiceName,
			&preference.NotifyOnDown,
			&preference.NotifyOnRecovery,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear preferência: %w", err)
		}
		preferences = append(preferences, preference)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return preferences, nil
}
