package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/poconverto/analytics-engine-api/infrastructure/database/postgres"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/pkg/utils"
)

const (
	healthRecordsTable = "health_records hr"
)

type HealthRecordRepository interface {
	Save(record *domain.HealthRecord) error
	GetLatestByService(serviceName string, limit int) ([]*domain.HealthRecord, error)
	GetByServiceSince(serviceName string, since time.Time) ([]*domain.HealthRecord, error)
	GetLatestPerService() ([]*domain.HealthRecord, error)
	GetLastAlertSentAt() (*time.Time, error)
	MarkAlertSent(recordIDs []string) error
	DeleteOlderThan(days int) (int64, error)
}

type healthRecordRepository struct {
	conn *postgres.Connection
}

func NewHealthRecordRepository(conn *postgres.Connection) HealthRecordRepository {
	return &healthRecordRepository{
		conn: conn,
	}
}

func (r *healthRecordRepository) Save(record *domain.HealthRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do registro de saúde: %w", err)
		}
		record.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("health_records").
		Columns("id", "service_name", "status", "latency_ms", "message", "alert_sent", "checked_at").
		Values(
			record.ID,
			record.ServiceName,
			string(record.Status),
			record.Latency.Milliseconds(),
			record.Message,
			record.AlertSent,
			record.CheckedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *healthRecordRepository) GetLatestByService(serviceName string, limit int) ([]*domain.HealthRecord, error) {
	query, args, err := squirrel.
		Select("hr.id, hr.service_name, hr.status, hr.latency_ms, hr.message, hr.alert_sent, hr.checked_at").
		From(healthRecordsTable).
		Where(squirrel.Eq{"hr.service_name": serviceName}).
		OrderBy("hr.checked_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *healthRecordRepository) GetByServiceSince(serviceName string, since time.Time) ([]*domain.HealthRecord, error) {
	query, args, err := squirrel.
		Select("hr.id, hr.service_name, hr.status, hr.latency_ms, hr.message, hr.alert_sent, hr.checked_at").
		From(healthRecordsTable).
		Where(squirrel.Eq{"hr.service_name": serviceName}).
		Where(squirrel.GtOrEq{"hr.checked_at": since}).
		OrderBy("hr.checked_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

// GetLatestPerService retorna a observação mais recente de cada serviço,
// que define o status corrente do catálogo monitorado
func (r *healthRecordRepository) GetLatestPerService() ([]*domain.HealthRecord, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (hr.service_name) hr.id, hr.service_name, hr.status, hr.latency_ms, hr.message, hr.alert_sent, hr.checked_at").
		From(healthRecordsTable).
		OrderBy("hr.service_name ASC", "hr.checked_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

// GetLastAlertSentAt deriva o instante do último lote de alertas enviado a
// partir dos registros persistidos, sem estado mutável em memória
func (r *healthRecordRepository) GetLastAlertSentAt() (*time.Time, error) {
	query, args, err := squirrel.
		Select("hr.checked_at").
		From(healthRecordsTable).
		Where(squirrel.Eq{"hr.alert_sent": true}).
		OrderBy("hr.checked_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var checkedAt time.Time
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&checkedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear checked_at: %w", err)
	}

	return &checkedAt, nil
}

func (r *healthRecordRepository) MarkAlertSent(recordIDs []string) error {
	if len(recordIDs) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Update("health_records").
		Set("alert_sent", true).
		Where(squirrel.Eq{"id": recordIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *healthRecordRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("health_records").
		Where(squirrel.Lt{"checked_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *healthRecordRepository) queryRecords(query string, args ...interface{}) ([]*domain.HealthRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.HealthRecord, 0)
	for rows.Next() {
		record := &domain.HealthRecord{}
		var status string
		var latencyMs int64
		var message sql.NullString

		err := rows.Scan(
			&record.ID,
			&record.ServiceName,
			&status,
			&latencyMs,
			&message,
			&record.AlertSent,
			&record.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de saúde: %w", err)
		}

		record.Status = domain.HealthStatus(status)
		record.Latency = time.Duration(latencyMs) * time.Millisecond
		if message.Valid {
			record.Message = message.String
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
