package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/poconverto/analytics-engine-api/infrastructure/database/postgres"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/pkg/utils"
)

const (
	snapshotsTable = "platform_snapshots ps"
)

type SnapshotRepository interface {
	Get(clientID string, platform domain.Platform) (*domain.Snapshot, error)
	GetAllByClient(clientID string) ([]*domain.Snapshot, error)
	SaveOrUpdate(snapshot *domain.Snapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Get(clientID string, platform domain.Platform) (*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.client_id, ps.platform, ps.payload, ps.metrics, ps.snapshot_date, ps.created_at, ps.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ps.client_id": clientID, "ps.platform": platform.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetAllByClient(clientID string) ([]*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.client_id, ps.platform, ps.payload, ps.metrics, ps.snapshot_date, ps.created_at, ps.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ps.client_id": clientID}).
		OrderBy("ps.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// SaveOrUpdate insere ou substitui o snapshot do par (client_id, platform).
// O upsert é atômico na linha: uma falha de fetch nunca passa por aqui e o
// snapshot bom anterior permanece intacto
func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.Snapshot) error {
	var payloadJSON, metricsJSON []byte
	var err error

	if snapshot.Payload != nil {
		payloadJSON, err = json.Marshal(snapshot.Payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar payload para JSON: %w", err)
		}
	}

	if snapshot.Metrics != nil {
		metricsJSON, err = json.Marshal(snapshot.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("platform_snapshots").
		Columns("id", "client_id", "platform", "payload", "metrics", "snapshot_date").
		Values(
			snapshot.ID,
			snapshot.ClientID,
			snapshot.Platform.String(),
			payloadJSON,
			metricsJSON,
			snapshot.SnapshotDate.Format("2006-01-02"),
		).
		Suffix(`
			ON CONFLICT (client_id, platform) DO UPDATE SET
				payload = EXCLUDED.payload,
				metrics = EXCLUDED.metrics,
				snapshot_date = EXCLUDED.snapshot_date,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("platform_snapshots").
		Where(squirrel.Lt{"snapshot_date": cutoffDate}).
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

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	var payloadJSON, metricsJSON []byte
	var platform string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.ClientID,
		&platform,
		&payloadJSON,
		&metricsJSON,
		&snapshot.SnapshotDate,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Platform = domain.Platform(platform)

	if err := r.unmarshalSnapshot(snapshot, payloadJSON, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	var payloadJSON, metricsJSON []byte
	var platform string

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.ClientID,
		&platform,
		&payloadJSON,
		&metricsJSON,
		&snapshot.SnapshotDate,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Platform = domain.Platform(platform)

	if err := r.unmarshalSnapshot(snapshot, payloadJSON, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) unmarshalSnapshot(snapshot *domain.Snapshot, payloadJSON, metricsJSON []byte) error {
	if payloadJSON != nil {
		payload := &domain.PlatformMetrics{}
		if err := json.Unmarshal(payloadJSON, payload); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
		}
		snapshot.Payload = payload
	}

	if metricsJSON != nil {
		metrics := &domain.SummaryMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return nil
}
