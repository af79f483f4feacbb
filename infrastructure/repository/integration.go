package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/poconverto/analytics-engine-api/infrastructure/database/postgres"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

const (
	integrationsTable = "integrations i"
)

type IntegrationRepository interface {
	GetByClientAndPlatform(clientID string, platform domain.Platform) (*domain.Integration, error)
	ListByClient(clientID string, onlyConnected bool) ([]*domain.Integration, error)
	ListConnectedClientIDs() ([]string, error)
	ListConnectedPlatforms() ([]domain.Platform, error)
	TouchLastSyncedAt(id string, syncedAt time.Time) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByClientAndPlatform(clientID string, platform domain.Platform) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.client_id, i.platform, i.connected, i.credentials, i.last_synced_at, i.created_at, i.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"i.client_id": clientID, "i.platform": platform.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	integration, err := r.scanIntegration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integração: %w", err)
	}

	return integration, nil
}

func (r *integrationRepository) ListByClient(clientID string, onlyConnected bool) ([]*domain.Integration, error) {
	builder := squirrel.
		Select("i.id, i.client_id, i.platform, i.connected, i.credentials, i.last_synced_at, i.created_at, i.updated_at").
		From(integrationsTable).
		Where(squirrel.Eq{"i.client_id": clientID})

	if onlyConnected {
		builder = builder.Where(squirrel.Eq{"i.connected": true})
	}

	query, args, err := builder.
		OrderBy("i.platform ASC").
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

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration, err := r.scanIntegrationRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear integrações: %w", err)
		}
		integrations = append(integrations, integration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return integrations, nil
}

// ListConnectedClientIDs retorna os clientes com ao menos uma integração
// conectada, para a sincronização agendada
func (r *integrationRepository) ListConnectedClientIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT i.client_id").
		From(integrationsTable).
		Where(squirrel.Eq{"i.connected": true}).
		OrderBy("i.client_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clientIDs := make([]string, 0)
	for rows.Next() {
		var clientID string
		if err := rows.Scan(&clientID); err != nil {
			return nil, fmt.Errorf("erro ao escanear client_id: %w", err)
		}
		clientIDs = append(clientIDs, clientID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clientIDs, nil
}

// ListConnectedPlatforms retorna as plataformas referenciadas por ao menos
// uma integração conectada, usadas pelo monitor de saúde para alertas
func (r *integrationRepository) ListConnectedPlatforms() ([]domain.Platform, error) {
	query, args, err := squirrel.
		Select("DISTINCT i.platform").
		From(integrationsTable).
		Where(squirrel.Eq{"i.connected": true}).
		OrderBy("i.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	platforms := make([]domain.Platform, 0)
	for rows.Next() {
		var platform string
		if err := rows.Scan(&platform); err != nil {
			return nil, fmt.Errorf("erro ao escanear plataforma: %w", err)
		}
		platforms = append(platforms, domain.Platform(platform))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return platforms, nil
}

func (r *integrationRepository) TouchLastSyncedAt(id string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("integrations").
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

func (r *integrationRepository) scanIntegration(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}
	var platform string
	var lastSyncedAt sql.NullTime

	err := row.Scan(
		&integration.ID,
		&integration.ClientID,
		&platform,
		&integration.Connected,
		&integration.Credentials,
		&lastSyncedAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	integration.Platform = domain.Platform(platform)
	if lastSyncedAt.Valid {
		integration.LastSyncedAt = &lastSyncedAt.Time
	}

	return integration, nil
}

func (r *integrationRepository) scanIntegrationRows(rows *sql.Rows) (*domain.Integration, error) {
	integration := &domain.Integration{}
	var platform string
	var lastSyncedAt sql.NullTime

	err := rows.Scan(
		&integration.ID,
		&integration.ClientID,
		&platform,
		&integration.Connected,
		&integration.Credentials,
		&lastSyncedAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	integration.Platform = domain.Platform(platform)
	if lastSyncedAt.Valid {
		integration.LastSyncedAt = &lastSyncedAt.Time
	}

	return integration, nil
}
