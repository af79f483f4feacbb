package aggregating

import "errors"

// Erros específicos do contexto de agregação
var (
	// Erros de validação
	ErrClientIDRequired = errors.New("client ID is required")
	ErrInvalidPlatform  = errors.New("invalid platform identifier")
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// Erros de dados
	ErrNoUsableData            = errors.New("no snapshot available and all platform fetches failed")
	ErrNoConnectedIntegrations = errors.New("client has no connected integrations")
)
