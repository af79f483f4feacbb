package platforms

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	platformdomain "github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms/domain"
	"github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms/platformclient"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/pkg/utils"
)

// PlatformIntegrator traduz uma requisição (clientID, período) na chamada
// remota de cada plataforma e devolve métricas normalizadas ou um
// FetchError como valor. Sem estado entre invocações
type PlatformIntegrator interface {
	FetchMetrics(ctx context.Context, clientID string, platform domain.Platform, startDate, endDate time.Time) (*domain.PlatformMetrics, *domain.FetchError)
	ProbePlatform(ctx context.Context, platform domain.Platform) (int, time.Duration, error)
}

type Integrator struct {
	cfg    *config.Config
	Client platformclient.Client
}

func New(cfg *config.Config, client platformclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchMetrics busca e normaliza as métricas de uma plataforma. Qualquer
// falha (transporte, status não-2xx, campo "error" no corpo, payload
// inválido) vira um FetchError; nada é propagado como pânico ou aborto
func (s *Integrator) FetchMetrics(ctx context.Context, clientID string, platform domain.Platform, startDate, endDate time.Time) (*domain.PlatformMetrics, *domain.FetchError) {
	if !platform.IsValid() {
		return nil, domain.NewFetchError(platform, "plataforma desconhecida")
	}

	body, err := s.Client.FetchRaw(ctx, platform, clientID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  platform,
		}).Warn("Erro na chamada remota da plataforma")
		return nil, domain.NewFetchError(platform, err.Error())
	}

	metrics, fetchErr := s.normalize(platform, body)
	if fetchErr != nil {
		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  platform,
			"error":     fetchErr.Message,
		}).Warn("Resposta da plataforma rejeitada na normalização")
		return nil, fetchErr
	}

	return metrics, nil
}

// ProbePlatform delega a sondagem de saúde ao cliente uniforme
func (s *Integrator) ProbePlatform(ctx context.Context, platform domain.Platform) (int, time.Duration, error) {
	return s.Client.Probe(ctx, platform)
}

// normalize converte o payload da função na variante correta da união
func (s *Integrator) normalize(platform domain.Platform, body []byte) (*domain.PlatformMetrics, *domain.FetchError) {
	switch platform {
	case domain.PlatformAdsNetworkA, domain.PlatformAdsNetworkB:
		var payload platformdomain.AdsPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, domain.NewFetchError(platform, "payload de anúncios inválido: "+err.Error())
		}
		if payload.Error != "" {
			return nil, domain.NewFetchError(platform, payload.Error)
		}
		return &domain.PlatformMetrics{
			Platform: platform,
			Kind:     domain.MetricsKindAds,
			Ads: &domain.AdsMetrics{
				Spend:       utils.RoundWithTwoDecimalPlace(payload.Spend),
				Impressions: payload.Impressions,
				Clicks:      payload.Clicks,
				Conversions: payload.Conversions,
			},
		}, nil

	case domain.PlatformAnalyticsNetwork:
		var payload platformdomain.AnalyticsPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, domain.NewFetchError(platform, "payload de analytics inválido: "+err.Error())
		}
		if payload.Error != "" {
			return nil, domain.NewFetchError(platform, payload.Error)
		}
		return &domain.PlatformMetrics{
			Platform: platform,
			Kind:     domain.MetricsKindAnalytics,
			Analytics: &domain.AnalyticsMetrics{
				Sessions:    payload.Sessions,
				Users:       payload.Users,
				BounceRate:  utils.RoundWithTwoDecimalPlace(payload.BounceRate),
				Conversions: payload.Conversions,
			},
		}, nil

	case domain.PlatformCommerceNetworkA, domain.PlatformCommerceNetworkB:
		var payload platformdomain.CommercePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, domain.NewFetchError(platform, "payload de vendas inválido: "+err.Error())
		}
		if payload.Error != "" {
			return nil, domain.NewFetchError(platform, payload.Error)
		}

		averageTicket := 0.0
		if payload.Orders > 0 {
			averageTicket = utils.RoundWithTwoDecimalPlace(payload.Revenue / float64(payload.Orders))
		}

		return &domain.PlatformMetrics{
			Platform: platform,
			Kind:     domain.MetricsKindCommerce,
			Commerce: &domain.CommerceMetrics{
				Revenue:       utils.RoundWithTwoDecimalPlace(payload.Revenue),
				Orders:        payload.Orders,
				AverageTicket: averageTicket,
			},
		}, nil
	}

	return nil, domain.NewFetchError(platform, "plataforma desconhecida")
}
