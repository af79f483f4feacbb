package domain

import "fmt"

// MetricsKind identifica a variante da união de métricas normalizadas
type MetricsKind string

const (
	MetricsKindAds       MetricsKind = "ads"
	MetricsKindAnalytics MetricsKind = "analytics"
	MetricsKindCommerce  MetricsKind = "commerce"
)

// AdsMetrics são as métricas normalizadas de uma rede de anúncios
type AdsMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
}

// AnalyticsMetrics são as métricas normalizadas de uma rede de analytics
type AnalyticsMetrics struct {
	Sessions    int     `json:"sessions"`
	Users       int     `json:"users"`
	BounceRate  float64 `json:"bounce_rate"`
	Conversions int     `json:"conversions"`
}

// CommerceMetrics são as métricas normalizadas de uma loja virtual
type CommerceMetrics struct {
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	AverageTicket float64 `json:"average_ticket"`
}

// PlatformMetrics é a união fechada de métricas normalizadas produzida
// pelos adapters. Exatamente uma das variantes é preenchida, conforme Kind
type PlatformMetrics struct {
	Platform  Platform          `json:"platform"`
	Kind      MetricsKind       `json:"kind"`
	Ads       *AdsMetrics       `json:"ads,omitempty"`
	Analytics *AnalyticsMetrics `json:"analytics,omitempty"`
	Commerce  *CommerceMetrics  `json:"commerce,omitempty"`
}

// SummaryMetrics é o resumo extraído de um PlatformMetrics para persistência
// junto ao snapshot. Subconjunto dependente da plataforma
type SummaryMetrics struct {
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Orders      int     `json:"orders"`
	Conversions int     `json:"conversions"`
	Sessions    int     `json:"sessions"`
}

// Summarize extrai o resumo persistível da variante preenchida
func (m *PlatformMetrics) Summarize() *SummaryMetrics {
	summary := &SummaryMetrics{}

	switch m.Kind {
	case MetricsKindAds:
		if m.Ads != nil {
			summary.Cost = m.Ads.Spend
			summary.Conversions = m.Ads.Conversions
		}
	case MetricsKindAnalytics:
		if m.Analytics != nil {
			summary.Sessions = m.Analytics.Sessions
			summary.Conversions = m.Analytics.Conversions
		}
	case MetricsKindCommerce:
		if m.Commerce != nil {
			summary.Revenue = m.Commerce.Revenue
			summary.Orders = m.Commerce.Orders
		}
	}

	return summary
}

// FetchError representa a falha de uma chamada remota a uma plataforma.
// É um valor retornado pelo fan-out, nunca uma falha que aborta as demais
type FetchError struct {
	Platform Platform `json:"platform"`
	Message  string   `json:"message"`
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("falha na plataforma %s: %s", e.Platform, e.Message)
}

// NewFetchError cria um FetchError para a plataforma informada
func NewFetchError(platform Platform, message string) *FetchError {
	return &FetchError{
		Platform: platform,
		Message:  message,
	}
}
