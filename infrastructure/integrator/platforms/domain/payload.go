package domain

// Formas de resposta das funções de plataforma, antes da normalização.
// O envelope é comum a todas: ou o payload da variante ou um campo "error"

type Envelope struct {
	Error string `json:"error,omitempty"`
}

type AdsPayload struct {
	Envelope
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
}

type AnalyticsPayload struct {
	Envelope
	Sessions    int     `json:"sessions"`
	Users       int     `json:"users"`
	BounceRate  float64 `json:"bounce_rate"`
	Conversions int     `json:"conversions"`
}

type CommercePayload struct {
	Envelope
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
