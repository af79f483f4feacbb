package domain

import "time"

// Platform identifica uma origem externa de dados (rede de anúncios,
// rede de analytics ou loja virtual)
type Platform string

const (
	PlatformAdsNetworkA      Platform = "ads-network-a"
	PlatformAdsNetworkB      Platform = "ads-network-b"
	PlatformAnalyticsNetwork Platform = "analytics-network"
	PlatformCommerceNetworkA Platform = "commerce-network-a"
	PlatformCommerceNetworkB Platform = "commerce-network-b"
)

// AllPlatforms lista todas as plataformas suportadas pelo agregador
var AllPlatforms = []Platform{
	PlatformAdsNetworkA,
	PlatformAdsNetworkB,
	PlatformAnalyticsNetwork,
	PlatformCommerceNetworkA,
	PlatformCommerceNetworkB,
}

// IsValid verifica se o identificador de plataforma é conhecido
func (p Platform) IsValid() bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// Integration representa o vínculo de um cliente com uma plataforma.
// Criada pelo sistema CRUD externo; o núcleo só lê e atualiza last_synced_at
type Integration struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	Platform     Platform   `json:"platform"`
	Connected    bool       `json:"connected"`
	Credentials  []byte     `json:"-"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
