package aggregating

import (
	"time"

	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// isFresh decide se um snapshot ainda pode ser servido do cache.
// Função pura sobre (updatedAt, janela, agora); monotônica no tempo:
// aumentar o tempo decorrido nunca torna um snapshot vencido fresco de novo
func isFresh(updatedAt time.Time, window time.Duration, now time.Time) bool {
	return now.Sub(updatedAt) < window
}

// oldestUpdatedAt retorna o updated_at mais antigo entre os snapshots.
// O gate do overview avalia o frescor pelo snapshot contribuinte mais velho
func oldestUpdatedAt(snapshots []*domain.Snapshot) (time.Time, bool) {
	var oldest time.Time
	found := false

	for _, snapshot := range snapshots {
		if snapshot == nil {
			continue
		}
		if !found || snapshot.UpdatedAt.Before(oldest) {
			oldest = snapshot.UpdatedAt
			found = true
		}
	}

	return oldest, found
}
