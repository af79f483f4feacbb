package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/internal/usecases/aggregating"
	"github.com/poconverto/analytics-engine-api/pkg/log"
	"github.com/poconverto/analytics-engine-api/pkg/utils"
)

// parseOverviewFilters monta os filtros a partir da query string. Datas
// ausentes ficam nil e o serviço aplica o período padrão
func parseOverviewFilters(r *http.Request) (*domain.OverviewFilters, error) {
	filters := &domain.OverviewFilters{
		ForceRefresh: r.URL.Query().Get("force_refresh") == "true",
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}

// aggregatingStatusCode traduz os erros do serviço de agregação em status HTTP
func aggregatingStatusCode(err error) int {
	switch {
	case errors.Is(err, aggregating.ErrClientIDRequired),
		errors.Is(err, aggregating.ErrInvalidPlatform),
		errors.Is(err, aggregating.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, aggregating.ErrNoConnectedIntegrations):
		return http.StatusNotFound
	case errors.Is(err, aggregating.ErrNoUsableData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func GetClientOverview(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("client_id", clientID).Info("overview: fetching client overview")

		filters, err := parseOverviewFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"error":     err.Error(),
			}).Warn("overview: invalid date parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		overview, err := service.GetOverview(r.Context(), clientID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"error":     err.Error(),
			}).Error("overview: failed to build client overview")

			http.Error(w, err.Error(), aggregatingStatusCode(err))
			return
		}

		logger.WithFields(log.Fields{
			"client_id":  clientID,
			"from_cache": overview.FromCache,
			"partial":    overview.Partial,
			"stale":      len(overview.StalePlatforms),
		}).Info("overview: client overview ready")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"error":     err.Error(),
			}).Error("overview: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetClientPlatformMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		platform := domain.Platform(params.ByName("platform"))

		logger.WithFields(log.Fields{
			"client_id": clientID,
			"platform":  platform,
		}).Info("overview: fetching single platform metrics")

		filters, err := parseOverviewFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"platform":  platform,
				"error":     err.Error(),
			}).Warn("overview: invalid date parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		snapshot, err := service.GetPlatformMetrics(r.Context(), clientID, platform, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"platform":  platform,
				"error":     err.Error(),
			}).Error("overview: failed to get platform metrics")

			http.Error(w, err.Error(), aggregatingStatusCode(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"platform":  platform,
				"error":     err.Error(),
			}).Error("overview: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func SyncClientSnapshots(service aggregating.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("client_id", clientID).Info("overview: manual client sync requested")

		result, err := service.SyncClient(r.Context(), clientID)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"error":     err.Error(),
			}).Error("overview: manual client sync failed")

			http.Error(w, err.Error(), aggregatingStatusCode(err))
			return
		}

		logger.WithFields(log.Fields{
			"client_id": clientID,
			"synced":    len(result.Synced),
			"failed":    len(result.Failed),
		}).Info("overview: manual client sync finished")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"client_id": clientID,
				"error":     err.Error(),
			}).Error("overview: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
