package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/internal/usecases/monitoring"
	"github.com/poconverto/analytics-engine-api/pkg/log"
)

const defaultHistoryHours = 24

type monitoringStatusResponse struct {
	Services  []*domain.HealthRecord `json:"services"`
	CheckedAt string                 `json:"checked_at"`
}

type monitoringHistoryResponse struct {
	Service string                 `json:"service"`
	Hours   int                    `json:"hours"`
	Records []*domain.HealthRecord `json:"records"`
}

// GetMonitoringStatus retorna a observação mais recente de cada serviço monitorado
func GetMonitoringStatus(poller monitoring.HealthPoller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, err := poller.CurrentStatus()
		if err != nil {
			logger.WithError(err).Error("monitoring: failed to load current status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := monitoringStatusResponse{
			Services:  records,
			CheckedAt: time.Now().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("monitoring: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetMonitoringHistory retorna as observações de um serviço nas últimas horas
func GetMonitoringHistory(poller monitoring.HealthPoller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		serviceName := r.URL.Query().Get("service")
		if serviceName == "" {
			logger.Warn("monitoring: missing service parameter")
			http.Error(w, "service parameter is required", http.StatusBadRequest)
			return
		}

		hours := defaultHistoryHours
		if raw := r.URL.Query().Get("hours"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("hours", raw).Warn("monitoring: invalid hours parameter")
				http.Error(w, "hours must be a positive integer", http.StatusBadRequest)
				return
			}
			hours = parsed
		}

		records, err := poller.History(serviceName, hours)
		if err != nil {
			logger.WithFields(log.Fields{
				"service": serviceName,
				"error":   err.Error(),
			}).Error("monitoring: failed to load service history")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := monitoringHistoryResponse{
			Service: serviceName,
			Hours:   hours,
			Records: records,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"service": serviceName,
				"error":   err.Error(),
			}).Error("monitoring: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
