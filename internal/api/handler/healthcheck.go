package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Version é preenchida em tempo de build via ldflags
var Version = "dev"

type healthcheckResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Features  []string `json:"features"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status:    "ok",
			Service:   "analytics-engine-api",
			Version:   Version,
			Timestamp: time.Now().Format(time.RFC3339),
			Features:  []string{"aggregation", "snapshot-cache", "health-monitoring"},
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
