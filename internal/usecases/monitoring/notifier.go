package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// WebhookNotifier entrega o lote de transições em um único POST para o
// webhook configurado. Sem URL configurada, apenas registra no log
type WebhookNotifier struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewWebhookNotifier(cfg *config.Config) *WebhookNotifier {
	return &WebhookNotifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.HealthMonitor.NotifyWebhookTimeout,
		},
	}
}

type webhookPayload struct {
	Source      string                    `json:"source"`
	SentAt      string                    `json:"sent_at"`
	Transitions []*domain.AlertTransition `json:"transitions"`
}

func (n *WebhookNotifier) SendBatch(ctx context.Context, transitions []*domain.AlertTransition) error {
	if len(transitions) == 0 {
		return nil
	}

	if n.cfg.HealthMonitor.NotifyWebhookURL == "" {
		for _, transition := range transitions {
			logrus.WithFields(logrus.Fields{
				"service":  transition.ServiceName,
				"kind":     transition.Kind,
				"status":   transition.CurrentStatus,
				"downtime": transition.Downtime.String(),
			}).Warn("Alerta de saúde (webhook não configurado)")
		}
		return nil
	}

	payload := webhookPayload{
		Source:      "analytics-engine-api",
		SentAt:      time.Now().Format(time.RFC3339),
		Transitions: transitions,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar lote de alertas: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.HealthMonitor.NotifyWebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição do webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar webhook de alertas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook de alertas retornou status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
