package platformclient

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

// Client é o mecanismo uniforme de chamada remota das plataformas: cada
// plataforma é exposta como uma função isolada atrás de um mesmo contrato
// request/response, de modo que a falha de uma nunca aborta as demais
type Client interface {
	FetchRaw(ctx context.Context, platform domain.Platform, clientID string, startDate, endDate time.Time) ([]byte, error)
	Probe(ctx context.Context, platform domain.Platform) (int, time.Duration, error)
}

type fetchRequest struct {
	ClientID  string `json:"client_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type PlatformClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &PlatformClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Platforms.RequestTimeout,
		},
	}
}

// FetchRaw chama a função da plataforma e retorna o corpo bruto. Respostas
// não-2xx viram erro; a interpretação do campo "error" fica com o adapter
func (c *PlatformClient) FetchRaw(ctx context.Context, platform domain.Platform, clientID string, startDate, endDate time.Time) ([]byte, error) {
	url := fmt.Sprintf("%s/functions/%s", c.Cfg.Platforms.BaseURL, platform)

	payload, err := json.Marshal(fetchRequest{
		ClientID:  clientID,
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Platforms.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("resposta %d da função %s: %s", resp.StatusCode, platform, truncate(body, 200))
	}

	return body, nil
}

// Probe faz uma sondagem leve na função da plataforma para o monitor de
// saúde, retornando o status HTTP e a latência observada
func (c *PlatformClient) Probe(ctx context.Context, platform domain.Platform) (int, time.Duration, error) {
	url := fmt.Sprintf("%s/functions/%s/health", c.Cfg.Platforms.BaseURL, platform)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return 0, latency, err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, latency, nil
}

func truncate(body []byte, max int) string {
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
