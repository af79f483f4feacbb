package monitoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/domain"
)

// Pinger é a sondagem do banco de dados (satisfeita por postgres.Connection)
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeFunc é uma sondagem interna registrada para um serviço do sistema
type ProbeFunc func(ctx context.Context) error

// Poller implementa HealthPoller sobre o cliente uniforme de plataformas e
// as sondagens internas do sistema
type Poller struct {
	cfg          *config.Config
	integrator   platforms.PlatformIntegrator
	healthRepo   repository.HealthRecordRepository
	pinger       Pinger
	systemProbes map[string]ProbeFunc
	probesMutex  sync.RWMutex
}

// NewPoller cria uma nova instância do poller de saúde
func NewPoller(
	cfg *config.Config,
	integrator platforms.PlatformIntegrator,
	healthRepo repository.HealthRecordRepository,
	pinger Pinger,
) *Poller {
	return &Poller{
		cfg:          cfg,
		integrator:   integrator,
		healthRepo:   healthRepo,
		pinger:       pinger,
		systemProbes: make(map[string]ProbeFunc),
	}
}

// RegisterSystemProbe registra uma sondagem interna (ex.: heartbeat do
// agendador). Chamada durante a montagem da aplicação
func (p *Poller) RegisterSystemProbe(serviceName string, probe ProbeFunc) {
	p.probesMutex.Lock()
	defer p.probesMutex.Unlock()
	p.systemProbes[serviceName] = probe
}

// PollAll sonda todos os serviços do catálogo em paralelo, cada sondagem
// limitada pelo timeout configurado para que uma dependência inacessível
// não trave o ciclo inteiro. Sempre grava um registro por serviço
func (p *Poller) PollAll(ctx context.Context) ([]*domain.HealthRecord, error) {
	started := time.Now()

	records := make([]*domain.HealthRecord, 0)

	wg := sync.WaitGroup{}
	var mutex sync.Mutex

	collect := func(record *domain.HealthRecord) {
		if err := p.healthRepo.Save(record); err != nil {
			logrus.WithError(err).WithField("service", record.ServiceName).Error("Erro ao salvar registro de saúde")
		}

		mutex.Lock()
		records = append(records, record)
		mutex.Unlock()
	}

	// Sondagens das funções de plataforma
	for _, platform := range domain.AllPlatforms {
		wg.Add(1)

		go func(platform domain.Platform) {
			defer wg.Done()
			collect(p.probePlatform(ctx, platform))
		}(platform)
	}

	// Sondagem do banco de dados
	wg.Add(1)
	go func() {
		defer wg.Done()
		collect(p.probeDatabase(ctx))
	}()

	// Sondagens internas registradas (api, scheduler)
	p.probesMutex.RLock()
	for serviceName, probe := range p.systemProbes {
		wg.Add(1)

		go func(serviceName string, probe ProbeFunc) {
			defer wg.Done()
			collect(p.probeSystem(ctx, serviceName, probe))
		}(serviceName, probe)
	}
	p.probesMutex.RUnlock()

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"services": len(records),
		"duration": time.Since(started).String(),
	}).Debug("Ciclo de sondagem de saúde concluído")

	return records, nil
}

// CurrentStatus retorna a observação mais recente de cada serviço
func (p *Poller) CurrentStatus() ([]*domain.HealthRecord, error) {
	return p.healthRepo.GetLatestPerService()
}

// History retorna as observações de um serviço nas últimas horas
func (p *Poller) History(serviceName string, hours int) ([]*domain.HealthRecord, error) {
	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	return p.healthRepo.GetByServiceSince(serviceName, since)
}

// probePlatform sonda a função de uma plataforma e classifica o resultado.
// Timeout e falha de conexão viram unhealthy, nunca um erro propagado
func (p *Poller) probePlatform(ctx context.Context, platform domain.Platform) *domain.HealthRecord {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.HealthMonitor.ProbeTimeout)
	defer cancel()

	statusCode, latency, err := p.integrator.ProbePlatform(probeCtx, platform)

	record := &domain.HealthRecord{
		ServiceName: PlatformServiceName(platform),
		Latency:     latency,
		CheckedAt:   time.Now(),
	}

	switch {
	case err != nil:
		record.Status = domain.HealthStatusUnhealthy
		record.Message = err.Error()
	case statusCode < 200 || statusCode > 299:
		record.Status = domain.HealthStatusUnhealthy
		record.Message = fmt.Sprintf("status HTTP %d", statusCode)
	case latency > p.cfg.HealthMonitor.LatencyBudget:
		record.Status = domain.HealthStatusDegraded
		record.Message = fmt.Sprintf("latência elevada: %s", latency)
	default:
		record.Status = domain.HealthStatusHealthy
	}

	return record
}

func (p *Poller) probeDatabase(ctx context.Context) *domain.HealthRecord {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.HealthMonitor.ProbeTimeout)
	defer cancel()

	start := time.Now()
	err := p.pinger.Ping(probeCtx)
	latency := time.Since(start)

	record := &domain.HealthRecord{
		ServiceName: ServiceDatabase,
		Latency:     latency,
		CheckedAt:   time.Now(),
	}

	switch {
	case err != nil:
		record.Status = domain.HealthStatusUnhealthy
		record.Message = err.Error()
	case latency > p.cfg.HealthMonitor.LatencyBudget:
		record.Status = domain.HealthStatusDegraded
		record.Message = fmt.Sprintf("latência elevada: %s", latency)
	default:
		record.Status = domain.HealthStatusHealthy
	}

	return record
}

func (p *Poller) probeSystem(ctx context.Context, serviceName string, probe ProbeFunc) *domain.HealthRecord {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.HealthMonitor.ProbeTimeout)
	defer cancel()

	start := time.Now()
	err := probe(probeCtx)
	latency := time.Since(start)

	record := &domain.HealthRecord{
		ServiceName: serviceName,
		Latency:     latency,
		CheckedAt:   time.Now(),
	}

	if err != nil {
		record.Status = domain.HealthStatusUnhealthy
		record.Message = err.Error()
	} else {
		record.Status = domain.HealthStatusHealthy
	}

	return record
}
