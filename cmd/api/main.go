package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/infrastructure/database/postgres"
	"github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms"
	"github.com/poconverto/analytics-engine-api/infrastructure/integrator/platforms/platformclient"
	"github.com/poconverto/analytics-engine-api/infrastructure/repository"
	"github.com/poconverto/analytics-engine-api/internal/api"
	"github.com/poconverto/analytics-engine-api/internal/config"
	"github.com/poconverto/analytics-engine-api/internal/scheduler"
	"github.com/poconverto/analytics-engine-api/internal/usecases/aggregating"
	"github.com/poconverto/analytics-engine-api/internal/usecases/authenticating"
	"github.com/poconverto/analytics-engine-api/internal/usecases/monitoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	healthRecordRepo := repository.NewHealthRecordRepository(pgConn)
	preferenceRepo := repository.NewMonitoringPreferenceRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	platformClient := platformclient.NewClient(cfg)
	platformIntegrator := platforms.New(cfg, platformClient)

	// Serviço de agregação com cache de snapshots
	aggregatorService := aggregating.NewService(cfg, platformIntegrator, integrationRepo, snapshotRepo)

	// Monitoramento de saúde: sondagem, detecção de quedas e notificação
	healthPoller := monitoring.NewPoller(cfg, platformIntegrator, healthRecordRepo, pgConn)
	notifier := monitoring.NewWebhookNotifier(cfg)
	outageDetector := monitoring.NewDetector(cfg, healthRecordRepo, preferenceRepo, integrationRepo, notifier)

	// Inicializa os agendadores
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		integrationRepo,
		aggregatorService,
		cfg,
	)

	healthMonitorService := scheduler.NewHealthMonitorService(
		healthPoller,
		outageDetector,
		healthRecordRepo,
		cfg,
	)

	// Sondagens internas: a API responde se o processo está vivo; o agendador
	// reporta o heartbeat do último ciclo
	healthPoller.RegisterSystemProbe(monitoring.ServiceAPI, func(_ context.Context) error {
		return nil
	})
	healthPoller.RegisterSystemProbe(monitoring.ServiceScheduler, healthMonitorService.Heartbeat)

	// Inicia os agendadores em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots")
	} else {
		logrus.Info("Agendador de sincronização de snapshots iniciado com sucesso")
	}

	if err := healthMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de saúde")
	} else {
		logrus.Info("Monitor de saúde iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		healthPoller,
		authenticator,
		snapshotSyncService,
		healthMonitorService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
