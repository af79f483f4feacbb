package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Platforms     Platforms     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	CacheGate     CacheGate     `mapstructure:",squash"`
	SnapshotSync  SnapshotSync  `mapstructure:",squash"`
	HealthMonitor HealthMonitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Platforms configura o mecanismo uniforme de chamada das funções de
// plataforma (uma função isolada por rede)
type Platforms struct {
	BaseURL        string        `mapstructure:"platforms_base_url"`
	AccessToken    string        `mapstructure:"platforms_access_token"`
	RequestTimeout time.Duration `mapstructure:"platforms_request_timeout"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// CacheGate define a janela de frescor dos snapshots servidos do cache
type CacheGate struct {
	FreshnessWindow time.Duration `mapstructure:"cache_freshness_window"`
}

type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
}

type HealthMonitor struct {
	PollInterval         time.Duration `mapstructure:"health_poll_interval"`
	ProbeTimeout         time.Duration `mapstructure:"health_probe_timeout"`
	LatencyBudget        time.Duration `mapstructure:"health_latency_budget"`
	ContinuousFailure    time.Duration `mapstructure:"health_continuous_failure_threshold"`
	AlertCooldown        time.Duration `mapstructure:"health_alert_cooldown"`
	RetentionDays        int           `mapstructure:"health_retention_days"`
	NotifyWebhookURL     string        `mapstructure:"health_notify_webhook_url"`
	NotifyWebhookTimeout time.Duration `mapstructure:"health_notify_webhook_timeout"`
	Enabled              bool          `mapstructure:"health_monitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PLATFORMS_BASE_URL", "http://localhost:9000")
	viper.SetDefault("PLATFORMS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("PLATFORMS_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Janela de frescor do cache de snapshots
	viper.SetDefault("CACHE_FRESHNESS_WINDOW", "15m")

	// Defaults para sincronização diária de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre clientes
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 clientes concorrentes
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	// Defaults para o monitor de saúde
	viper.SetDefault("HEALTH_POLL_INTERVAL", "1m")
	viper.SetDefault("HEALTH_PROBE_TIMEOUT", "5s")
	viper.SetDefault("HEALTH_LATENCY_BUDGET", "2s")
	viper.SetDefault("HEALTH_CONTINUOUS_FAILURE_THRESHOLD", "5m")
	viper.SetDefault("HEALTH_ALERT_COOLDOWN", "15m")
	viper.SetDefault("HEALTH_RETENTION_DAYS", 30)
	viper.SetDefault("HEALTH_NOTIFY_WEBHOOK_URL", "")
	viper.SetDefault("HEALTH_NOTIFY_WEBHOOK_TIMEOUT", "10s")
	viper.SetDefault("HEALTH_MONITOR_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_VERSION", "dev")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
