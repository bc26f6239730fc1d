package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meli         Meli         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
	BillingSync  BillingSync  `mapstructure:",squash"`
	Attribution  Attribution  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Meli struct {
	BaseURL        string `mapstructure:"meli_base_url"`
	AppID          string `mapstructure:"meli_app_id"`
	AppSecret      string `mapstructure:"meli_app_secret"`
	TimeoutSeconds int    `mapstructure:"meli_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type CampaignSync struct {
	CronSchedule        string `mapstructure:"campaign_sync_cron"`
	LookbackDays        int    `mapstructure:"campaign_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"campaign_sync_request_delay_seconds"`
	CompanyBudgetMin    int    `mapstructure:"campaign_sync_company_budget_minutes"`
	MaxActiveProducts   int    `mapstructure:"campaign_sync_max_active_products"`
	Enabled             bool   `mapstructure:"campaign_sync_enabled"`
}

type BillingSync struct {
	CronSchedule string `mapstructure:"billing_sync_cron"`
	PeriodsLimit int    `mapstructure:"billing_sync_periods_limit"`
	Enabled      bool   `mapstructure:"billing_sync_enabled"`
}

// Attribution contém os pesos de pontuação da seleção de períodos de faturamento.
// Os valores padrão foram ajustados empiricamente contra dados observados; trate-os
// como constantes configuráveis, não como contrato.
type Attribution struct {
	EndsInMonthWeight       float64 `mapstructure:"attribution_ends_in_month_weight"`
	StartsInMonthWeight     float64 `mapstructure:"attribution_starts_in_month_weight"`
	LongPeriodThresholdDays int     `mapstructure:"attribution_long_period_threshold_days"`
	LongPeriodPenalty       float64 `mapstructure:"attribution_long_period_penalty"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketplace_ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MELI_BASE_URL", "https://api.mercadolibre.com")
	viper.SetDefault("MELI_APP_ID", "your_app_id")
	viper.SetDefault("MELI_APP_SECRET", "your_app_secret")
	viper.SetDefault("MELI_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de campanhas
	viper.SetDefault("CAMPAIGN_SYNC_CRON", "0 3 * * *")              // Todos os dias às 3h da manhã
	viper.SetDefault("CAMPAIGN_SYNC_LOOKBACK_DAYS", 90)              // Janela móvel de métricas diárias
	viper.SetDefault("CAMPAIGN_SYNC_REQUEST_DELAY_SECONDS", 2)       // 2 segundos entre empresas
	viper.SetDefault("CAMPAIGN_SYNC_COMPANY_BUDGET_MINUTES", 20)     // Orçamento de tempo por empresa
	viper.SetDefault("CAMPAIGN_SYNC_MAX_ACTIVE_PRODUCTS", 20)        // Teto da heurística de produtos
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", false)

	// Defaults para sincronização de períodos de faturamento
	viper.SetDefault("BILLING_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("BILLING_SYNC_PERIODS_LIMIT", 12) // Últimos 12 períodos
	viper.SetDefault("BILLING_SYNC_ENABLED", false)

	// Pesos da atribuição de períodos de faturamento
	viper.SetDefault("ATTRIBUTION_ENDS_IN_MONTH_WEIGHT", 3.0)
	viper.SetDefault("ATTRIBUTION_STARTS_IN_MONTH_WEIGHT", 2.0)
	viper.SetDefault("ATTRIBUTION_LONG_PERIOD_THRESHOLD_DAYS", 60)
	viper.SetDefault("ATTRIBUTION_LONG_PERIOD_PENALTY", 1.0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
