package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/api"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/scheduler"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/attributing"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/syncing"
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

	companyRepo := repository.NewCompanyRepository(pgConn)
	billingPeriodRepo := repository.NewBillingPeriodRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	campaignMetricRepo := repository.NewCampaignMetricRepository(pgConn)
	campaignProductRepo := repository.NewCampaignProductRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	oauthTokenRepo := repository.NewOAuthTokenRepository(pgConn)

	meliClient := meliclient.NewClient(cfg)
	tokenManager := meliclient.NewTokenManager(cfg, oauthTokenRepo)

	attributionService := attributing.NewService(cfg, billingPeriodRepo)

	syncService := syncing.NewService(
		cfg,
		meliClient,
		tokenManager,
		companyRepo,
		campaignRepo,
		campaignMetricRepo,
		productRepo,
		campaignProductRepo,
	)

	// Inicializa os agendadores de sincronização separados
	campaignSyncService := scheduler.NewCampaignSyncService(
		companyRepo,
		syncService,
		cfg,
	)

	billingSyncService := scheduler.NewBillingSyncService(
		companyRepo,
		billingPeriodRepo,
		meliClient,
		tokenManager,
		cfg,
	)

	// Inicia os agendadores em background
	if err := campaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas")
	} else {
		logrus.Info("Agendador de sincronização de campanhas iniciado com sucesso")
	}

	if err := billingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de períodos de faturamento")
	} else {
		logrus.Info("Agendador de períodos de faturamento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		attributionService,
		syncService,
		campaignRepo,
		campaignMetricRepo,
		campaignSyncService,
		billingSyncService,
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
