package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

// BillingSyncConfig representa a configuração do agendador de períodos de faturamento
type BillingSyncConfig struct {
	CronSchedule string
	PeriodsLimit int
	SyncEnabled  bool
}

// BillingSyncService espelha localmente os períodos de faturamento emitidos pelo
// marketplace para cada empresa vinculada. Períodos nunca são removidos; o upsert
// preserva a transição única de aberto para fechado.
type BillingSyncService struct {
	scheduler           *gocron.Scheduler
	config              BillingSyncConfig
	companyRepo         repository.CompanyRepository
	billingRepo         repository.BillingPeriodRepository
	meliClient          meliclient.Client
	tokenProvider       meliclient.TokenProvider
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewBillingSyncService cria uma nova instância do serviço de sincronização de faturamento
func NewBillingSyncService(
	companyRepo repository.CompanyRepository,
	billingRepo repository.BillingPeriodRepository,
	meliClient meliclient.Client,
	tokenProvider meliclient.TokenProvider,
	appConfig *config.Config,
) *BillingSyncService {
	syncConfig := BillingSyncConfig{
		CronSchedule: appConfig.BillingSync.CronSchedule,
		PeriodsLimit: appConfig.BillingSync.PeriodsLimit,
		SyncEnabled:  appConfig.BillingSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"periods_limit": syncConfig.PeriodsLimit,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de períodos de faturamento carregada")

	return &BillingSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		companyRepo:   companyRepo,
		billingRepo:   billingRepo,
		meliClient:    meliClient,
		tokenProvider: tokenProvider,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *BillingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de períodos de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de períodos de faturamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBillingPeriods(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de períodos de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de períodos de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllBillingPeriods espelha os períodos de faturamento de todas as empresas vinculadas
func (s *BillingSyncService) syncAllBillingPeriods(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de períodos de faturamento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de períodos de faturamento para todas as empresas vinculadas")

	companies, err := s.companyRepo.ListLinkedCompanies(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de empresas para sincronização de faturamento")
		return
	}

	var synced, failed int
	for _, company := range companies {
		if err := s.syncCompanyBillingPeriods(ctx, company); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.CompanyID,
				"error":      err.Error(),
			}).Error("Erro ao sincronizar períodos de faturamento da empresa")
			failed++
			continue
		}
		synced++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"companies": len(companies),
		"synced":    synced,
		"failed":    failed,
	}).Info("Sincronização de períodos de faturamento concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncCompanyBillingPeriods busca e espelha os períodos recentes de uma empresa
func (s *BillingSyncService) syncCompanyBillingPeriods(ctx context.Context, company *domain.CompanyAccount) error {
	if company.UserID == nil || *company.UserID == "" {
		return fmt.Errorf("empresa sem usuário autorizado no marketplace: %s", company.CompanyID)
	}

	accessToken, err := s.tokenProvider.GetValidAccessToken(ctx, *company.UserID)
	if err != nil {
		return fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	periods, err := s.meliClient.ListBillingPeriods(ctx, accessToken, s.config.PeriodsLimit)
	if err != nil {
		return fmt.Errorf("erro ao listar períodos de faturamento: %w", err)
	}

	var saved int
	for _, external := range periods {
		periodFrom, err := time.Parse(time.DateOnly, external.Period.DateFrom)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.CompanyID,
				"date_from":  external.Period.DateFrom,
			}).Warn("Período de faturamento com data inicial inválida ignorado")
			continue
		}

		periodTo, err := time.Parse(time.DateOnly, external.Period.DateTo)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.CompanyID,
				"date_to":    external.Period.DateTo,
			}).Warn("Período de faturamento com data final inválida ignorado")
			continue
		}

		period := &domain.BillingPeriod{
			CompanyID:       company.CompanyID,
			PeriodFrom:      periodFrom,
			PeriodTo:        periodTo,
			AdvertisingCost: external.AdvertisingCost,
			SaleFees:        external.SaleFees,
			ShippingFees:    external.ShippingFees,
			IsClosed:        external.IsClosed(),
		}

		if err := s.billingRepo.SaveOrUpdate(ctx, period); err != nil {
			return fmt.Errorf("erro ao salvar período de faturamento: %w", err)
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"company_id": company.CompanyID,
		"periods":    saved,
	}).Info("Períodos de faturamento da empresa espelhados")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de períodos de faturamento
func (s *BillingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de períodos de faturamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de períodos de faturamento")
	go s.syncAllBillingPeriods(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *BillingSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_periods_limit":     s.config.PeriodsLimit,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
