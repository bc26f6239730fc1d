package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/syncing"
)

// CampaignSyncConfig representa a configuração do agendador de sincronização de campanhas
type CampaignSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	CompanyBudgetMin    int
	SyncEnabled         bool
}

// CampaignSyncService gerencia o agendamento e execução da sincronização de
// campanhas de todas as empresas vinculadas. O lote roda em instância única:
// empresas são processadas em sequência, cada uma com orçamento de tempo próprio.
type CampaignSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignSyncConfig
	companyRepo         repository.CompanyRepository
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCampaignSyncService cria uma nova instância do serviço de sincronização de campanhas
func NewCampaignSyncService(
	companyRepo repository.CompanyRepository,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule:        appConfig.CampaignSync.CronSchedule,
		RequestDelaySeconds: appConfig.CampaignSync.RequestDelaySeconds,
		CompanyBudgetMin:    appConfig.CampaignSync.CompanyBudgetMin,
		SyncEnabled:         appConfig.CampaignSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"company_budget_min":    syncConfig.CompanyBudgetMin,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de campanhas carregada")

	return &CampaignSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		companyRepo: companyRepo,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCompanies(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCompanies sincroniza as campanhas de todas as empresas vinculadas
func (s *CampaignSyncService) syncAllCompanies(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de campanhas já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de campanhas para todas as empresas vinculadas")

	companies, err := s.companyRepo.ListLinkedCompanies(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de empresas para sincronização de campanhas")
		return
	}

	if len(companies) == 0 {
		logrus.Info("Nenhuma empresa vinculada encontrada para sincronização de campanhas")
		return
	}

	synced, failed := s.processCompanies(ctx, companies)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"companies": len(companies),
		"synced":    synced,
		"failed":    failed,
	}).Info("Sincronização de campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processCompanies processa as empresas em sequência. A falha de uma empresa
// nunca interrompe o lote; o delay entre empresas evita sobrecarga na API externa.
func (s *CampaignSyncService) processCompanies(ctx context.Context, companies []*domain.CompanyAccount) (int, int) {
	var synced, failed int

	for i, company := range companies {
		if i > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		if err := s.processCompany(ctx, company); err != nil {
			failed++
			continue
		}
		synced++
	}

	return synced, failed
}

// processCompany executa a sincronização de uma empresa dentro do orçamento de
// tempo configurado
func (s *CampaignSyncService) processCompany(ctx context.Context, company *domain.CompanyAccount) error {
	companyCtx := ctx
	if s.config.CompanyBudgetMin > 0 {
		var cancel context.CancelFunc
		companyCtx, cancel = context.WithTimeout(ctx, time.Duration(s.config.CompanyBudgetMin)*time.Minute)
		defer cancel()
	}

	logrus.WithFields(logrus.Fields{
		"company_id": company.CompanyID,
		"account_id": company.AccountID,
		"site_id":    company.SiteID,
	}).Info("Processando sincronização de campanhas para empresa")

	result, err := s.syncer.RunSync(companyCtx, company.CompanyID)
	if err != nil {
		fields := logrus.Fields{
			"company_id": company.CompanyID,
			"error":      err.Error(),
		}

		// Empresas mal configuradas são esperadas no lote; só falhas reais sobem o nível
		if errors.Is(err, syncing.ErrAccountNotFound) ||
			errors.Is(err, syncing.ErrUserNotLinked) ||
			errors.Is(err, syncing.ErrTokenUnavailable) ||
			errors.Is(err, syncing.ErrAdvertiserNotFound) {
			logrus.WithFields(fields).Warn("Empresa ignorada na sincronização de campanhas")
		} else {
			logrus.WithFields(fields).Error("Erro ao sincronizar campanhas da empresa")
		}

		return err
	}

	logrus.WithFields(logrus.Fields{
		"company_id":       company.CompanyID,
		"total_campaigns":  result.TotalCampaigns,
		"campaigns_synced": result.CampaignsSynced,
		"metrics_synced":   result.MetricsSynced,
	}).Info("Empresa sincronizada com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de campanhas
func (s *CampaignSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de campanhas")
	go s.syncAllCompanies(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_company_budget_m":  s.config.CompanyBudgetMin,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
