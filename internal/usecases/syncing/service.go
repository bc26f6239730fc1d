package syncing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// Syncer executa a sincronização completa de campanhas de uma empresa
type Syncer interface {
	RunSync(ctx context.Context, companyID string) (*domain.SyncResult, error)
}

type Service struct {
	cfg                 *config.Config
	meliClient          meliclient.Client
	tokenProvider       meliclient.TokenProvider
	companyRepo         repository.CompanyRepository
	campaignRepo        repository.CampaignRepository
	metricRepo          repository.CampaignMetricRepository
	productRepo         repository.ProductRepository
	campaignProductRepo repository.CampaignProductRepository
}

func NewService(
	cfg *config.Config,
	meliClient meliclient.Client,
	tokenProvider meliclient.TokenProvider,
	companyRepo repository.CompanyRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	productRepo repository.ProductRepository,
	campaignProductRepo repository.CampaignProductRepository,
) *Service {
	return &Service{
		cfg:                 cfg,
		meliClient:          meliClient,
		tokenProvider:       tokenProvider,
		companyRepo:         companyRepo,
		campaignRepo:        campaignRepo,
		metricRepo:          metricRepo,
		productRepo:         productRepo,
		campaignProductRepo: campaignProductRepo,
	}
}

// RunSync sincroniza campanhas, produtos e métricas da empresa. Falhas de
// resolução (conta, usuário, token, anunciante) encerram a empresa; falhas por
// campanha são registradas e a execução segue para a próxima campanha.
func (s *Service) RunSync(ctx context.Context, companyID string) (*domain.SyncResult, error) {
	return s.RunSyncWithDate(ctx, companyID, time.Now())
}

// RunSyncWithDate é a variante com data de referência explícita, usada nos testes
func (s *Service) RunSyncWithDate(ctx context.Context, companyID string, referenceDate time.Time) (*domain.SyncResult, error) {
	result := &domain.SyncResult{
		CompanyID: companyID,
		StartedAt: referenceDate,
	}

	account, err := s.resolveAccount(ctx, companyID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenProvider.GetValidAccessToken(ctx, *account.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}

	advertiser, err := s.resolveAdvertiser(ctx, account, accessToken)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.meliClient.ListCampaigns(ctx, account.SiteID, advertiser.AdvertiserID, accessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas do anunciante: %w", err)
	}

	result.TotalCampaigns = len(campaigns)

	for _, campaign := range campaigns {
		if err := s.syncCampaign(ctx, account, advertiser, accessToken, campaign, referenceDate, result); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id":  companyID,
				"campaign_id": campaign.ID,
				"error":       err,
			}).Error("Erro ao sincronizar campanha, seguindo para a próxima")
			continue
		}
		result.CampaignsSynced++
	}

	result.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"company_id":       companyID,
		"total_campaigns":  result.TotalCampaigns,
		"campaigns_synced": result.CampaignsSynced,
		"products_synced":  result.ProductsSynced,
		"metrics_synced":   result.MetricsSynced,
	}).Info("Sincronização de campanhas da empresa concluída")

	return result, nil
}

// resolveAccount valida o vínculo empresa/conta/usuário antes de qualquer chamada externa
func (s *Service) resolveAccount(ctx context.Context, companyID string) (*domain.CompanyAccount, error) {
	account, err := s.companyRepo.GetAccountByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta da empresa: %w", err)
	}

	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, companyID)
	}

	if account.UserID == nil || *account.UserID == "" {
		return nil, fmt.Errorf("%w: %s", ErrUserNotLinked, companyID)
	}

	return account, nil
}

// resolveAdvertiser encontra o anunciante de Product Ads do site da conta
func (s *Service) resolveAdvertiser(ctx context.Context, account *domain.CompanyAccount, accessToken string) (*melidomain.Advertiser, error) {
	advertisers, err := s.meliClient.ListAdvertisers(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anunciantes: %w", err)
	}

	for i := range advertisers {
		if advertisers[i].SiteID == account.SiteID {
			return &advertisers[i], nil
		}
	}

	return nil, fmt.Errorf("%w: site %s", ErrAdvertiserNotFound, account.SiteID)
}

// syncCampaign é a unidade de trabalho da sincronização: upsert da campanha,
// associação heurística de produtos, métricas diárias e recálculo de totais.
// Cada etapa confirma por conta própria; a falha aqui nunca desfaz campanhas
// já sincronizadas na mesma execução.
func (s *Service) syncCampaign(
	ctx context.Context,
	account *domain.CompanyAccount,
	advertiser *melidomain.Advertiser,
	accessToken string,
	external melidomain.Campaign,
	referenceDate time.Time,
	result *domain.SyncResult,
) error {
	now := time.Now()

	campaign := &domain.Campaign{
		CompanyID:    account.CompanyID,
		AccountID:    account.AccountID,
		ExternalID:   strconv.FormatInt(external.ID, 10),
		AdvertiserID: strconv.FormatInt(advertiser.AdvertiserID, 10),
		Name:         external.Name,
		Status:       domain.NormalizeCampaignStatus(external.Status),
		DailyBudget:  external.Budget,
		LastSyncAt:   &now,
	}

	localID, err := s.campaignRepo.SaveOrUpdate(ctx, campaign)
	if err != nil {
		return fmt.Errorf("erro ao salvar campanha: %w", err)
	}

	// Associação best-effort: a falha não derruba a campanha
	productsSynced, err := s.AssociateActiveProductsHeuristic(ctx, account.CompanyID, localID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id":  account.CompanyID,
			"campaign_id": localID,
			"error":       err,
		}).Warn("Erro ao associar produtos ativos à campanha")
	} else {
		result.ProductsSynced += productsSynced
	}

	metricsSynced, err := s.syncMetrics(ctx, account.SiteID, external.ID, localID, accessToken, referenceDate)
	if err != nil {
		return err
	}
	result.MetricsSynced += metricsSynced

	if err := s.recomputeTotals(ctx, localID); err != nil {
		return err
	}

	return nil
}

// AssociateActiveProductsHeuristic vincula à campanha os produtos ativos da
// empresa, limitados ao teto configurado. A API externa não expõe a lista real de
// produtos por campanha; isto é uma aproximação assumida, à espera de um endpoint
// melhor, e não deve ser "corrigida" silenciosamente.
func (s *Service) AssociateActiveProductsHeuristic(ctx context.Context, companyID, campaignID string) (int, error) {
	products, err := s.productRepo.ListActiveByCompany(ctx, companyID, s.cfg.CampaignSync.MaxActiveProducts)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar produtos ativos: %w", err)
	}

	if len(products) == 0 {
		return 0, nil
	}

	associations := make([]*domain.CampaignProduct, 0, len(products))
	for _, product := range products {
		associations = append(associations, &domain.CampaignProduct{
			CampaignID: campaignID,
			ProductID:  product.ID,
		})
	}

	if err := s.campaignProductRepo.SaveOrUpdateBatch(ctx, associations); err != nil {
		return 0, fmt.Errorf("erro ao salvar produtos da campanha: %w", err)
	}

	return len(associations), nil
}

// syncMetrics busca a janela móvel de métricas diárias e grava o lote inteiro em
// uma única transação por campanha
func (s *Service) syncMetrics(
	ctx context.Context,
	siteID string,
	externalCampaignID int64,
	campaignID string,
	accessToken string,
	referenceDate time.Time,
) (int, error) {
	dateTo := utils.TruncateToDay(referenceDate)
	dateFrom := dateTo.AddDate(0, 0, -s.cfg.CampaignSync.LookbackDays)

	dailyMetrics, err := s.meliClient.GetCampaignMetrics(ctx, siteID, externalCampaignID, accessToken, dateFrom, dateTo)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar métricas da campanha: %w", err)
	}

	metrics := make([]*domain.CampaignMetric, 0, len(dailyMetrics))
	for _, daily := range dailyMetrics {
		metricDate, err := time.Parse(time.DateOnly, daily.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"date":        daily.Date,
			}).Warn("Métrica diária com data inválida ignorada")
			continue
		}

		metrics = append(metrics, &domain.CampaignMetric{
			CampaignID:               campaignID,
			MetricDate:               metricDate,
			Impressions:              daily.Prints,
			Clicks:                   daily.Clicks,
			Spent:                    daily.Cost,
			DirectItemsQuantity:      daily.DirectItemsQuantity,
			DirectUnitsQuantity:      daily.DirectUnitsQuantity,
			DirectAmount:             daily.DirectAmount,
			IndirectItemsQuantity:    daily.IndirectItemsQuantity,
			IndirectUnitsQuantity:    daily.IndirectUnitsQuantity,
			IndirectAmount:           daily.IndirectAmount,
			AdvertisingItemsQuantity: daily.AdvertisingItemsQuantity,
			UnitsQuantity:            daily.UnitsQuantity,
			TotalAmount:              daily.TotalAmount,
			OrganicItemsQuantity:     daily.OrganicItemsQuantity,
			OrganicUnitsQuantity:     daily.OrganicUnitsQuantity,
			OrganicUnitsAmount:       daily.OrganicUnitsAmount,
			Acos:                     daily.Acos,
			Cvr:                      daily.Cvr,
			Roas:                     daily.Roas,
			Sov:                      daily.Sov,
		})
	}

	if err := s.metricRepo.SaveOrUpdateBatch(ctx, metrics); err != nil {
		return 0, fmt.Errorf("erro ao salvar métricas da campanha: %w", err)
	}

	return len(metrics), nil
}

// recomputeTotals reagrega as métricas armazenadas e sobrescreve os totais da
// campanha. O recálculo é sempre total, nunca incremental
func (s *Service) recomputeTotals(ctx context.Context, campaignID string) error {
	totals, err := s.metricRepo.SumByCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("erro ao agregar métricas da campanha: %w", err)
	}

	ComputeDerivedTotals(totals)

	if err := s.campaignRepo.UpdateTotals(ctx, campaignID, totals); err != nil {
		return fmt.Errorf("erro ao atualizar totais da campanha: %w", err)
	}

	return nil
}
