package syncing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
	melimocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	meliClient          *melimocks.MockClient
	tokenProvider       *melimocks.MockTokenProvider
	companyRepo         *mocks.MockCompanyRepository
	campaignRepo        *mocks.MockCampaignRepository
	metricRepo          *mocks.MockCampaignMetricRepository
	productRepo         *mocks.MockProductRepository
	campaignProductRepo *mocks.MockCampaignProductRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		meliClient:          melimocks.NewMockClient(ctrl),
		tokenProvider:       melimocks.NewMockTokenProvider(ctrl),
		companyRepo:         mocks.NewMockCompanyRepository(ctrl),
		campaignRepo:        mocks.NewMockCampaignRepository(ctrl),
		metricRepo:          mocks.NewMockCampaignMetricRepository(ctrl),
		productRepo:         mocks.NewMockProductRepository(ctrl),
		campaignProductRepo: mocks.NewMockCampaignProductRepository(ctrl),
	}

	cfg := &config.Config{
		CampaignSync: config.CampaignSync{
			LookbackDays:      90,
			MaxActiveProducts: 20,
		},
	}

	service := NewService(
		cfg,
		m.meliClient,
		m.tokenProvider,
		m.companyRepo,
		m.campaignRepo,
		m.metricRepo,
		m.productRepo,
		m.campaignProductRepo,
	)

	return service, m
}

func linkedAccount(companyID string) *domain.CompanyAccount {
	userID := "USER123"
	return &domain.CompanyAccount{
		CompanyID: companyID,
		AccountID: "ACC001",
		SiteID:    "MLB",
		UserID:    &userID,
		Status:    domain.CompanyAccountStatusActive,
	}
}

func TestService_RunSync_FatalResolutionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	ctx := context.Background()
	companyID := "COMP001"

	tests := []struct {
		name        string
		setup       func()
		expectedErr error
	}{
		{
			name: "Empresa sem conta vinculada deve falhar com ErrAccountNotFound",
			setup: func() {
				m.companyRepo.EXPECT().
					GetAccountByCompanyID(ctx, companyID).
					Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name: "Conta sem usuário autorizado deve falhar com ErrUserNotLinked",
			setup: func() {
				account := linkedAccount(companyID)
				account.UserID = nil

				m.companyRepo.EXPECT().
					GetAccountByCompanyID(ctx, companyID).
					Return(account, nil)
			},
			expectedErr: ErrUserNotLinked,
		},
		{
			name: "Token indisponível deve falhar com ErrTokenUnavailable",
			setup: func() {
				m.companyRepo.EXPECT().
					GetAccountByCompanyID(ctx, companyID).
					Return(linkedAccount(companyID), nil)

				m.tokenProvider.EXPECT().
					GetValidAccessToken(ctx, "USER123").
					Return("", assert.AnError)
			},
			expectedErr: ErrTokenUnavailable,
		},
		{
			name: "Nenhum anunciante para o site da conta deve falhar com ErrAdvertiserNotFound",
			setup: func() {
				m.companyRepo.EXPECT().
					GetAccountByCompanyID(ctx, companyID).
					Return(linkedAccount(companyID), nil)

				m.tokenProvider.EXPECT().
					GetValidAccessToken(ctx, "USER123").
					Return("token", nil)

				m.meliClient.EXPECT().
					ListAdvertisers(ctx, "token").
					Return([]melidomain.Advertiser{
						{AdvertiserID: 99, SiteID: "MLA"},
					}, nil)
			},
			expectedErr: ErrAdvertiserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.RunSync(ctx, companyID)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_RunSync_NoCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	ctx := context.Background()
	companyID := "COMP001"

	m.companyRepo.EXPECT().
		GetAccountByCompanyID(ctx, companyID).
		Return(linkedAccount(companyID), nil)

	m.tokenProvider.EXPECT().
		GetValidAccessToken(ctx, "USER123").
		Return("token", nil)

	m.meliClient.EXPECT().
		ListAdvertisers(ctx, "token").
		Return([]melidomain.Advertiser{
			{AdvertiserID: 42, SiteID: "MLB", AdvertiserName: "Loja MLB"},
		}, nil)

	m.meliClient.EXPECT().
		ListCampaigns(ctx, "MLB", int64(42), "token").
		Return([]melidomain.Campaign{}, nil)

	result, err := service.RunSync(ctx, companyID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 0, result.TotalCampaigns)
	assert.Equal(t, 0, result.CampaignsSynced)
}

func TestService_RunSync_PartialFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	ctx := context.Background()
	companyID := "COMP001"
	referenceDate := time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC)

	campaigns := []melidomain.Campaign{
		{ID: 1, Name: "Campanha 1", Status: "active"},
		{ID: 2, Name: "Campanha 2", Status: "active"},
		{ID: 3, Name: "Campanha 3", Status: "paused"},
		{ID: 4, Name: "Campanha 4", Status: "active"},
		{ID: 5, Name: "Campanha 5", Status: "active"},
	}

	m.companyRepo.EXPECT().
		GetAccountByCompanyID(ctx, companyID).
		Return(linkedAccount(companyID), nil)

	m.tokenProvider.EXPECT().
		GetValidAccessToken(ctx, "USER123").
		Return("token", nil)

	m.meliClient.EXPECT().
		ListAdvertisers(ctx, "token").
		Return([]melidomain.Advertiser{
			{AdvertiserID: 42, SiteID: "MLB"},
		}, nil)

	m.meliClient.EXPECT().
		ListCampaigns(ctx, "MLB", int64(42), "token").
		Return(campaigns, nil)

	// Cada campanha vira uma unidade de trabalho própria
	m.campaignRepo.EXPECT().
		SaveOrUpdate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, campaign *domain.Campaign) (string, error) {
			return "local-" + campaign.ExternalID, nil
		}).
		Times(5)

	m.productRepo.EXPECT().
		ListActiveByCompany(ctx, companyID, 20).
		Return([]*domain.Product{}, nil).
		Times(5)

	// A campanha 2 falha na busca de métricas; as demais seguem normalmente
	for _, campaign := range campaigns {
		externalID := campaign.ID
		call := m.meliClient.EXPECT().
			GetCampaignMetrics(ctx, "MLB", externalID, "token", gomock.Any(), gomock.Any())

		if externalID == 2 {
			call.Return(nil, assert.AnError)
			continue
		}

		call.Return([]melidomain.CampaignDailyMetrics{
			{Date: "2024-09-14", Prints: 100, Clicks: 10, Cost: 5.0},
		}, nil)

		localID := "local-" + strconv.FormatInt(externalID, 10)

		m.metricRepo.EXPECT().
			SaveOrUpdateBatch(ctx, gomock.Any()).
			Return(nil)

		m.metricRepo.EXPECT().
			SumByCampaign(ctx, localID).
			Return(&domain.CampaignTotals{Spent: 5, Clicks: 10, Impressions: 100}, nil)

		m.campaignRepo.EXPECT().
			UpdateTotals(ctx, localID, gomock.Any()).
			Return(nil)
	}

	result, err := service.RunSyncWithDate(ctx, companyID, referenceDate)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 5, result.TotalCampaigns)
	assert.Equal(t, 4, result.CampaignsSynced)
	assert.Equal(t, 4, result.MetricsSynced)
}

func TestService_RunSync_RecomputesDerivedTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	ctx := context.Background()
	companyID := "COMP001"
	referenceDate := time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC)

	m.companyRepo.EXPECT().
		GetAccountByCompanyID(ctx, companyID).
		Return(linkedAccount(companyID), nil)

	m.tokenProvider.EXPECT().
		GetValidAccessToken(ctx, "USER123").
		Return("token", nil)

	m.meliClient.EXPECT().
		ListAdvertisers(ctx, "token").
		Return([]melidomain.Advertiser{{AdvertiserID: 42, SiteID: "MLB"}}, nil)

	m.meliClient.EXPECT().
		ListCampaigns(ctx, "MLB", int64(42), "token").
		Return([]melidomain.Campaign{{ID: 7, Name: "Campanha", Status: "active"}}, nil)

	m.campaignRepo.EXPECT().
		SaveOrUpdate(ctx, gomock.Any()).
		Return("local-7", nil)

	// Heurística de produtos: dois produtos ativos associados à campanha
	m.productRepo.EXPECT().
		ListActiveByCompany(ctx, companyID, 20).
		Return([]*domain.Product{
			{ID: "PROD1", CompanyID: companyID, Status: "active"},
			{ID: "PROD2", CompanyID: companyID, Status: "active"},
		}, nil)

	m.campaignProductRepo.EXPECT().
		SaveOrUpdateBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, associations []*domain.CampaignProduct) error {
			assert.Len(t, associations, 2)
			assert.Equal(t, "local-7", associations[0].CampaignID)
			return nil
		})

	m.meliClient.EXPECT().
		GetCampaignMetrics(ctx, "MLB", int64(7), "token", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, _ string, dateFrom, dateTo time.Time) ([]melidomain.CampaignDailyMetrics, error) {
			// Janela móvel de 90 dias ancorada na data de referência
			assert.Equal(t, time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), dateTo)
			assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), dateFrom)

			return []melidomain.CampaignDailyMetrics{
				{Date: "2024-09-12", Prints: 100, Clicks: 10, Cost: 5, TotalAmount: 50, UnitsQuantity: 1},
				{Date: "2024-09-13", Prints: 200, Clicks: 20, Cost: 10, TotalAmount: 100, UnitsQuantity: 2},
				{Date: "2024-09-14", Prints: 300, Clicks: 30, Cost: 15, TotalAmount: 150, UnitsQuantity: 3},
			}, nil
		})

	m.metricRepo.EXPECT().
		SaveOrUpdateBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, metrics []*domain.CampaignMetric) error {
			assert.Len(t, metrics, 3)
			assert.Equal(t, "local-7", metrics[0].CampaignID)
			return nil
		})

	m.metricRepo.EXPECT().
		SumByCampaign(ctx, "local-7").
		Return(&domain.CampaignTotals{
			Spent:       30,
			Clicks:      60,
			Impressions: 600,
			Conversions: 6,
			Revenue:     300,
		}, nil)

	m.campaignRepo.EXPECT().
		UpdateTotals(ctx, "local-7", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, totals *domain.CampaignTotals) error {
			assert.Equal(t, 10.0, totals.CTR)
			assert.Equal(t, 0.5, totals.CPC)
			assert.Equal(t, 10.0, totals.ROAS)
			return nil
		})

	result, err := service.RunSyncWithDate(ctx, companyID, referenceDate)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, result.CampaignsSynced)
	assert.Equal(t, 2, result.ProductsSynced)
	assert.Equal(t, 3, result.MetricsSynced)
}

func TestService_RunSync_ProductHeuristicFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	ctx := context.Background()
	companyID := "COMP001"

	m.companyRepo.EXPECT().
		GetAccountByCompanyID(ctx, companyID).
		Return(linkedAccount(companyID), nil)

	m.tokenProvider.EXPECT().
		GetValidAccessToken(ctx, "USER123").
		Return("token", nil)

	m.meliClient.EXPECT().
		ListAdvertisers(ctx, "token").
		Return([]melidomain.Advertiser{{AdvertiserID: 42, SiteID: "MLB"}}, nil)

	m.meliClient.EXPECT().
		ListCampaigns(ctx, "MLB", int64(42), "token").
		Return([]melidomain.Campaign{{ID: 7, Name: "Campanha", Status: "active"}}, nil)

	m.campaignRepo.EXPECT().
		SaveOrUpdate(ctx, gomock.Any()).
		Return("local-7", nil)

	m.productRepo.EXPECT().
		ListActiveByCompany(ctx, companyID, 20).
		Return(nil, assert.AnError)

	m.meliClient.EXPECT().
		GetCampaignMetrics(ctx, "MLB", int64(7), "token", gomock.Any(), gomock.Any()).
		Return([]melidomain.CampaignDailyMetrics{}, nil)

	m.metricRepo.EXPECT().
		SaveOrUpdateBatch(ctx, gomock.Any()).
		Return(nil)

	m.metricRepo.EXPECT().
		SumByCampaign(ctx, "local-7").
		Return(&domain.CampaignTotals{}, nil)

	m.campaignRepo.EXPECT().
		UpdateTotals(ctx, "local-7", gomock.Any()).
		Return(nil)

	result, err := service.RunSync(ctx, companyID)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.CampaignsSynced)
	assert.Equal(t, 0, result.ProductsSynced)
}
