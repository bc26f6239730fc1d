package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
	melimocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBillingSyncService_syncCompanyBillingPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBillingRepo := mocks.NewMockBillingPeriodRepository(ctrl)
	mockMeliClient := melimocks.NewMockClient(ctrl)
	mockTokenProvider := melimocks.NewMockTokenProvider(ctrl)

	service := &BillingSyncService{
		config: BillingSyncConfig{
			PeriodsLimit: 12,
		},
		billingRepo:   mockBillingRepo,
		meliClient:    mockMeliClient,
		tokenProvider: mockTokenProvider,
	}

	ctx := context.Background()

	t.Run("Períodos retornados pela API são espelhados com upsert", func(t *testing.T) {
		company := linkedCompany("COMP001")

		mockTokenProvider.EXPECT().
			GetValidAccessToken(ctx, "USER-COMP001").
			Return("token", nil)

		mockMeliClient.EXPECT().
			ListBillingPeriods(ctx, "token", 12).
			Return([]melidomain.BillingPeriod{
				{
					Period:          melidomain.PeriodBounds{DateFrom: "2024-09-01", DateTo: "2024-09-30"},
					AdvertisingCost: 1162.99,
					SaleFees:        200.00,
					Status:          "CLOSED",
				},
				{
					Period:          melidomain.PeriodBounds{DateFrom: "2024-10-01", DateTo: "2024-10-31"},
					AdvertisingCost: 680.41,
					Status:          "OPEN",
				},
			}, nil)

		mockBillingRepo.EXPECT().
			SaveOrUpdate(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, period *domain.BillingPeriod) error {
				assert.Equal(t, "COMP001", period.CompanyID)
				assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), period.PeriodFrom)
				assert.Equal(t, 1162.99, period.AdvertisingCost)
				assert.True(t, period.IsClosed)
				return nil
			})

		mockBillingRepo.EXPECT().
			SaveOrUpdate(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, period *domain.BillingPeriod) error {
				assert.Equal(t, 680.41, period.AdvertisingCost)
				assert.False(t, period.IsClosed)
				return nil
			})

		err := service.syncCompanyBillingPeriods(ctx, company)

		assert.NoError(t, err)
	})

	t.Run("Período com data inválida é ignorado sem derrubar a empresa", func(t *testing.T) {
		company := linkedCompany("COMP001")

		mockTokenProvider.EXPECT().
			GetValidAccessToken(ctx, "USER-COMP001").
			Return("token", nil)

		mockMeliClient.EXPECT().
			ListBillingPeriods(ctx, "token", 12).
			Return([]melidomain.BillingPeriod{
				{
					Period: melidomain.PeriodBounds{DateFrom: "data-invalida", DateTo: "2024-09-30"},
				},
			}, nil)

		err := service.syncCompanyBillingPeriods(ctx, company)

		assert.NoError(t, err)
	})

	t.Run("Empresa sem usuário autorizado deve falhar", func(t *testing.T) {
		company := linkedCompany("COMP001")
		company.UserID = nil

		err := service.syncCompanyBillingPeriods(ctx, company)

		assert.Error(t, err)
	})

	t.Run("Falha na API externa deve ser propagada", func(t *testing.T) {
		company := linkedCompany("COMP001")

		mockTokenProvider.EXPECT().
			GetValidAccessToken(ctx, "USER-COMP001").
			Return("token", nil)

		mockMeliClient.EXPECT().
			ListBillingPeriods(ctx, "token", 12).
			Return(nil, assert.AnError)

		err := service.syncCompanyBillingPeriods(ctx, company)

		assert.Error(t, err)
	})
}
