package attributing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(billingRepo *mocks.MockBillingPeriodRepository) *Service {
	return &Service{
		billingRepo: billingRepo,
		weights:     defaultWeights(),
	}
}

func TestService_GetBillingAttribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBillingRepo := mocks.NewMockBillingPeriodRepository(ctrl)
	service := newTestService(mockBillingRepo)

	ctx := context.Background()
	companyID := "COMP001"

	tests := []struct {
		name     string
		dateFrom time.Time
		dateTo   time.Time
		setup    func()
		validate func(t *testing.T, result *domain.BillingAttribution, err error)
	}{
		{
			name:     "Sem períodos candidatos deve retornar resultado nulo sem erro",
			dateFrom: date(2024, time.September, 1),
			dateTo:   date(2024, time.September, 30),
			setup: func() {
				mockBillingRepo.EXPECT().
					ListOverlapping(ctx, companyID, date(2024, time.September, 1), date(2024, time.September, 30)).
					Return([]*domain.BillingPeriod{}, nil)
			},
			validate: func(t *testing.T, result *domain.BillingAttribution, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:     "Fatura reemitida com limites diferentes não deve ser somada duas vezes",
			dateFrom: date(2024, time.September, 1),
			dateTo:   date(2024, time.September, 30),
			setup: func() {
				mockBillingRepo.EXPECT().
					ListOverlapping(ctx, companyID, date(2024, time.September, 1), date(2024, time.September, 30)).
					Return([]*domain.BillingPeriod{
						{
							ID:              "wide",
							CompanyID:       companyID,
							PeriodFrom:      date(2024, time.August, 15),
							PeriodTo:        date(2024, time.October, 15),
							AdvertisingCost: 1843.40,
						},
						{
							ID:              "tight",
							CompanyID:       companyID,
							PeriodFrom:      date(2024, time.September, 1),
							PeriodTo:        date(2024, time.September, 30),
							AdvertisingCost: 1162.99,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BillingAttribution, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 1162.99, result.AdvertisingCost)
				assert.Equal(t, 1, result.PeriodsCount)
			},
		},
		{
			name:     "Períodos sem sobreposição devem ser somados para cobrir a janela",
			dateFrom: date(2024, time.August, 1),
			dateTo:   date(2024, time.October, 31),
			setup: func() {
				mockBillingRepo.EXPECT().
					ListOverlapping(ctx, companyID, date(2024, time.August, 1), date(2024, time.October, 31)).
					Return([]*domain.BillingPeriod{
						{
							ID:              "august",
							CompanyID:       companyID,
							PeriodFrom:      date(2024, time.August, 1),
							PeriodTo:        date(2024, time.August, 31),
							AdvertisingCost: 1444.50,
							SaleFees:        200.00,
						},
						{
							ID:              "october",
							CompanyID:       companyID,
							PeriodFrom:      date(2024, time.October, 1),
							PeriodTo:        date(2024, time.October, 31),
							AdvertisingCost: 680.41,
							SaleFees:        100.00,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BillingAttribution, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.InDelta(t, 2124.91, result.AdvertisingCost, 0.0001)
				assert.InDelta(t, 300.00, result.SaleFees, 0.0001)
				assert.Equal(t, 2, result.PeriodsCount)
			},
		},
		{
			name:     "Janela coberta por um único período retorna o valor exato dele",
			dateFrom: date(2024, time.August, 1),
			dateTo:   date(2024, time.August, 31),
			setup: func() {
				mockBillingRepo.EXPECT().
					ListOverlapping(ctx, companyID, date(2024, time.August, 1), date(2024, time.August, 31)).
					Return([]*domain.BillingPeriod{
						{
							ID:              "august",
							CompanyID:       companyID,
							PeriodFrom:      date(2024, time.August, 1),
							PeriodTo:        date(2024, time.August, 31),
							AdvertisingCost: 1444.50,
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BillingAttribution, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 1444.50, result.AdvertisingCost)
				assert.Equal(t, 1, result.PeriodsCount)
			},
		},
		{
			name:     "Erro do repositório deve ser propagado",
			dateFrom: date(2024, time.September, 1),
			dateTo:   date(2024, time.September, 30),
			setup: func() {
				mockBillingRepo.EXPECT().
					ListOverlapping(ctx, companyID, gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, result *domain.BillingAttribution, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetBillingAttribution(ctx, companyID, tt.dateFrom, tt.dateTo)

			tt.validate(t, result, err)
		})
	}
}

func TestService_GetBillingAttribution_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBillingRepo := mocks.NewMockBillingPeriodRepository(ctrl)
	service := newTestService(mockBillingRepo)

	result, err := service.GetBillingAttribution(
		context.Background(),
		"COMP001",
		date(2024, time.September, 30),
		date(2024, time.September, 1),
	)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestNewService(t *testing.T) {
	cfg := &config.Config{
		Attribution: defaultWeights(),
	}

	service := NewService(cfg, nil)

	assert.NotNil(t, service)
	assert.Equal(t, 3.0, service.weights.EndsInMonthWeight)
}
