package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	syncingmocks "github.com/vfg2006/marketplace-ads-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func linkedCompany(companyID string) *domain.CompanyAccount {
	userID := "USER-" + companyID
	return &domain.CompanyAccount{
		CompanyID: companyID,
		AccountID: "ACC-" + companyID,
		SiteID:    "MLB",
		UserID:    &userID,
		Status:    domain.CompanyAccountStatusActive,
	}
}

func TestCampaignSyncService_processCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncingmocks.NewMockSyncer(ctrl)

	service := &CampaignSyncService{
		config: CampaignSyncConfig{
			RequestDelaySeconds: 0,
			CompanyBudgetMin:    1,
		},
		syncer: mockSyncer,
	}

	ctx := context.Background()

	tests := []struct {
		name           string
		companies      []*domain.CompanyAccount
		setup          func()
		expectedSynced int
		expectedFailed int
	}{
		{
			name: "Falha de uma empresa não interrompe o lote",
			companies: []*domain.CompanyAccount{
				linkedCompany("COMP001"),
				linkedCompany("COMP002"),
				linkedCompany("COMP003"),
			},
			setup: func() {
				mockSyncer.EXPECT().
					RunSync(gomock.Any(), "COMP001").
					Return(&domain.SyncResult{CompanyID: "COMP001", CampaignsSynced: 3}, nil)

				mockSyncer.EXPECT().
					RunSync(gomock.Any(), "COMP002").
					Return(nil, assert.AnError)

				mockSyncer.EXPECT().
					RunSync(gomock.Any(), "COMP003").
					Return(&domain.SyncResult{CompanyID: "COMP003", CampaignsSynced: 1}, nil)
			},
			expectedSynced: 2,
			expectedFailed: 1,
		},
		{
			name: "Todas as empresas sincronizadas com sucesso",
			companies: []*domain.CompanyAccount{
				linkedCompany("COMP001"),
				linkedCompany("COMP002"),
			},
			setup: func() {
				mockSyncer.EXPECT().
					RunSync(gomock.Any(), gomock.Any()).
					Return(&domain.SyncResult{}, nil).
					Times(2)
			},
			expectedSynced: 2,
			expectedFailed: 0,
		},
		{
			name:           "Lote vazio não chama o sincronizador",
			companies:      []*domain.CompanyAccount{},
			setup:          func() {},
			expectedSynced: 0,
			expectedFailed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			synced, failed := service.processCompanies(ctx, tt.companies)

			assert.Equal(t, tt.expectedSynced, synced)
			assert.Equal(t, tt.expectedFailed, failed)
		})
	}
}

func TestCampaignSyncService_processCompany_AppliesTimeBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncingmocks.NewMockSyncer(ctrl)

	service := &CampaignSyncService{
		config: CampaignSyncConfig{
			CompanyBudgetMin: 20,
		},
		syncer: mockSyncer,
	}

	mockSyncer.EXPECT().
		RunSync(gomock.Any(), "COMP001").
		DoAndReturn(func(ctx context.Context, _ string) (*domain.SyncResult, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(20*time.Minute), deadline, time.Minute)
			return &domain.SyncResult{}, nil
		})

	err := service.processCompany(context.Background(), linkedCompany("COMP001"))

	assert.NoError(t, err)
}

func TestCampaignSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)

	service := &CampaignSyncService{
		config: CampaignSyncConfig{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 2,
			CompanyBudgetMin:    20,
			SyncEnabled:         true,
		},
		companyRepo: mockCompanyRepo,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 20, status["sync_company_budget_m"])
}
