package attributing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

// Attributor atribui custos de faturamento a uma janela de datas.
// Retorno (nil, nil) significa "sem dados de faturamento": distinto de custo zero,
// para o chamador poder cair num estimador alternativo.
type Attributor interface {
	GetBillingAttribution(ctx context.Context, companyID string, dateFrom, dateTo time.Time) (*domain.BillingAttribution, error)
}

type Service struct {
	billingRepo repository.BillingPeriodRepository
	weights     config.Attribution
}

func NewService(cfg *config.Config, billingRepo repository.BillingPeriodRepository) *Service {
	return &Service{
		billingRepo: billingRepo,
		weights:     cfg.Attribution,
	}
}

// GetBillingAttribution seleciona o melhor subconjunto de períodos de faturamento
// para a janela e agrega os campos monetários dos selecionados
func (s *Service) GetBillingAttribution(ctx context.Context, companyID string, dateFrom, dateTo time.Time) (*domain.BillingAttribution, error) {
	if dateFrom.After(dateTo) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	candidates, err := s.billingRepo.ListOverlapping(ctx, companyID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos de faturamento: %w", err)
	}

	if len(candidates) == 0 {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"date_from":  dateFrom.Format(time.DateOnly),
			"date_to":    dateTo.Format(time.DateOnly),
		}).Info("Nenhum período de faturamento encontrado para a janela")
		return nil, nil
	}

	ranked := rankPeriods(candidates, dateFrom, dateTo, s.weights)
	selected := selectPeriods(ranked)

	attribution := &domain.BillingAttribution{
		CompanyID:    companyID,
		DateFrom:     dateFrom.Format(time.DateOnly),
		DateTo:       dateTo.Format(time.DateOnly),
		PeriodsCount: len(selected),
	}

	for _, period := range selected {
		attribution.AdvertisingCost += period.AdvertisingCost
		attribution.SaleFees += period.SaleFees
		attribution.ShippingFees += period.ShippingFees
	}

	logrus.WithFields(logrus.Fields{
		"company_id":       companyID,
		"candidates":       len(candidates),
		"periods_selected": len(selected),
		"advertising_cost": attribution.AdvertisingCost,
	}).Debug("Atribuição de períodos de faturamento calculada")

	return attribution, nil
}
