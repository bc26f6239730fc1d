package syncing

import (
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// ComputeDerivedTotals preenche os índices derivados a partir dos agregados brutos.
// Denominador zero resulta em índice zero, nunca em pânico:
//   - ctr: cliques por impressão, em percentual;
//   - cpc: custo por clique;
//   - roas: receita por unidade de custo.
func ComputeDerivedTotals(totals *domain.CampaignTotals) {
	totals.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(totals.Clicks), float64(totals.Impressions)) * 100)
	totals.CPC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totals.Spent, float64(totals.Clicks)))
	totals.ROAS = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totals.Revenue, totals.Spent))
}
