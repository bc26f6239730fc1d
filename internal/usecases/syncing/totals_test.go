package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

func TestComputeDerivedTotals(t *testing.T) {
	tests := []struct {
		name         string
		totals       domain.CampaignTotals
		expectedCTR  float64
		expectedCPC  float64
		expectedROAS float64
	}{
		{
			name: "Três dias de métricas devem produzir índices agregados corretos",
			totals: domain.CampaignTotals{
				Clicks:      60,  // 10 + 20 + 30
				Impressions: 600, // 100 + 200 + 300
				Spent:       30,  // 5 + 10 + 15
				Revenue:     300, // 50 + 100 + 150
			},
			expectedCTR:  10.0,
			expectedCPC:  0.5,
			expectedROAS: 10.0,
		},
		{
			name: "Campanha sem impressões deve ter ctr zero, não erro",
			totals: domain.CampaignTotals{
				Clicks:      0,
				Impressions: 0,
				Spent:       10,
				Revenue:     50,
			},
			expectedCTR:  0,
			expectedCPC:  0,
			expectedROAS: 5.0,
		},
		{
			name: "Campanha sem cliques deve ter cpc zero",
			totals: domain.CampaignTotals{
				Clicks:      0,
				Impressions: 100,
				Spent:       10,
				Revenue:     0,
			},
			expectedCTR:  0,
			expectedCPC:  0,
			expectedROAS: 0,
		},
		{
			name: "Campanha sem custo deve ter roas zero",
			totals: domain.CampaignTotals{
				Clicks:      10,
				Impressions: 100,
				Spent:       0,
				Revenue:     50,
			},
			expectedCTR:  10.0,
			expectedCPC:  0,
			expectedROAS: 0,
		},
		{
			name:         "Totais zerados devem produzir índices zerados",
			totals:       domain.CampaignTotals{},
			expectedCTR:  0,
			expectedCPC:  0,
			expectedROAS: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := tt.totals

			ComputeDerivedTotals(&totals)

			assert.Equal(t, tt.expectedCTR, totals.CTR)
			assert.Equal(t, tt.expectedCPC, totals.CPC)
			assert.Equal(t, tt.expectedROAS, totals.ROAS)
		})
	}
}
