package meliclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
)

type responseCampaignMetrics struct {
	Results []melidomain.CampaignDailyMetrics `json:"results"`
}

// GetCampaignMetrics busca as métricas diárias da campanha no intervalo informado
// (agregação DAILY, um conjunto de campos por dia)
func (c *MeliClient) GetCampaignMetrics(
	ctx context.Context,
	siteID string,
	campaignID int64,
	accessToken string,
	dateFrom, dateTo time.Time,
) ([]melidomain.CampaignDailyMetrics, error) {
	baseURL := fmt.Sprintf(
		"%s/advertising/%s/product_ads/campaigns/%d/metrics",
		c.cfg.Meli.BaseURL, siteID, campaignID,
	)

	params := url.Values{}
	params.Set("date_from", dateFrom.Format(time.DateOnly))
	params.Set("date_to", dateTo.Format(time.DateOnly))
	params.Set("aggregation", "DAILY")
	params.Set("metrics", "clicks,prints,cost,ctr,cpc,acos,cvr,roas,sov,"+
		"direct_items_quantity,direct_units_quantity,direct_amount,"+
		"indirect_items_quantity,indirect_units_quantity,indirect_amount,"+
		"advertising_items_quantity,units_quantity,total_amount,"+
		"organic_items_quantity,organic_units_quantity,organic_units_amount")

	var response responseCampaignMetrics
	if err := c.doGet(ctx, baseURL+"?"+params.Encode(), accessToken, "2", &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"site_id":     siteID,
			"campaign_id": campaignID,
			"date_from":   dateFrom.Format(time.DateOnly),
			"date_to":     dateTo.Format(time.DateOnly),
		}).WithError(err).Error("Erro ao buscar métricas da campanha no marketplace")
		return nil, err
	}

	return response.Results, nil
}
