package meliclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
)

const campaignsPageSize = 50

type responseCampaigns struct {
	Results []melidomain.Campaign `json:"results"`
	Paging  melidomain.Paging     `json:"paging"`
}

// ListCampaigns busca todas as páginas de campanhas do anunciante.
// Resultado vazio é sucesso (zero campanhas), não erro.
func (c *MeliClient) ListCampaigns(ctx context.Context, siteID string, advertiserID int64, accessToken string) ([]melidomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/advertising/%s/product_ads/campaigns", c.cfg.Meli.BaseURL, siteID)

	campaigns := make([]melidomain.Campaign, 0)
	offset := 0

	for {
		params := url.Values{}
		params.Set("advertiser_id", strconv.FormatInt(advertiserID, 10))
		params.Set("limit", strconv.Itoa(campaignsPageSize))
		params.Set("offset", strconv.Itoa(offset))

		var response responseCampaigns
		if err := c.doGet(ctx, baseURL+"?"+params.Encode(), accessToken, "2", &response); err != nil {
			logrus.WithFields(logrus.Fields{
				"site_id":       siteID,
				"advertiser_id": advertiserID,
				"offset":        offset,
			}).WithError(err).Error("Erro ao buscar campanhas no marketplace")
			return nil, err
		}

		campaigns = append(campaigns, response.Results...)

		offset += len(response.Results)
		if len(response.Results) == 0 || offset >= response.Paging.Total {
			break
		}
	}

	return campaigns, nil
}
