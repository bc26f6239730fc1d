package meliclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
)

type responseAdvertisers struct {
	Advertisers []melidomain.Advertiser `json:"advertisers"`
}

// ListAdvertisers busca os anunciantes de Product Ads vinculados ao token
func (c *MeliClient) ListAdvertisers(ctx context.Context, accessToken string) ([]melidomain.Advertiser, error) {
	url := fmt.Sprintf("%s/advertising/advertisers?product_id=PADS", c.cfg.Meli.BaseURL)

	var response responseAdvertisers
	if err := c.doGet(ctx, url, accessToken, "1", &response); err != nil {
		logrus.WithError(err).Error("Erro ao buscar anunciantes no marketplace")
		return nil, err
	}

	return response.Advertisers, nil
}
