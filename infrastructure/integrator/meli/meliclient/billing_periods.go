package meliclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
)

type responseBillingPeriods struct {
	Results []melidomain.BillingPeriod `json:"results"`
}

// ListBillingPeriods busca os últimos períodos de faturamento do usuário
// autorizado. Os períodos retornados têm limites variáveis e podem se sobrepor;
// a seleção de qual período representa uma janela é responsabilidade do motor de
// atribuição, não do client.
func (c *MeliClient) ListBillingPeriods(ctx context.Context, accessToken string, limit int) ([]melidomain.BillingPeriod, error) {
	baseURL := fmt.Sprintf("%s/billing/integration/periods", c.cfg.Meli.BaseURL)

	params := url.Values{}
	params.Set("group", "ML")
	params.Set("document_type", "BILL")
	params.Set("limit", strconv.Itoa(limit))

	var response responseBillingPeriods
	if err := c.doGet(ctx, baseURL+"?"+params.Encode(), accessToken, "1", &response); err != nil {
		logrus.WithField("limit", limit).WithError(err).Error("Erro ao buscar períodos de faturamento no marketplace")
		return nil, err
	}

	return response.Results, nil
}
