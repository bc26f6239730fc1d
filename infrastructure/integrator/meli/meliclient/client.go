package meliclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	melidomain "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// Client define as operações consumidas da API de Product Ads e billing do
// marketplace. Toda chamada é uma requisição HTTP síncrona com timeout próprio;
// respostas não-2xx são mapeadas para *melidomain.APIError.
type Client interface {
	ListAdvertisers(ctx context.Context, accessToken string) ([]melidomain.Advertiser, error)
	ListCampaigns(ctx context.Context, siteID string, advertiserID int64, accessToken string) ([]melidomain.Campaign, error)
	GetCampaignMetrics(ctx context.Context, siteID string, campaignID int64, accessToken string, dateFrom, dateTo time.Time) ([]melidomain.CampaignDailyMetrics, error)
	ListBillingPeriods(ctx context.Context, accessToken string, limit int) ([]melidomain.BillingPeriod, error)
}

type MeliClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Meli.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &MeliClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// doGet executa uma requisição GET autenticada e decodifica o corpo em out
func (c *MeliClient) doGet(ctx context.Context, url string, accessToken string, apiVersion string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if apiVersion != "" {
		req.Header.Set("Api-Version", apiVersion)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// handleResponse lê o corpo e mapeia respostas não-2xx para um erro tipado
func (c *MeliClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &melidomain.APIError{StatusCode: resp.StatusCode}
		// Corpo de erro fora do formato esperado não esconde o status original
		_ = json.Unmarshal(body, apiErr)
		apiErr.StatusCode = resp.StatusCode
		return nil, apiErr
	}

	return body, nil
}
