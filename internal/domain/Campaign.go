package domain

import "time"

// CampaignStatus é o status normalizado de uma campanha do marketplace
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
	CampaignStatusOther  CampaignStatus = "other"
)

// NormalizeCampaignStatus converte o status bruto da API externa para o enum local
func NormalizeCampaignStatus(raw string) CampaignStatus {
	switch raw {
	case "active", "ACTIVE":
		return CampaignStatusActive
	case "paused", "PAUSED":
		return CampaignStatusPaused
	default:
		return CampaignStatusOther
	}
}

// Campaign espelha uma campanha de Product Ads do marketplace. A identidade externa
// é (company_id, external_id); a linha local é alvo de upsert, nunca duplicada.
type Campaign struct {
	ID               string         `json:"id"`
	CompanyID        string         `json:"company_id"`
	AccountID        string         `json:"account_id"`
	ExternalID       string         `json:"campaign_id"`
	AdvertiserID     string         `json:"advertiser_id"`
	Name             string         `json:"name"`
	Status           CampaignStatus `json:"status"`
	DailyBudget      float64        `json:"daily_budget"`
	TotalSpent       float64        `json:"total_spent"`
	TotalClicks      int64          `json:"total_clicks"`
	TotalImpressions int64          `json:"total_impressions"`
	TotalConversions float64        `json:"total_conversions"`
	TotalRevenue     float64        `json:"total_revenue"`
	CTR              float64        `json:"ctr"`
	CPC              float64        `json:"cpc"`
	ROAS             float64        `json:"roas"`
	LastSyncAt       *time.Time     `json:"last_sync_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CampaignTotals é o agregado recalculado a partir das métricas diárias armazenadas.
// O recálculo é sempre total (nunca incremental), o que o torna idempotente e
// autocorretivo frente a escritas parciais.
type CampaignTotals struct {
	Spent       float64
	Clicks      int64
	Impressions int64
	Conversions float64
	Revenue     float64
	CTR         float64
	CPC         float64
	ROAS        float64
}
