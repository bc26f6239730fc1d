package domain

import "time"

// CampaignMetric é um dia-calendário de desempenho de uma campanha. Única por
// (campaign_id, metric_date); a linha é sobrescrita por inteiro a cada sync
// (last write wins), nunca mesclada campo a campo.
type CampaignMetric struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	MetricDate time.Time `json:"metric_date"`

	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spent       float64 `json:"spent"`

	// Quebras específicas do marketplace, armazenadas como campos numéricos opacos
	DirectItemsQuantity      int64   `json:"direct_items_quantity"`
	DirectUnitsQuantity      int64   `json:"direct_units_quantity"`
	DirectAmount             float64 `json:"direct_amount"`
	IndirectItemsQuantity    int64   `json:"indirect_items_quantity"`
	IndirectUnitsQuantity    int64   `json:"indirect_units_quantity"`
	IndirectAmount           float64 `json:"indirect_amount"`
	AdvertisingItemsQuantity int64   `json:"advertising_items_quantity"`
	UnitsQuantity            int64   `json:"units_quantity"`
	TotalAmount              float64 `json:"total_amount"`
	OrganicItemsQuantity     int64   `json:"organic_items_quantity"`
	OrganicUnitsQuantity     int64   `json:"organic_units_quantity"`
	OrganicUnitsAmount       float64 `json:"organic_units_amount"`
	Acos                     float64 `json:"acos"`
	Cvr                      float64 `json:"cvr"`
	Roas                     float64 `json:"roas"`
	Sov                      float64 `json:"sov"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
