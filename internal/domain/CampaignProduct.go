package domain

import "time"

// CampaignProduct associa uma campanha a um produto local do catálogo da empresa.
// A API externa não expõe a lista real de produtos por campanha; a associação é
// populada heuristicamente a partir dos produtos ativos da empresa (máximo de 20).
type CampaignProduct struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	ProductID   string    `json:"product_id"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Spent       float64   `json:"spent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
