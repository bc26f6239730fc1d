package domain

import "time"

// SyncResult resume uma execução de sincronização de campanhas para uma empresa
type SyncResult struct {
	CompanyID       string    `json:"company_id"`
	TotalCampaigns  int       `json:"total_campaigns"`
	CampaignsSynced int       `json:"campaigns_synced"`
	ProductsSynced  int       `json:"products_synced"`
	MetricsSynced   int       `json:"metrics_synced"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}
