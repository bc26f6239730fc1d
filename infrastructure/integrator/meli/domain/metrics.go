package melidomain

// CampaignDailyMetrics é um dia de métricas de campanha com agregação DAILY.
// Os campos de quebra (vendas diretas/indiretas, orgânicas, acos, cvr, roas, sov)
// são armazenados como valores opacos; apenas ctr/cpc/roas de totais são
// recalculados localmente.
type CampaignDailyMetrics struct {
	Date                     string  `json:"date"`
	Prints                   int64   `json:"prints"`
	Clicks                   int64   `json:"clicks"`
	Cost                     float64 `json:"cost"`
	Ctr                      float64 `json:"ctr"`
	Cpc                      float64 `json:"cpc"`
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
}
