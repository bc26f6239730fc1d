package melidomain

// Advertiser representa um anunciante de Product Ads vinculado ao usuário autorizado
type Advertiser struct {
	AdvertiserID   int64  `json:"advertiser_id"`
	SiteID         string `json:"site_id"`
	AdvertiserName string `json:"advertiser_name"`
}
