package melidomain

// Campaign é a campanha de Product Ads como retornada pela API do marketplace
type Campaign struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	Budget           float64 `json:"budget"`
	Strategy         string  `json:"strategy"`
	OptimizationGoal string  `json:"optimization_goal"`
	DateCreated      string  `json:"date_created"`
	LastUpdated      string  `json:"last_updated"`
}

// Paging é o envelope de paginação padrão da API do marketplace
type Paging struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
