package domain

import "time"

// Product é um item do catálogo local da empresa espelhado do marketplace
type Product struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	ExternalID string    `json:"external_id"` // ex: MLB1234567890
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
