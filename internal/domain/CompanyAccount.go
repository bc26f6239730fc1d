package domain

import "time"

// CompanyAccountStatus representa o status do vínculo entre empresa e conta
type CompanyAccountStatus string

const (
	CompanyAccountStatusActive   CompanyAccountStatus = "active"
	CompanyAccountStatusDisabled CompanyAccountStatus = "disabled"
)

// CompanyAccount é o vínculo entre uma empresa local e a conta do marketplace.
// UserID é o usuário do marketplace autorizado via OAuth; quando nulo, a empresa
// não pode ser sincronizada.
type CompanyAccount struct {
	CompanyID string               `json:"company_id"`
	AccountID string               `json:"account_id"`
	SiteID    string               `json:"site_id"` // ex: MLB
	UserID    *string              `json:"user_id,omitempty"`
	Status    CompanyAccountStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// OAuthToken é o par de tokens OAuth armazenado para um usuário do marketplace
type OAuthToken struct {
	UserID       string    `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
