package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token JWT emitido para operadores da API
type Claims struct {
	UserID     int `json:"user_id"`
	UserRoleID int `json:"user_role_id"`
	jwt.RegisteredClaims
}
