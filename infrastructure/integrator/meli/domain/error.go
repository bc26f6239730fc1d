package melidomain

import "fmt"

// APIError representa a estrutura de erro da API do marketplace
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	ErrorCode  string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meli api error: status=%d error=%s message=%s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsNotFound verifica se o erro é de recurso inexistente
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized verifica se o erro é de token inválido ou expirado
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
