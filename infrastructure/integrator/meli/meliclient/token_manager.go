package meliclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

// ErrTokenNotFound indica que não há token OAuth armazenado para o usuário
var ErrTokenNotFound = errors.New("token não encontrado para o usuário")

// Margem antes da expiração a partir da qual o token é renovado preventivamente
const refreshMargin = 5 * time.Minute

// TokenProvider fornece um access token válido para um usuário do marketplace.
// A aquisição inicial do token (fluxo de autorização) está fora do escopo; aqui
// apenas renovamos tokens já armazenados.
type TokenProvider interface {
	GetValidAccessToken(ctx context.Context, userID string) (string, error)
}

type TokenManager struct {
	cfg        *config.Config
	tokenRepo  repository.OAuthTokenRepository
	httpClient *http.Client
}

func NewTokenManager(cfg *config.Config, tokenRepo repository.OAuthTokenRepository) *TokenManager {
	return &TokenManager{
		cfg:       cfg,
		tokenRepo: tokenRepo,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetValidAccessToken retorna o access token armazenado, renovando-o via
// refresh_token quando está expirado ou prestes a expirar
func (m *TokenManager) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	token, err := m.tokenRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar token do usuário: %w", err)
	}

	if token == nil {
		return "", ErrTokenNotFound
	}

	if time.Until(token.ExpiresAt) > refreshMargin {
		return token.AccessToken, nil
	}

	logrus.WithField("user_id", userID).Info("Token OAuth expirado ou próximo de expirar, renovando")

	refreshed, err := m.refreshToken(ctx, token)
	if err != nil {
		return "", err
	}

	if err := m.tokenRepo.Save(ctx, refreshed); err != nil {
		return "", fmt.Errorf("erro ao salvar token renovado: %w", err)
	}

	return refreshed.AccessToken, nil
}

type responseOAuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// refreshToken troca o refresh_token por um novo par de tokens
func (m *TokenManager) refreshToken(ctx context.Context, token *domain.OAuthToken) (*domain.OAuthToken, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", m.cfg.Meli.AppID)
	form.Set("client_secret", m.cfg.Meli.AppSecret)
	form.Set("refresh_token", token.RefreshToken)

	endpoint := fmt.Sprintf("%s/oauth/token", m.cfg.Meli.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de renovação: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renovação de token falhou com status: %s", resp.Status)
	}

	var response responseOAuthToken
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de renovação: %w", err)
	}

	return &domain.OAuthToken{
		UserID:       token.UserID,
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(response.ExpiresIn) * time.Second),
	}, nil
}
