package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

const oauthTokensTable = "oauth_tokens ot"

type OAuthTokenRepository interface {
	// GetByUserID retorna nil sem erro quando o usuário não tem token armazenado
	GetByUserID(ctx context.Context, userID string) (*domain.OAuthToken, error)
	Save(ctx context.Context, token *domain.OAuthToken) error
}

type oauthTokenRepository struct {
	conn *postgres.Connection
}

func NewOAuthTokenRepository(conn *postgres.Connection) OAuthTokenRepository {
	return &oauthTokenRepository{
		conn: conn,
	}
}

func (r *oauthTokenRepository) GetByUserID(ctx context.Context, userID string) (*domain.OAuthToken, error) {
	query, args, err := squirrel.
		Select("ot.user_id, ot.access_token, ot.refresh_token, ot.expires_at, ot.updated_at").
		From(oauthTokensTable).
		Where(squirrel.Eq{"ot.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	token := &domain.OAuthToken{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&token.UserID,
		&token.AccessToken,
		&token.RefreshToken,
		&token.ExpiresAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear token OAuth: %w", err)
	}

	return token, nil
}

func (r *oauthTokenRepository) Save(ctx context.Context, token *domain.OAuthToken) error {
	query := squirrel.StatementBuilder.
		Insert("oauth_tokens").
		Columns("user_id", "access_token", "refresh_token", "expires_at").
		Values(
			token.UserID,
			token.AccessToken,
			token.RefreshToken,
			token.ExpiresAt,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
