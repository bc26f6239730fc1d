package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	GetByExternalID(ctx context.Context, companyID, externalID string) (*domain.Campaign, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Campaign, error)
	// SaveOrUpdate faz upsert pela chave natural (company_id, external_id) e
	// retorna o ID local da linha. O commit é imediato: cada campanha é uma
	// unidade de trabalho própria.
	SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) (string, error)
	// UpdateTotals sobrescreve os agregados e índices derivados da campanha
	UpdateTotals(ctx context.Context, campaignID string, totals *domain.CampaignTotals) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

const campaignColumns = "c.id, c.company_id, c.account_id, c.external_id, c.advertiser_id, c.name, c.status, c.daily_budget, " +
	"c.total_spent, c.total_clicks, c.total_impressions, c.total_conversions, c.total_revenue, " +
	"c.ctr, c.cpc, c.roas, c.last_sync_at, c.created_at, c.updated_at"

func (r *campaignRepository) GetByExternalID(ctx context.Context, companyID, externalID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.company_id": companyID, "c.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	campaign, err := scanCampaignRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.company_id": companyID}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaignRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "company_id", "account_id", "external_id", "advertiser_id", "name", "status", "daily_budget", "last_sync_at").
		Values(
			id,
			campaign.CompanyID,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.AdvertiserID,
			campaign.Name,
			campaign.Status,
			campaign.DailyBudget,
			campaign.LastSyncAt,
		).
		Suffix(`
			ON CONFLICT (company_id, external_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				advertiser_id = EXCLUDED.advertiser_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				daily_budget = EXCLUDED.daily_budget,
				last_sync_at = EXCLUDED.last_sync_at,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var localID string
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&localID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("erro ao executar a query: %w", err)
	}

	return localID, nil
}

func (r *campaignRepository) UpdateTotals(ctx context.Context, campaignID string, totals *domain.CampaignTotals) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("total_spent", totals.Spent).
		Set("total_clicks", totals.Clicks).
		Set("total_impressions", totals.Impressions).
		Set("total_conversions", totals.Conversions).
		Set("total_revenue", totals.Revenue).
		Set("ctr", totals.CTR).
		Set("cpc", totals.CPC).
		Set("roas", totals.ROAS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	return nil
}

func scanCampaignRow(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.CompanyID,
		&campaign.AccountID,
		&campaign.ExternalID,
		&campaign.AdvertiserID,
		&campaign.Name,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.TotalSpent,
		&campaign.TotalClicks,
		&campaign.TotalImpressions,
		&campaign.TotalConversions,
		&campaign.TotalRevenue,
		&campaign.CTR,
		&campaign.CPC,
		&campaign.ROAS,
		&campaign.LastSyncAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

func scanCampaignRows(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := rows.Scan(
		&campaign.ID,
		&campaign.CompanyID,
		&campaign.AccountID,
		&campaign.ExternalID,
		&campaign.AdvertiserID,
		&campaign.Name,
		&campaign.Status,
		&campaign.DailyBudget,
		&campaign.TotalSpent,
		&campaign.TotalClicks,
		&campaign.TotalImpressions,
		&campaign.TotalConversions,
		&campaign.TotalRevenue,
		&campaign.CTR,
		&campaign.CPC,
		&campaign.ROAS,
		&campaign.LastSyncAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}
