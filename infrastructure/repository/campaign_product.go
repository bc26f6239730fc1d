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

const campaignProductsTable = "campaign_products cp"

type CampaignProductRepository interface {
	// SaveOrUpdateBatch faz upsert das associações pela chave natural
	// (campaign_id, product_id)
	SaveOrUpdateBatch(ctx context.Context, products []*domain.CampaignProduct) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CampaignProduct, error)
}

type campaignProductRepository struct {
	conn *postgres.Connection
}

func NewCampaignProductRepository(conn *postgres.Connection) CampaignProductRepository {
	return &campaignProductRepository{
		conn: conn,
	}
}

func (r *campaignProductRepository) SaveOrUpdateBatch(ctx context.Context, products []*domain.CampaignProduct) error {
	if len(products) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, product := range products {
			if err := upsertCampaignProduct(ctx, tx, product); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertCampaignProduct(ctx context.Context, tx *sql.Tx, product *domain.CampaignProduct) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaign_products").
		Columns("id", "campaign_id", "product_id", "impressions", "clicks", "spent").
		Values(
			id,
			product.CampaignID,
			product.ProductID,
			product.Impressions,
			product.Clicks,
			product.Spent,
		).
		Suffix(`
			ON CONFLICT (campaign_id, product_id) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spent = EXCLUDED.spent,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignProductRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CampaignProduct, error) {
	query, args, err := squirrel.
		Select("cp.id, cp.campaign_id, cp.product_id, cp.impressions, cp.clicks, cp.spent, cp.created_at, cp.updated_at").
		From(campaignProductsTable).
		Where(squirrel.Eq{"cp.campaign_id": campaignID}).
		OrderBy("cp.product_id ASC").
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

	products := make([]*domain.CampaignProduct, 0)
	for rows.Next() {
		product := &domain.CampaignProduct{}
		if err := rows.Scan(
			&product.ID,
			&product.CampaignID,
			&product.ProductID,
			&product.Impressions,
			&product.Clicks,
			&product.Spent,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto da campanha: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
