package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

const productsTable = "products p"

type ProductRepository interface {
	// ListActiveByCompany lista os produtos ativos da empresa, limitado a limit
	// itens, usados como base da associação heurística produto/campanha
	ListActiveByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListActiveByCompany(ctx context.Context, companyID string, limit int) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.company_id, p.external_id, p.title, p.status, p.price, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.company_id": companyID, "p.status": "active"}).
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.CompanyID,
			&product.ExternalID,
			&product.Title,
			&product.Status,
			&product.Price,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
