package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

const billingPeriodsTable = "billing_periods bp"

type BillingPeriodRepository interface {
	// ListOverlapping retorna os períodos da empresa que intersectam a janela
	// [from, to] (teste padrão de sobreposição de intervalos)
	ListOverlapping(ctx context.Context, companyID string, from, to time.Time) ([]*domain.BillingPeriod, error)
	SaveOrUpdate(ctx context.Context, period *domain.BillingPeriod) error
}

type billingPeriodRepository struct {
	conn *postgres.Connection
}

func NewBillingPeriodRepository(conn *postgres.Connection) BillingPeriodRepository {
	return &billingPeriodRepository{
		conn: conn,
	}
}

func (r *billingPeriodRepository) ListOverlapping(ctx context.Context, companyID string, from, to time.Time) ([]*domain.BillingPeriod, error) {
	query, args, err := squirrel.
		Select("bp.id, bp.company_id, bp.period_from, bp.period_to, bp.advertising_cost, bp.sale_fees, bp.shipping_fees, bp.is_closed, bp.created_at, bp.updated_at").
		From(billingPeriodsTable).
		Where(squirrel.Eq{"bp.company_id": companyID}).
		Where(squirrel.LtOrEq{"bp.period_from": to.Format(time.DateOnly)}).
		Where(squirrel.GtOrEq{"bp.period_to": from.Format(time.DateOnly)}).
		OrderBy("bp.period_from ASC").
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

	periods := make([]*domain.BillingPeriod, 0)
	for rows.Next() {
		period := &domain.BillingPeriod{}
		if err := rows.Scan(
			&period.ID,
			&period.CompanyID,
			&period.PeriodFrom,
			&period.PeriodTo,
			&period.AdvertisingCost,
			&period.SaleFees,
			&period.ShippingFees,
			&period.IsClosed,
			&period.CreatedAt,
			&period.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear período de faturamento: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// SaveOrUpdate insere ou atualiza o período pela chave natural
// (company_id, period_from, period_to). Períodos nunca são removidos;
// is_closed só transita de false para true.
func (r *billingPeriodRepository) SaveOrUpdate(ctx context.Context, period *domain.BillingPeriod) error {
	id := period.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		id = generated
	}

	query := squirrel.StatementBuilder.
		Insert("billing_periods").
		Columns("id", "company_id", "period_from", "period_to", "advertising_cost", "sale_fees", "shipping_fees", "is_closed").
		Values(
			id,
			period.CompanyID,
			period.PeriodFrom.Format(time.DateOnly),
			period.PeriodTo.Format(time.DateOnly),
			period.AdvertisingCost,
			period.SaleFees,
			period.ShippingFees,
			period.IsClosed,
		).
		Suffix(`
			ON CONFLICT (company_id, period_from, period_to) DO UPDATE SET
				advertising_cost = EXCLUDED.advertising_cost,
				sale_fees = EXCLUDED.sale_fees,
				shipping_fees = EXCLUDED.shipping_fees,
				is_closed = billing_periods.is_closed OR EXCLUDED.is_closed,
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
