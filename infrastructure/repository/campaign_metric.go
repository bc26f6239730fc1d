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

const campaignMetricsTable = "campaign_metrics cm"

type CampaignMetricRepository interface {
	// SaveOrUpdateBatch faz upsert de todos os dias da campanha em uma única
	// transação: ou todos os dias do lote são gravados, ou nenhum. A falha de um
	// lote nunca afeta campanhas já confirmadas na mesma execução.
	SaveOrUpdateBatch(ctx context.Context, metrics []*domain.CampaignMetric) error
	// SumByCampaign agrega todas as métricas diárias armazenadas da campanha
	SumByCampaign(ctx context.Context, campaignID string) (*domain.CampaignTotals, error)
	ListByCampaignAndRange(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignMetric, error)
}

type campaignMetricRepository struct {
	conn *postgres.Connection
}

func NewCampaignMetricRepository(conn *postgres.Connection) CampaignMetricRepository {
	return &campaignMetricRepository{
		conn: conn,
	}
}

func (r *campaignMetricRepository) SaveOrUpdateBatch(ctx context.Context, metrics []*domain.CampaignMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, metric := range metrics {
			if err := upsertMetric(ctx, tx, metric); err != nil {
				return err
			}
		}
		return nil
	})
}

// upsertMetric grava um dia de métricas pela chave natural (campaign_id, metric_date).
// A linha é sobrescrita por inteiro: last write wins por dia.
func upsertMetric(ctx context.Context, tx *sql.Tx, metric *domain.CampaignMetric) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaign_metrics").
		Columns(
			"id", "campaign_id", "metric_date", "impressions", "clicks", "spent",
			"direct_items_quantity", "direct_units_quantity", "direct_amount",
			"indirect_items_quantity", "indirect_units_quantity", "indirect_amount",
			"advertising_items_quantity", "units_quantity", "total_amount",
			"organic_items_quantity", "organic_units_quantity", "organic_units_amount",
			"acos", "cvr", "roas", "sov",
		).
		Values(
			id,
			metric.CampaignID,
			metric.MetricDate.Format(time.DateOnly),
			metric.Impressions,
			metric.Clicks,
			metric.Spent,
			metric.DirectItemsQuantity,
			metric.DirectUnitsQuantity,
			metric.DirectAmount,
			metric.IndirectItemsQuantity,
			metric.IndirectUnitsQuantity,
			metric.IndirectAmount,
			metric.AdvertisingItemsQuantity,
			metric.UnitsQuantity,
			metric.TotalAmount,
			metric.OrganicItemsQuantity,
			metric.OrganicUnitsQuantity,
			metric.OrganicUnitsAmount,
			metric.Acos,
			metric.Cvr,
			metric.Roas,
			metric.Sov,
		).
		Suffix(`
			ON CONFLICT (campaign_id, metric_date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spent = EXCLUDED.spent,
				direct_items_quantity = EXCLUDED.direct_items_quantity,
				direct_units_quantity = EXCLUDED.direct_units_quantity,
				direct_amount = EXCLUDED.direct_amount,
				indirect_items_quantity = EXCLUDED.indirect_items_quantity,
				indirect_units_quantity = EXCLUDED.indirect_units_quantity,
				indirect_amount = EXCLUDED.indirect_amount,
				advertising_items_quantity = EXCLUDED.advertising_items_quantity,
				units_quantity = EXCLUDED.units_quantity,
				total_amount = EXCLUDED.total_amount,
				organic_items_quantity = EXCLUDED.organic_items_quantity,
				organic_units_quantity = EXCLUDED.organic_units_quantity,
				organic_units_amount = EXCLUDED.organic_units_amount,
				acos = EXCLUDED.acos,
				cvr = EXCLUDED.cvr,
				roas = EXCLUDED.roas,
				sov = EXCLUDED.sov,
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

func (r *campaignMetricRepository) SumByCampaign(ctx context.Context, campaignID string) (*domain.CampaignTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(cm.spent), 0)",
			"COALESCE(SUM(cm.clicks), 0)",
			"COALESCE(SUM(cm.impressions), 0)",
			"COALESCE(SUM(cm.units_quantity), 0)",
			"COALESCE(SUM(cm.total_amount), 0)",
		).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.CampaignTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Spent,
		&totals.Clicks,
		&totals.Impressions,
		&totals.Conversions,
		&totals.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar métricas da campanha: %w", err)
	}

	return totals, nil
}

func (r *campaignMetricRepository) ListByCampaignAndRange(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignMetric, error) {
	query, args, err := squirrel.
		Select(
			"cm.id, cm.campaign_id, cm.metric_date, cm.impressions, cm.clicks, cm.spent, "+
				"cm.direct_items_quantity, cm.direct_units_quantity, cm.direct_amount, "+
				"cm.indirect_items_quantity, cm.indirect_units_quantity, cm.indirect_amount, "+
				"cm.advertising_items_quantity, cm.units_quantity, cm.total_amount, "+
				"cm.organic_items_quantity, cm.organic_units_quantity, cm.organic_units_amount, "+
				"cm.acos, cm.cvr, cm.roas, cm.sov, cm.created_at, cm.updated_at",
		).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"cm.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"cm.metric_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cm.metric_date": endDate.Format(time.DateOnly)}).
		OrderBy("cm.metric_date ASC").
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

	metrics := make([]*domain.CampaignMetric, 0)
	for rows.Next() {
		metric := &domain.CampaignMetric{}
		if err := rows.Scan(
			&metric.ID,
			&metric.CampaignID,
			&metric.MetricDate,
			&metric.Impressions,
			&metric.Clicks,
			&metric.Spent,
			&metric.DirectItemsQuantity,
			&metric.DirectUnitsQuantity,
			&metric.DirectAmount,
			&metric.IndirectItemsQuantity,
			&metric.IndirectUnitsQuantity,
			&metric.IndirectAmount,
			&metric.AdvertisingItemsQuantity,
			&metric.UnitsQuantity,
			&metric.TotalAmount,
			&metric.OrganicItemsQuantity,
			&metric.OrganicUnitsQuantity,
			&metric.OrganicUnitsAmount,
			&metric.Acos,
			&metric.Cvr,
			&metric.Roas,
			&metric.Sov,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica da campanha: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
