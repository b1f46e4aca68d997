package history

import (
	"context"
	"fmt"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
)

// Repository represents the repository for ETF daily history rows.
type Repository struct {
	client postgres.Client
}

// NewRepository creates a new history repository.
func NewRepository(client postgres.Client) *Repository {
	return &Repository{
		client: client,
	}
}

// Upsert inserts a history row or overwrites the existing one keyed by
// (date, asset_type). Last write wins.
func (r *Repository) Upsert(ctx context.Context, point *etf.HistoryPoint) error {
	query := `INSERT INTO etf_histories (date, asset_type, total_net_inflow, daily_net_inflow, cumulative_net_inflow, total_net_assets)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (date, asset_type) DO UPDATE SET
			  total_net_inflow = EXCLUDED.total_net_inflow,
			  daily_net_inflow = EXCLUDED.daily_net_inflow,
			  cumulative_net_inflow = EXCLUDED.cumulative_net_inflow,
			  total_net_assets = EXCLUDED.total_net_assets`

	err := r.client.Exec(ctx, query,
		point.Date,
		string(point.AssetType),
		point.TotalNetInflow,
		point.DailyNetInflow,
		point.CumulativeNetInflow,
		point.TotalNetAssets,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert history point: %w", err)
	}

	return nil
}

// GetByFilter retrieves history rows by filter, ordered by date ascending.
func (r *Repository) GetByFilter(ctx context.Context, filter etf.HistoryFilter) ([]*etf.HistoryPoint, error) {
	query := `SELECT date, asset_type, total_net_inflow, daily_net_inflow, cumulative_net_inflow, total_net_assets
			  FROM etf_histories WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.AssetType != "" {
		query += fmt.Sprintf(" AND asset_type = $%d", argIndex)
		args = append(args, string(filter.AssetType))
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY date ASC"

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var points []*etf.HistoryPoint
	for rows.Next() {
		point := &etf.HistoryPoint{}
		var assetType string
		err := rows.Scan(
			&point.Date,
			&assetType,
			&point.TotalNetInflow,
			&point.DailyNetInflow,
			&point.CumulativeNetInflow,
			&point.TotalNetAssets,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history point: %w", err)
		}
		point.AssetType = etf.AssetType(assetType)
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return points, nil
}
