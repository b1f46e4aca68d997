package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
)

// Repository represents the repository for ETF snapshot rows.
type Repository struct {
	client postgres.Client
}

// NewRepository creates a new snapshot repository.
func NewRepository(client postgres.Client) *Repository {
	return &Repository{
		client: client,
	}
}

// Upsert inserts a snapshot row or overwrites the existing one keyed by
// (ticker, date). Last write wins.
func (r *Repository) Upsert(ctx context.Context, snapshot *etf.Snapshot) error {
	query := `INSERT INTO etf_snapshots (ticker, date, asset_type, institute, total_net_inflow, daily_net_inflow, net_assets, volume, market_price, raw_json)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (ticker, date) DO UPDATE SET
			  asset_type = EXCLUDED.asset_type,
			  institute = EXCLUDED.institute,
			  total_net_inflow = EXCLUDED.total_net_inflow,
			  daily_net_inflow = EXCLUDED.daily_net_inflow,
			  net_assets = EXCLUDED.net_assets,
			  volume = EXCLUDED.volume,
			  market_price = EXCLUDED.market_price,
			  raw_json = EXCLUDED.raw_json`

	err := r.client.Exec(ctx, query,
		snapshot.Ticker,
		snapshot.Date,
		string(snapshot.AssetType),
		snapshot.Institute,
		snapshot.TotalNetInflow,
		snapshot.DailyNetInflow,
		snapshot.NetAssets,
		snapshot.Volume,
		snapshot.MarketPrice,
		snapshot.RawJSON,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	return nil
}

// GetByFilter retrieves snapshot rows by filter, ordered by date then ticker.
func (r *Repository) GetByFilter(ctx context.Context, filter etf.SnapshotFilter) ([]*etf.Snapshot, error) {
	query := `SELECT ticker, date, asset_type, institute, total_net_inflow, daily_net_inflow, net_assets, volume, market_price, raw_json
			  FROM etf_snapshots WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.AssetType != "" {
		query += fmt.Sprintf(" AND asset_type = $%d", argIndex)
		args = append(args, string(filter.AssetType))
		argIndex++
	}

	if filter.Date != nil {
		query += fmt.Sprintf(" AND date = $%d", argIndex)
		args = append(args, *filter.Date)
		argIndex++
	}

	query += " ORDER BY date ASC, ticker ASC"

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*etf.Snapshot
	for rows.Next() {
		snapshot := &etf.Snapshot{}
		var assetType string
		err := rows.Scan(
			&snapshot.Ticker,
			&snapshot.Date,
			&assetType,
			&snapshot.Institute,
			&snapshot.TotalNetInflow,
			&snapshot.DailyNetInflow,
			&snapshot.NetAssets,
			&snapshot.Volume,
			&snapshot.MarketPrice,
			&snapshot.RawJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshot.AssetType = etf.AssetType(assetType)
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return snapshots, nil
}

// GetLatestDate retrieves the most recent snapshot date stored for an asset
// class. A zero time means no rows exist yet.
func (r *Repository) GetLatestDate(ctx context.Context, assetType etf.AssetType) (time.Time, error) {
	query := `SELECT date FROM etf_snapshots
			  WHERE asset_type = $1
			  ORDER BY date DESC
			  LIMIT 1`

	var latest time.Time
	err := r.client.QueryRow(ctx, query, string(assetType)).Scan(&latest)
	if err != nil {
		if err == pgx.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get latest snapshot date: %w", err)
	}

	return latest, nil
}
