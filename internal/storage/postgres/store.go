package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dexScope/internal/model"
)

// Store provides optional Postgres persistence for exported snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertTokens inserts or updates token metadata keyed by address.
func (s *Store) UpsertTokens(ctx context.Context, tokens []model.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, token := range tokens {
		batch.Queue(`
			INSERT INTO tokens (address, symbol, decimals, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			ON CONFLICT (address)
			DO UPDATE SET
				symbol = EXCLUDED.symbol,
				decimals = EXCLUDED.decimals,
				updated_at = now()
		`,
			token.Address,
			token.Symbol,
			int16(token.Decimals),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range tokens {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// UpsertPools inserts or updates pools keyed by (chain, pool_id).
// Pools without a source-reported id use the token-pair fallback key.
// Reserves are stored as numerics to keep the full uint64 range.
func (s *Store) UpsertPools(ctx context.Context, pools []model.Pool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		poolID := fmt.Sprintf("%s-%s", pool.Token0, pool.Token1)
		if pool.ID != nil {
			poolID = *pool.ID
		}
		batch.Queue(`
			INSERT INTO pools (
				chain, pool_id, factory, dex_name, token0, token1,
				reserve0, reserve1, fee, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (chain, pool_id)
			DO UPDATE SET
				factory = EXCLUDED.factory,
				dex_name = EXCLUDED.dex_name,
				token0 = EXCLUDED.token0,
				token1 = EXCLUDED.token1,
				reserve0 = EXCLUDED.reserve0,
				reserve1 = EXCLUDED.reserve1,
				fee = EXCLUDED.fee,
				updated_at = now()
		`,
			pool.Chain,
			poolID,
			pool.Factory,
			pool.DexName,
			pool.Token0,
			pool.Token1,
			strconv.FormatUint(pool.Reserve0, 10),
			strconv.FormatUint(pool.Reserve1, 10),
			strconv.FormatUint(pool.Fee, 10),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
