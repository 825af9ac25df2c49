package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// BlocksRepository archives collected blocks in ClickHouse.
type BlocksRepository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

// NewBlocksRepository opens a native connection for the given DSN. The
// connection is lazy; call Ping to verify it.
func NewBlocksRepository(dsn string, metrics Metrics) (*BlocksRepository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &BlocksRepository{conn: conn, metrics: metrics}, nil
}

// Ping verifies the connection, so a run fails before any pages are fetched
// rather than after.
func (r *BlocksRepository) Ping(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, started)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// InsertBlocks stores block rows in ClickHouse.
func (r *BlocksRepository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, started)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO block_times (
	height,
	hash,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Height,
			block.Hash,
			block.Timestamp(),
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *BlocksRepository) Close() error {
	return r.conn.Close()
}
