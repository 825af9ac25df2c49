package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

// DefaultArchiveBatchSize bounds a single ClickHouse insert.
const DefaultArchiveBatchSize = 1000

// Archiver persists collected blocks to ClickHouse in bounded batches.
type Archiver struct {
	sink      BlockSink
	logger    *zap.Logger
	batchSize int
}

// NewArchiver builds the archiver. A non-positive batch size falls back to
// DefaultArchiveBatchSize.
func NewArchiver(sink BlockSink, logger *zap.Logger, batchSize int) *Archiver {
	if batchSize <= 0 {
		batchSize = DefaultArchiveBatchSize
	}
	return &Archiver{
		sink:      sink,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Run stores the blocks batch by batch, preserving the given order.
func (a *Archiver) Run(ctx context.Context, blocks []model.Block) error {
	for start := 0; start < len(blocks); start += a.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + a.batchSize
		if end > len(blocks) {
			end = len(blocks)
		}

		if err := a.sink.InsertBlocks(ctx, blocks[start:end]); err != nil {
			return fmt.Errorf("archive blocks %d..%d: %w", start, end-1, err)
		}

		a.logger.Info("archived block batch",
			zap.Int("from", start),
			zap.Int("to", end-1),
			zap.Int("size", end-start))
	}

	a.logger.Info("archive complete", zap.Int("blocks", len(blocks)))
	return nil
}
