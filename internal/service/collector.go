package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocktimes/internal/blockindex"
)

const dayMillis = 24 * 60 * 60 * 1000

// Collector walks the explorer's daily block pages backwards in time and
// folds every main-chain block into a fresh index.
type Collector struct {
	source  PageSource
	logger  *zap.Logger
	metrics CollectorMetrics
}

// NewCollector builds the collector with the provided dependencies.
func NewCollector(source PageSource, logger *zap.Logger, metrics CollectorMetrics) *Collector {
	return &Collector{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Run fetches the given number of daily pages and returns the populated
// index. The first page is anchored at the current wall clock; every later
// page one day before the earliest block seen so far. Pages are fetched
// strictly one after another, and any page failure aborts the run.
func (c *Collector) Run(ctx context.Context, days int) (*blockindex.Index, error) {
	index := blockindex.New()

	for page := 1; page <= days; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		anchor := time.Now().UnixMilli()
		if earliest, ok := index.EarliestTime(); ok {
			anchor = earliest*1000 - dayMillis
		}

		c.logger.Info("fetching block page",
			zap.Int("page", page),
			zap.Int("pages", days),
			zap.Int64("anchor_ms", anchor),
			zap.Int("blocks_so_far", index.Len()))

		started := time.Now()
		blocks, err := c.source.Blocks(ctx, anchor)
		c.metrics.ObservePage(err, len(blocks), started)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d of %d: %w", page, days, err)
		}

		for _, block := range blocks {
			prevHeight, prevTime := index.Insert(block)
			if prevHeight != nil {
				c.metrics.ObserveDuplicateHeight()
				c.logger.Warn("duplicate block height",
					zap.Uint64("height", block.Height),
					zap.String("old_hash", prevHeight.Hash),
					zap.Int64("old_time", prevHeight.Time),
					zap.String("new_hash", block.Hash),
					zap.Int64("new_time", block.Time))
			}
			if prevTime != nil {
				c.metrics.ObserveDuplicateTimestamp()
				c.logger.Warn("duplicate block timestamp",
					zap.Int64("time", block.Time),
					zap.Uint64("old_height", prevTime.Height),
					zap.String("old_hash", prevTime.Hash),
					zap.Uint64("new_height", block.Height),
					zap.String("new_hash", block.Hash))
			}
			c.logger.Debug("indexed block",
				zap.Uint64("height", block.Height),
				zap.Int64("time", block.Time),
				zap.String("hash", block.Hash))
		}
	}

	c.logger.Info("collection complete",
		zap.Int("pages", days),
		zap.Int("blocks", index.Len()),
		zap.Int("duplicate_timestamps", index.DuplicateTimestamps()))

	return index, nil
}
