package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PageSource interface {
		Blocks(ctx context.Context, anchorMillis int64) ([]model.Block, error)
	}
	BlockSink interface {
		InsertBlocks(ctx context.Context, blocks []model.Block) error
	}
	CollectorMetrics interface {
		ObservePage(err error, blocks int, started time.Time)
		ObserveDuplicateHeight()
		ObserveDuplicateTimestamp()
	}
)
