// Package stats computes inter-block gap statistics over a time-ordered
// block sequence.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

// GapCutoff is the fixed threshold for the overage statistic, 7.5 minutes.
// Gaps at or above it contribute their excess to the cutoff mean.
const GapCutoff = 450 * time.Second

// Report summarizes one run's block gaps. Durations carry nanosecond
// precision; rendering converts to minutes.
type Report struct {
	// TotalBlocks is the true block count: the by-time view plus the entries
	// collapsed by timestamp collisions.
	TotalBlocks    int
	DuplicateTimes int
	SpanDays       float64
	AvgGap         time.Duration
	MinGap         time.Duration
	MaxGap         time.Duration
	// TargetGap is the network's target block interval, for comparison.
	TargetGap time.Duration
	Cutoff    time.Duration
	// CutoffGaps counts gaps at or above Cutoff; CutoffOverage is their mean
	// excess above it, 0 when no gap qualifies.
	CutoffGaps    int
	CutoffOverage time.Duration
}

// Compute walks blocks in ascending timestamp order once. The average gap is
// weighted by the true block count, not the gap count. A negative gap is an
// ordering violation and aborts the computation.
func Compute(blocks []model.Block, duplicateTimestamps int) (Report, error) {
	r := Report{
		TotalBlocks:    len(blocks) + duplicateTimestamps,
		DuplicateTimes: duplicateTimestamps,
		TargetGap:      chaincfg.MainNetParams.TargetTimePerBlock,
		Cutoff:         GapCutoff,
	}
	if len(blocks) == 0 {
		return r, nil
	}

	r.SpanDays = float64(blocks[len(blocks)-1].Time-blocks[0].Time) / 86400

	// A counted timestamp collision is a zero gap the collapsed by-time view
	// no longer shows.
	minGap := int64(math.MaxInt64)
	if duplicateTimestamps > 0 {
		minGap = 0
	}

	var (
		maxGap     int64
		avgSeconds float64
		overageSum int64
		overageCnt int
	)
	total := float64(r.TotalBlocks)
	cutoffSeconds := int64(GapCutoff / time.Second)

	for i := 1; i < len(blocks); i++ {
		delta := blocks[i].Time - blocks[i-1].Time
		if delta < 0 {
			return Report{}, fmt.Errorf("negative gap %d between heights %d and %d", delta, blocks[i-1].Height, blocks[i].Height)
		}
		avgSeconds += float64(delta) / total
		if delta < minGap {
			minGap = delta
		}
		if delta > maxGap {
			maxGap = delta
		}
		if delta >= cutoffSeconds {
			overageSum += delta - cutoffSeconds
			overageCnt++
		}
	}
	if minGap == math.MaxInt64 {
		minGap = 0
	}

	r.AvgGap = time.Duration(avgSeconds * float64(time.Second))
	r.MinGap = time.Duration(minGap) * time.Second
	r.MaxGap = time.Duration(maxGap) * time.Second
	r.CutoffGaps = overageCnt
	if overageCnt > 0 {
		r.CutoffOverage = time.Duration(float64(overageSum) / float64(overageCnt) * float64(time.Second))
	}
	return r, nil
}
