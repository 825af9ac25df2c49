// Package export writes the collected blocks as sorted CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

// Output filenames, joined with the configured output directory.
const (
	ByHeightFilename    = "blocks_sorted_by_height.csv"
	ByTimestampFilename = "blocks_sorted_by_timestamp.csv"
)

// WriteByHeight writes blocks, already sorted by ascending height, as
// height,time,hash rows under a #BlockHeight,BlockTimeUTC,BlockHash header.
// An existing file at path is truncated.
func WriteByHeight(path string, blocks []model.Block) error {
	rows := make([][]string, 0, len(blocks)+1)
	rows = append(rows, []string{"#BlockHeight", "BlockTimeUTC", "BlockHash"})
	for _, b := range blocks {
		rows = append(rows, []string{
			strconv.FormatUint(b.Height, 10),
			strconv.FormatInt(b.Time, 10),
			b.Hash,
		})
	}
	return writeCSV(path, rows)
}

// WriteByTimestamp writes blocks, already sorted by ascending timestamp, as
// time,height,hash rows under a #BlockTimeUTC,BlockHeight,BlockHash header.
// An existing file at path is truncated.
func WriteByTimestamp(path string, blocks []model.Block) error {
	rows := make([][]string, 0, len(blocks)+1)
	rows = append(rows, []string{"#BlockTimeUTC", "BlockHeight", "BlockHash"})
	for _, b := range blocks {
		rows = append(rows, []string{
			strconv.FormatInt(b.Time, 10),
			strconv.FormatUint(b.Height, 10),
			b.Hash,
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
