package model

import "time"

// Block describes one main-chain block as reported by the explorer API.
type Block struct {
	Height uint64
	Hash   string
	Time   int64 // unix seconds
}

// Timestamp returns the block time as UTC.
func (b Block) Timestamp() time.Time {
	return time.Unix(b.Time, 0).UTC()
}
