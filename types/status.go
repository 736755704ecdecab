package types

// Status is one self-contained record of the service health stream.
type Status struct {
	Chain             string `json:"chain"`
	Entity            string `json:"entity,omitempty"`
	LatestBlockHeight uint64 `json:"latest_block_height"`
	Timestamp         int64  `json:"timestamp,omitempty"`
}
