package model

import "time"

// Stats event kinds.
const (
	KindGenerated = "generated"
	KindChecked   = "checked"
)

// StatsCounter is the number of passwords of one kind that received a label.
type StatsCounter struct {
	Kind  string
	Label string
	Total int64
}

// StatsResponse groups counters by kind, then by strength label.
type StatsResponse struct {
	Backend     string                      `json:"backend"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Counts      map[string]map[string]int64 `json:"counts"`
}
