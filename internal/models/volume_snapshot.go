package models

import "time"

// VolumeSnapshot is a persisted volume matrix: counts per model key and
// bucket key.
type VolumeSnapshot struct {
	WindowSize  WindowSize                  `json:"windowSize"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Collected   int                         `json:"collected"`
	Volumes     map[string]map[string]int64 `json:"volumes"`
}
