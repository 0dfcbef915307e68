package aggregators

import (
	"sort"
)

// VolumeMatrix counts events per model key and time bucket key. Only
// observed cells are present.
type VolumeMatrix map[string]map[string]int64

// DensePoint is one cell of a dense series.
type DensePoint struct {
	Model string `json:"model"`
	Hour  string `json:"hour"`
	Value int64  `json:"value"`
}

func (m VolumeMatrix) add(model, bucket string) {
	row, ok := m[model]
	if !ok {
		row = make(map[string]int64)
		m[model] = row
	}
	row[bucket]++
}

// Get returns the count of a cell, zero when absent.
func (m VolumeMatrix) Get(model, bucket string) int64 {
	return m[model][bucket]
}

// Total is the sum of all cells.
func (m VolumeMatrix) Total() int64 {
	var total int64
	for _, row := range m {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Models returns the model keys in ascending order.
func (m VolumeMatrix) Models() []string {
	out := make([]string, 0, len(m))
	for model := range m {
		out = append(out, model)
	}
	sort.Strings(out)
	return out
}

// Hours returns the union of bucket keys over all models in ascending
// order. Bucket keys are fixed width, so this is chronological.
func (m VolumeMatrix) Hours() []string {
	seen := make(map[string]struct{})
	for _, row := range m {
		for bucket := range row {
			seen[bucket] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for bucket := range seen {
		out = append(out, bucket)
	}
	sort.Strings(out)
	return out
}

// ModelTotals sums each model over all buckets.
func (m VolumeMatrix) ModelTotals() map[string]int64 {
	out := make(map[string]int64, len(m))
	for model, row := range m {
		for _, v := range row {
			out[model] += v
		}
	}
	return out
}
