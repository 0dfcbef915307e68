package http

import (
	"net/http"

	"lm-events/internal/aggregators"
	"lm-events/internal/models"
)

// VolumesResponse is the dense rendering used by stacked charts.
type VolumesResponse struct {
	WindowSize models.WindowSize          `json:"windowSize"`
	Collected  int                        `json:"collected"`
	Models     []string                   `json:"models"`
	Hours      []string                   `json:"hours"`
	Series     [][]aggregators.DensePoint `json:"series"`
}

// VolumeMatrixResponse is the sparse rendering of the volumes.
type VolumeMatrixResponse struct {
	WindowSize models.WindowSize        `json:"windowSize"`
	Collected  int                      `json:"collected"`
	Volumes    aggregators.VolumeMatrix `json:"volumes"`
	Totals     map[string]int64         `json:"totals"`
	Total      int64                    `json:"total"`
}

type volumesHandler struct {
	volumeService aggregators.VolumeService
	sparse        bool
}

func NewVolumesHandler(volumeService aggregators.VolumeService) AppHttpHandler {
	return &volumesHandler{volumeService: volumeService}
}

func NewVolumeMatrixHandler(volumeService aggregators.VolumeService) AppHttpHandler {
	return &volumesHandler{volumeService: volumeService, sparse: true}
}

// Handle processes GET /volumes and GET /volumes/matrix requests.
func (h *volumesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return err
	}

	report, svcErr := h.volumeService.Volumes(r.Context(), limit)
	if svcErr != nil {
		return svcErr
	}

	if h.sparse {
		matrix := report.Matrix
		if matrix == nil {
			matrix = aggregators.VolumeMatrix{}
		}
		return writeJSON(w, http.StatusOK, VolumeMatrixResponse{
			WindowSize: report.WindowSize,
			Collected:  report.Collected,
			Volumes:    matrix,
			Totals:     matrix.ModelTotals(),
			Total:      report.Counted,
		})
	}

	series := report.Series
	if series == nil {
		series = [][]aggregators.DensePoint{}
	}
	return writeJSON(w, http.StatusOK, VolumesResponse{
		WindowSize: report.WindowSize,
		Collected:  report.Collected,
		Models:     nonNil(report.Models),
		Hours:      nonNil(report.Hours),
		Series:     series,
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
