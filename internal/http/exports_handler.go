package http

import (
	"net/http"
	"time"

	"lm-events/internal/ingestors"
	"lm-events/internal/models"
	"lm-events/internal/stores"

	"github.com/go-chi/chi/v5"
)

// ExportResponse describes a stored export.
type ExportResponse struct {
	Key       string              `json:"key"`
	Format    models.ExportFormat `json:"format"`
	CreatedAt time.Time           `json:"createdAt"`
	Size      int64               `json:"size"`
}

func newExportResponse(info stores.ExportInfo) ExportResponse {
	return ExportResponse{Key: info.Key, Format: info.Format, CreatedAt: info.CreatedAt, Size: info.Size}
}

type createExportHandler struct {
	downloader ingestors.ExportDownloader
}

func NewCreateExportHandler(downloader ingestors.ExportDownloader) AppHttpHandler {
	return &createExportHandler{downloader: downloader}
}

// Handle processes POST /exports/{format} requests.
func (h *createExportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	format, err := models.NewExportFormatFromString(chi.URLParam(r, "format"))
	if err != nil {
		return errInvalidExportFormat(err)
	}
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return err
	}

	info, err := h.downloader.Download(r.Context(), format, ingestors.DownloadOptions{Skip: skip, Limit: limit})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, newExportResponse(*info))
}

type listExportsHandler struct {
	store stores.ExportStore
}

func NewListExportsHandler(store stores.ExportStore) AppHttpHandler {
	return &listExportsHandler{store: store}
}

// Handle processes GET /exports/{format} requests.
func (h *listExportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	format, err := models.NewExportFormatFromString(chi.URLParam(r, "format"))
	if err != nil {
		return errInvalidExportFormat(err)
	}
	infos, err := h.store.List(r.Context(), format)
	if err != nil {
		return err
	}
	out := make([]ExportResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, newExportResponse(info))
	}
	return writeJSON(w, http.StatusOK, out)
}
