package http

import (
	"net/http"

	"lm-events/internal/aggregators"
	"lm-events/internal/ingestors"
	"lm-events/internal/shared/loggers"
	"lm-events/internal/shared/metrics"
	"lm-events/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	volumeService aggregators.VolumeService,
	exportDownloader ingestors.ExportDownloader,
	exportStore stores.ExportStore,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	volumesHandler := NewVolumesHandler(volumeService)
	volumeMatrixHandler := NewVolumeMatrixHandler(volumeService)
	createExportHandler := NewCreateExportHandler(exportDownloader)
	listExportsHandler := NewListExportsHandler(exportStore)

	// Routes
	router.Get("/volumes", errorHandlingAdapter(volumesHandler))
	router.Get("/volumes/matrix", errorHandlingAdapter(volumeMatrixHandler))
	router.Post("/exports/{format}", errorHandlingAdapter(createExportHandler))
	router.Get("/exports/{format}", errorHandlingAdapter(listExportsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
