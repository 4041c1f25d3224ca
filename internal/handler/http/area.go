package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// listAreas handles GET /api/areas.
func (h *Handler) listAreas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	areas, err := h.services.AreaService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("area listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, areas, http.StatusOK)
}

// getArea handles GET /api/areas/{areaID}.
func (h *Handler) getArea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	areaID := chi.URLParam(r, "areaID")

	area, err := h.services.AreaService.GetByID(ctx, areaID)
	if err != nil {
		log.Err(err).Str("area_id", areaID).Msg("area lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, area, http.StatusOK)
}
