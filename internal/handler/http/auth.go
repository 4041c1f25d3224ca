package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// login exchanges the shared operator key for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, payload.OperatorKey)
	if err != nil {
		log.Err(err).Msg("operator login failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
