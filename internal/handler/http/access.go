package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// maxImageSize bounds the probe/enrollment image payload (10 MiB).
const maxImageSize = 10 << 20

// authenticateFacial handles POST /api/access/facial.
//
// The request is multipart/form-data with an "image" file part and "kind",
// "area_id" and "device" form fields. A permitted decision answers 200, a
// denied one 403; both carry the decision payload.
func (h *Handler) authenticateFacial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("missing image file part")
		http.Error(w, "missing image file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading image file part failed")
		http.Error(w, "reading image file part failed", http.StatusBadRequest)
		return
	}

	request := models.FacialAccessRequest{
		Image:  image,
		Kind:   models.AccessKind(r.FormValue("kind")),
		AreaID: r.FormValue("area_id"),
		Device: r.FormValue("device"),
	}

	decision, err := h.services.AccessService.AuthenticateFacial(ctx, request)
	if err != nil {
		log.Err(err).Msg("facial access attempt failed")
		writeError(w, err)
		return
	}

	writeDecision(w, decision)
}

// authenticatePIN handles POST /api/access/pin.
func (h *Handler) authenticatePIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.PINAccessPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	request := models.PINAccessRequest{
		PIN:    payload.PIN,
		Kind:   models.AccessKind(payload.Kind),
		AreaID: payload.AreaID,
		Device: payload.Device,
	}

	decision, err := h.services.AccessService.AuthenticatePIN(ctx, request)
	if err != nil {
		log.Err(err).Msg("PIN access attempt failed")
		writeError(w, err)
		return
	}

	writeDecision(w, decision)
}

// writeDecision serializes a business decision: 200 for permitted, 403 for
// denied. The payload carries the reason so door devices can display it.
func writeDecision(w http.ResponseWriter, decision models.Decision) {
	status := http.StatusOK
	if !decision.Permitted {
		status = http.StatusForbidden
	}
	utils.WriteJSON(w, decision, status)
}

// listAccessRecords handles GET /api/access/records.
//
// All filters are independently optional query parameters: employee_id,
// area_id, kind, method, outcome, from, to (RFC 3339), plus 1-based page and
// page_size pagination.
func (h *Handler) listAccessRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := accessRecordFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid access record filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := intQueryParam(r, "page", 1)
	pageSize := intQueryParam(r, "page_size", 20)

	recordPage, err := h.services.AccessService.ListAccessRecords(ctx, filter, page, pageSize)
	if err != nil {
		log.Err(err).Msg("access record listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, recordPage, http.StatusOK)
}

// getAccessRecord handles GET /api/access/records/{recordID}.
func (h *Handler) getAccessRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid record identifier")
		http.Error(w, "invalid record identifier", http.StatusBadRequest)
		return
	}

	record, err := h.services.AccessService.GetAccessRecord(ctx, recordID)
	if err != nil {
		log.Err(err).Int64("record_id", recordID).Msg("access record lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func accessRecordFilterFromQuery(r *http.Request) (models.AccessRecordFilter, error) {
	query := r.URL.Query()

	filter := models.AccessRecordFilter{
		AreaID:  query.Get("area_id"),
		Kind:    models.AccessKind(query.Get("kind")),
		Method:  models.AccessMethod(query.Get("method")),
		Outcome: models.Outcome(query.Get("outcome")),
	}

	if raw := query.Get("employee_id"); raw != "" {
		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.AccessRecordFilter{}, err
		}
		filter.EmployeeID = &employeeID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.AccessRecordFilter{}, err
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.AccessRecordFilter{}, err
		}
		filter.To = &to
	}

	return filter, nil
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
