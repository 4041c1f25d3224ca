package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// createEmployee handles POST /api/employees.
func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.EmployeeCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employee := models.Employee{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		NationalID: payload.NationalID,
		BirthDate:  payload.BirthDate,
		Email:      payload.Email,
		Role:       models.Role(payload.Role),
		Status:     models.EmployeeStatus(payload.Status),
		AreaID:     payload.AreaID,
	}

	created, err := h.services.EmployeeService.Create(ctx, employee, payload.PIN)
	if err != nil {
		log.Err(err).Str("national_id", payload.NationalID).Msg("employee creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created.Summary(), http.StatusCreated)
}

// listEmployees handles GET /api/employees.
func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employees, err := h.services.EmployeeService.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("employee listing failed")
		writeError(w, err)
		return
	}

	summaries := make([]models.EmployeeSummary, 0, len(employees))
	for _, employee := range employees {
		summaries = append(summaries, employee.Summary())
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

// getEmployee handles GET /api/employees/{employeeID}.
func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid employee identifier")
		http.Error(w, "invalid employee identifier", http.StatusBadRequest)
		return
	}

	employee, err := h.services.EmployeeService.GetByID(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, employee.Summary(), http.StatusOK)
}

// deleteEmployee handles DELETE /api/employees/{employeeID}.
// The purge cascades over every access record referencing the employee.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid employee identifier")
		http.Error(w, "invalid employee identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.EmployeeService.Delete(ctx, employeeID); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// registerBiometric handles POST /api/employees/{employeeID}/biometric.
//
// The request is multipart/form-data with an "image" file part holding the
// enrollment photo. A repeated call replaces the previous enrollment.
func (h *Handler) registerBiometric(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid employee identifier")
		http.Error(w, "invalid employee identifier", http.StatusBadRequest)
		return
	}

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

	if err := h.services.EmployeeService.RegisterBiometric(ctx, employeeID, image); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("biometric enrollment failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func employeeIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
}
