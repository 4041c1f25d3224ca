package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// accessService is the concrete implementation of AccessService.
//
// It orchestrates one access attempt end to end: obtain a probe vector
// (extractor for facial attempts, bypassed for PIN attempts), resolve the
// identity, check area authorization and persist the attempt record. Business
// denials are returned as decisions; infrastructure failures are returned as
// errors and never produce a decision, so a caller holding a Decision knows
// the attempt was fully processed and (subject to recordAllAttempts) logged.
type accessService struct {
	employees     store.EmployeeRepository
	areas         store.AreaRepository
	accessRecords store.AccessRecordRepository

	extractor biometric.Extractor
	matcher   *biometric.Matcher

	// recordAllAttempts controls whether denials that resolved no identity
	// (unrecognized face, unknown PIN, unusable probe) are persisted.
	// Denials of a known identity are always persisted.
	recordAllAttempts bool

	logger *logger.Logger
}

// NewAccessService constructs the access decision engine.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccessService(storages *store.Storages, extractor biometric.Extractor, matcher *biometric.Matcher, cfg config.App, logger *logger.Logger) AccessService {
	return &accessService{
		employees:         storages.Employees,
		areas:             storages.Areas,
		accessRecords:     storages.AccessRecords,
		extractor:         extractor,
		matcher:           matcher,
		recordAllAttempts: cfg.RecordAllAttempts,
		logger:            logger,
	}
}

// AuthenticateFacial runs one facial access attempt.
//
// Flow: validate the request, confirm the area exists, extract the probe
// vector from the image, match it against the active enrolled identities,
// then authorize against the requested area. Extraction outcomes that are
// properties of the probe itself (no face, several faces) are business
// denials; an unreachable extractor is an infrastructure error.
func (s *accessService) AuthenticateFacial(ctx context.Context, request models.FacialAccessRequest) (models.Decision, error) {
	log := logger.FromContext(ctx)

	if len(request.Image) == 0 || request.AreaID == "" || !request.Kind.Valid() {
		log.Error().Str("area_id", request.AreaID).Str("kind", string(request.Kind)).Msg("invalid facial access request")
		return models.Decision{}, ErrInvalidDataProvided
	}

	if err := s.checkArea(ctx, request.AreaID); err != nil {
		return models.Decision{}, err
	}

	probe, err := s.extractor.Extract(ctx, request.Image)
	if err != nil {
		switch {
		case errors.Is(err, biometric.ErrNoFaceDetected):
			return s.finalize(ctx, s.denied(request.AreaID, request.Kind, models.MethodFacial, nil, 0,
				"no face detected in probe image", models.ReasonCodeNoFaceDetected), request.Device)
		case errors.Is(err, biometric.ErrMultipleFaces):
			return s.finalize(ctx, s.denied(request.AreaID, request.Kind, models.MethodFacial, nil, 0,
				"multiple faces detected in probe image", models.ReasonCodeMultipleFaces), request.Device)
		default:
			log.Err(err).Msg("probe vector extraction failed")
			return models.Decision{}, fmt.Errorf("probe vector extraction failed: %w", err)
		}
	}

	candidates, err := s.employees.GetWithBiometrics(ctx)
	if err != nil {
		log.Err(err).Msg("loading enrolled identities failed")
		return models.Decision{}, fmt.Errorf("loading enrolled identities failed: %w", err)
	}

	match, confidence, err := s.matcher.FindMatch(ctx, probe, candidates)
	if err != nil {
		log.Err(err).Msg("biometric matching failed")
		return models.Decision{}, fmt.Errorf("biometric matching failed: %w", err)
	}

	if match == nil {
		return s.finalize(ctx, s.denied(request.AreaID, request.Kind, models.MethodFacial, nil, 0,
			"identity not recognized", models.ReasonCodeNotRecognized), request.Device)
	}

	return s.finalize(ctx, s.authorize(*match, request.AreaID, request.Kind, models.MethodFacial, confidence), request.Device)
}

// AuthenticatePIN runs one PIN access attempt.
//
// The candidate set is every identity with a PIN digest, regardless of area
// or lifecycle state: a correct PIN for the wrong area resolves the identity
// and denies on the area mismatch, and an inactive identity presenting its
// correct PIN is a distinct denial from an unknown credential.
func (s *accessService) AuthenticatePIN(ctx context.Context, request models.PINAccessRequest) (models.Decision, error) {
	log := logger.FromContext(ctx)

	if request.PIN == "" || request.AreaID == "" || !request.Kind.Valid() {
		log.Error().Str("area_id", request.AreaID).Str("kind", string(request.Kind)).Msg("invalid PIN access request")
		return models.Decision{}, ErrInvalidDataProvided
	}

	if err := s.checkArea(ctx, request.AreaID); err != nil {
		return models.Decision{}, err
	}

	candidates, err := s.employees.GetWithPIN(ctx)
	if err != nil {
		log.Err(err).Msg("loading PIN identities failed")
		return models.Decision{}, fmt.Errorf("loading PIN identities failed: %w", err)
	}

	match := s.findPINMatch(ctx, request.PIN, candidates)
	if match == nil {
		return s.finalize(ctx, s.denied(request.AreaID, request.Kind, models.MethodPIN, nil, 0,
			"invalid credential", models.ReasonCodeInvalidCredential), request.Device)
	}

	if match.Status != models.EmployeeActive {
		return s.finalize(ctx, s.denied(request.AreaID, request.Kind, models.MethodPIN, match, 1.0,
			"identity inactive", models.ReasonCodeIdentityInactive), request.Device)
	}

	return s.finalize(ctx, s.authorize(*match, request.AreaID, request.Kind, models.MethodPIN, 1.0), request.Device)
}

// checkArea confirms the requested area exists and accepts access attempts.
// An inactive area is refused before any identification work is done.
func (s *accessService) checkArea(ctx context.Context, areaID string) error {
	log := logger.FromContext(ctx)

	area, err := s.areas.GetByID(ctx, areaID)
	if err != nil {
		log.Err(err).Str("area_id", areaID).Msg("area lookup failed")
		return fmt.Errorf("area lookup failed: %w", err)
	}

	if area.Status != models.AreaActive {
		log.Error().Str("area_id", areaID).Msg("access requested for inactive area")
		return fmt.Errorf("%w: %s", ErrAreaInactive, areaID)
	}

	return nil
}

// findPINMatch verifies the presented PIN against each candidate's digest
// and returns the first identity whose digest matches. Candidates with a
// digest that cannot be parsed are skipped with a warning rather than
// failing the whole attempt.
func (s *accessService) findPINMatch(ctx context.Context, pin string, candidates []models.Employee) *models.Employee {
	log := logger.FromContext(ctx)

	for i := range candidates {
		candidate := &candidates[i]
		if candidate.PINHash == nil {
			continue
		}

		ok, err := crypto.VerifyPIN(pin, *candidate.PINHash)
		if err != nil {
			log.Warn().
				Err(err).
				Int64("employee_id", candidate.EmployeeID).
				Msg("skipping candidate: stored PIN digest is unusable")
			continue
		}
		if ok {
			return candidate
		}
	}

	return nil
}

// authorize compares the matched identity's assigned area against the
// requested one. A mismatch is a denial that keeps the identity reference:
// a known identity attempted access to an area it is not assigned to.
func (s *accessService) authorize(employee models.Employee, areaID string, kind models.AccessKind, method models.AccessMethod, confidence float64) models.Decision {
	if employee.AreaID != areaID {
		reason := fmt.Sprintf("identity is assigned to area %s, access requested for area %s", employee.AreaID, areaID)
		return s.denied(areaID, kind, method, &employee, confidence, reason, models.ReasonCodeAreaMismatch)
	}

	summary := employee.Summary()
	return models.Decision{
		Permitted:  true,
		Employee:   &summary,
		AreaID:     areaID,
		Kind:       kind,
		Method:     method,
		Confidence: confidence,
	}
}

func (s *accessService) denied(areaID string, kind models.AccessKind, method models.AccessMethod, employee *models.Employee, confidence float64, reason, reasonCode string) models.Decision {
	decision := models.Decision{
		AreaID:     areaID,
		Kind:       kind,
		Method:     method,
		Confidence: confidence,
		Reason:     reason,
		ReasonCode: reasonCode,
	}
	if employee != nil {
		summary := employee.Summary()
		decision.Employee = &summary
	}
	return decision
}

// finalize persists the attempt record for the decision and returns the
// decision. When recordAllAttempts is off, denials that resolved no identity
// are not persisted; every other attempt always is. A persistence failure is
// an infrastructure error: the decision is withheld so no outcome is ever
// reported without its ledger row.
func (s *accessService) finalize(ctx context.Context, decision models.Decision, device string) (models.Decision, error) {
	log := logger.FromContext(ctx)

	if !s.recordAllAttempts && !decision.Permitted && decision.Employee == nil {
		log.Debug().
			Str("area_id", decision.AreaID).
			Str("reason_code", decision.ReasonCode).
			Msg("anonymous denial not recorded")
		return decision, nil
	}

	record := models.AccessRecord{
		AreaID:     decision.AreaID,
		OccurredAt: time.Now().UTC(),
		Kind:       decision.Kind,
		Method:     decision.Method,
		Device:     device,
		Confidence: decision.Confidence,
		Outcome:    models.OutcomeDenied,
		Reason:     decision.Reason,
		ReasonCode: decision.ReasonCode,
	}
	if decision.Permitted {
		record.Outcome = models.OutcomePermitted
	}
	if decision.Employee != nil {
		employeeID := decision.Employee.EmployeeID
		record.EmployeeID = &employeeID
	}

	if _, err := s.accessRecords.Append(ctx, record); err != nil {
		log.Err(err).Msg("persisting access record failed")
		return models.Decision{}, fmt.Errorf("persisting access record failed: %w", err)
	}

	return decision, nil
}

// ListAccessRecords returns one page of the filtered ledger.
//
// The page number is 1-based and clamped to [1, totalPages]: an out-of-range
// request returns the nearest valid page instead of an empty result. Total
// in the response always reflects the full filtered set.
func (s *accessService) ListAccessRecords(ctx context.Context, filter models.AccessRecordFilter, page, pageSize int) (models.AccessRecordPage, error) {
	log := logger.FromContext(ctx)

	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}

	filter.Limit = uint64(pageSize)
	filter.Offset = uint64(page-1) * uint64(pageSize)

	records, total, err := s.accessRecords.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("access record query failed")
		return models.AccessRecordPage{}, fmt.Errorf("access record query failed: %w", err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	// Out-of-range page: clamp to the last valid page and rerun the query.
	if totalPages > 0 && page > totalPages {
		page = totalPages
		filter.Offset = uint64(page-1) * uint64(pageSize)

		records, total, err = s.accessRecords.List(ctx, filter)
		if err != nil {
			log.Err(err).Msg("access record query failed")
			return models.AccessRecordPage{}, fmt.Errorf("access record query failed: %w", err)
		}
	}

	return models.AccessRecordPage{
		Items: records,
		Pagination: models.Pagination{
			Total:       total,
			Page:        page,
			PageSize:    pageSize,
			TotalPages:  totalPages,
			HasPrevious: page > 1,
			HasNext:     page < totalPages,
		},
	}, nil
}

// GetAccessRecord returns a single ledger row.
func (s *accessService) GetAccessRecord(ctx context.Context, recordID int64) (models.AccessRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.accessRecords.GetByID(ctx, recordID)
	if err != nil {
		log.Err(err).Int64("record_id", recordID).Msg("access record lookup failed")
		return models.AccessRecord{}, fmt.Errorf("access record lookup failed: %w", err)
	}

	return record, nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)
