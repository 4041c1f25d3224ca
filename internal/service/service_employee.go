package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// employeeService is the concrete implementation of EmployeeService.
// Enrollment of the biometric payload goes through the extractor and the
// vector cipher so that plaintext feature vectors never reach storage.
type employeeService struct {
	employees store.EmployeeRepository
	areas     store.AreaRepository

	extractor biometric.Extractor
	cipher    crypto.VectorCipher

	logger *logger.Logger
}

// NewEmployeeService constructs an EmployeeService over the given
// repositories, extractor and cipher.
func NewEmployeeService(storages *store.Storages, extractor biometric.Extractor, cipher crypto.VectorCipher, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employees: storages.Employees,
		areas:     storages.Areas,
		extractor: extractor,
		cipher:    cipher,
		logger:    logger,
	}
}

// Create enrolls a new employee record.
//
// The assigned area must exist. When a non-empty pin is supplied it is
// hashed with argon2id before persistence; the plaintext PIN is discarded.
// An empty Status defaults to Active. RegisteredAt is stamped with the
// current UTC time; any caller-supplied value is overwritten.
func (s *employeeService) Create(ctx context.Context, employee models.Employee, pin string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if employee.Status == "" {
		employee.Status = models.EmployeeActive
	}

	if employee.FirstName == "" || employee.LastName == "" ||
		employee.NationalID == "" || employee.Email == "" ||
		employee.AreaID == "" || !employee.Role.Valid() || !employee.Status.Valid() {
		log.Error().Str("national_id", employee.NationalID).Msg("invalid employee data provided")
		return models.Employee{}, ErrInvalidDataProvided
	}

	if _, err := s.areas.GetByID(ctx, employee.AreaID); err != nil {
		log.Err(err).Str("area_id", employee.AreaID).Msg("area lookup failed")
		return models.Employee{}, fmt.Errorf("area lookup failed: %w", err)
	}

	if pin != "" {
		pinHash, err := crypto.HashPIN(pin)
		if err != nil {
			log.Err(err).Msg("PIN hashing failed")
			return models.Employee{}, fmt.Errorf("PIN hashing failed: %w", err)
		}
		employee.PINHash = &pinHash
	}

	employee.RegisteredAt = time.Now().UTC()

	created, err := s.employees.Create(ctx, employee)
	if err != nil {
		log.Err(err).Str("national_id", employee.NationalID).Msg("employee creation ended with error")
		return models.Employee{}, fmt.Errorf("employee creation ended with error: %w", err)
	}

	return created, nil
}

// GetByID returns one employee record.
func (s *employeeService) GetByID(ctx context.Context, employeeID int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee lookup failed")
		return models.Employee{}, fmt.Errorf("employee lookup failed: %w", err)
	}

	return employee, nil
}

// GetAll returns every employee record.
func (s *employeeService) GetAll(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("employee listing failed")
		return nil, fmt.Errorf("employee listing failed: %w", err)
	}

	return employees, nil
}

// Delete purges the employee and every access record referencing it.
func (s *employeeService) Delete(ctx context.Context, employeeID int64) error {
	log := logger.FromContext(ctx)

	if err := s.employees.Delete(ctx, employeeID); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee deletion failed")
		return fmt.Errorf("employee deletion failed: %w", err)
	}

	return nil
}

// RegisterBiometric enrolls the employee's facial feature vector.
//
// The enrollment image goes through the same extractor as access probes and
// is rejected on the same grounds (no face, several faces). The extracted
// vector is encrypted and written as an atomic (ciphertext, nonce) pair;
// a repeated call replaces the previous enrollment.
func (s *employeeService) RegisterBiometric(ctx context.Context, employeeID int64, image []byte) error {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		log.Error().Int64("employee_id", employeeID).Msg("empty enrollment image provided")
		return ErrInvalidDataProvided
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("employee lookup failed")
		return fmt.Errorf("employee lookup failed: %w", err)
	}

	vector, err := s.extractor.Extract(ctx, image)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("enrollment vector extraction failed")
		return fmt.Errorf("enrollment vector extraction failed: %w", err)
	}

	ciphertext, nonce, err := s.cipher.EncryptVector(vector)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("vector encryption failed")
		return fmt.Errorf("vector encryption failed: %w", err)
	}

	if err := s.employees.UpdateBiometrics(ctx, employeeID, ciphertext, nonce); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("storing biometric payload failed")
		return fmt.Errorf("storing biometric payload failed: %w", err)
	}

	return nil
}
