package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func newTestEmployeeRepo(t *testing.T) (*employeeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &employeeRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func employeeColumnNames() []string {
	return []string{
		"employee_id", "first_name", "last_name", "national_id", "birth_date", "email",
		"role", "status", "area_id", "pin_hash", "vector_ciphertext", "vector_nonce", "registered_at",
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	employee := models.Employee{
		FirstName:    "Maria",
		LastName:     "Lopez",
		NationalID:   "X1234567",
		BirthDate:    "1990-04-12",
		Email:        "maria@example.com",
		Role:         models.RoleOperator,
		Status:       models.EmployeeActive,
		AreaID:       "AREA001",
		RegisteredAt: now,
	}

	rows := sqlmock.
		NewRows([]string{"employee_id", "registered_at"}).
		AddRow(1, now)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(employee.FirstName, employee.LastName, employee.NationalID, employee.BirthDate,
			employee.Email, employee.Role, employee.Status, employee.AreaID, nil, now).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, employee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.EmployeeID != 1 {
		t.Errorf("expected EmployeeID=1, got %d", created.EmployeeID)
	}
	if !created.RegisteredAt.Equal(now) {
		t.Errorf("expected RegisteredAt=%v, got %v", now, created.RegisteredAt)
	}
}

func TestCreateEmployee_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO employees").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(ctx, models.Employee{NationalID: "X1234567"})
	if !errors.Is(err, ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(ctx, 42)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestGetEmployeeByID_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	pinHash := "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"

	rows := sqlmock.NewRows(employeeColumnNames()).
		AddRow(7, "Maria", "Lopez", "X1234567", "1990-04-12", "maria@example.com",
			"Operator", "Active", "AREA001", pinHash, []byte{0x01}, []byte{0x02}, now)

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	employee, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employee.EmployeeID != 7 {
		t.Errorf("expected EmployeeID=7, got %d", employee.EmployeeID)
	}
	if employee.PINHash == nil || *employee.PINHash != pinHash {
		t.Errorf("expected PIN hash to round-trip, got %v", employee.PINHash)
	}
	if !employee.HasBiometrics() {
		t.Error("expected biometric pair to be present")
	}
}

func TestGetWithBiometrics_FiltersOnActive(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(employeeColumnNames())

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WithArgs(models.EmployeeActive).
		WillReturnRows(rows)

	employees, err := repo.GetWithBiometrics(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 0 {
		t.Errorf("expected empty result, got %d rows", len(employees))
	}
}

func TestUpdateBiometrics_NotFound(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE employees").
		WithArgs([]byte{0x01}, []byte{0x02}, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBiometrics(ctx, 99, []byte{0x01}, []byte{0x02})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateBiometrics_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE employees").
		WithArgs([]byte{0x01}, []byte{0x02}, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateBiometrics(ctx, 7, []byte{0x01}, []byte{0x02}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteEmployee_CascadesOverAccessRecords(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM access_records").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteEmployee_NotFoundRollsBack(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM access_records").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(ctx, 99)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
