package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

type employeeServiceFixture struct {
	service   EmployeeService
	employees *mock.MockEmployeeRepository
	areas     *mock.MockAreaRepository
	extractor *mock.MockExtractor
	cipher    *mock.MockVectorCipher
}

func newEmployeeServiceFixture(t *testing.T) *employeeServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &employeeServiceFixture{
		employees: mock.NewMockEmployeeRepository(ctrl),
		areas:     mock.NewMockAreaRepository(ctrl),
		extractor: mock.NewMockExtractor(ctrl),
		cipher:    mock.NewMockVectorCipher(ctrl),
	}

	f.service = NewEmployeeService(
		&store.Storages{Employees: f.employees, Areas: f.areas},
		f.extractor, f.cipher, logger.Nop(),
	)

	return f
}

func validEmployee() models.Employee {
	return models.Employee{
		FirstName:  "Maria",
		LastName:   "Lopez",
		NationalID: "X1234567",
		Email:      "maria.lopez@example.com",
		Role:       models.RoleOperator,
		AreaID:     "AREA001",
	}
}

func TestEmployeeCreate_HashesPIN(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.areas.EXPECT().GetByID(ctx, "AREA001").Return(activeArea("AREA001"), nil)

	var saved models.Employee
	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, employee models.Employee) (models.Employee, error) {
			saved = employee
			employee.EmployeeID = 7
			return employee, nil
		})

	created, err := f.service.Create(ctx, validEmployee(), "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.EmployeeID)

	require.NotNil(t, saved.PINHash, "a supplied PIN must be persisted as a digest")
	assert.NotContains(t, *saved.PINHash, "1234")

	ok, err := crypto.VerifyPIN("1234", *saved.PINHash)
	require.NoError(t, err)
	assert.True(t, ok, "persisted digest must verify against the original PIN")
}

func TestEmployeeCreate_StampsRegisteredAt(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.areas.EXPECT().GetByID(ctx, "AREA001").Return(activeArea("AREA001"), nil)

	var saved models.Employee
	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, employee models.Employee) (models.Employee, error) {
			saved = employee
			return employee, nil
		})

	before := time.Now().UTC()
	_, err := f.service.Create(ctx, validEmployee(), "")
	require.NoError(t, err)

	require.False(t, saved.RegisteredAt.IsZero(), "enrollment must carry a registration timestamp")
	assert.Equal(t, time.UTC, saved.RegisteredAt.Location())
	assert.WithinDuration(t, before, saved.RegisteredAt, time.Second)
}

func TestEmployeeCreate_DefaultsStatusToActive(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.areas.EXPECT().GetByID(ctx, "AREA001").Return(activeArea("AREA001"), nil)
	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, employee models.Employee) (models.Employee, error) {
			assert.Equal(t, models.EmployeeActive, employee.Status)
			assert.Nil(t, employee.PINHash, "no PIN supplied means no digest")
			return employee, nil
		})

	_, err := f.service.Create(ctx, validEmployee(), "")
	require.NoError(t, err)
}

func TestEmployeeCreate_InvalidData(t *testing.T) {
	f := newEmployeeServiceFixture(t)

	tests := []struct {
		name   string
		mutate func(*models.Employee)
	}{
		{"missing first name", func(e *models.Employee) { e.FirstName = "" }},
		{"missing last name", func(e *models.Employee) { e.LastName = "" }},
		{"missing national id", func(e *models.Employee) { e.NationalID = "" }},
		{"missing email", func(e *models.Employee) { e.Email = "" }},
		{"missing area", func(e *models.Employee) { e.AreaID = "" }},
		{"unknown role", func(e *models.Employee) { e.Role = "Ghost" }},
		{"unknown status", func(e *models.Employee) { e.Status = "Frozen" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			employee := validEmployee()
			test.mutate(&employee)

			_, err := f.service.Create(context.Background(), employee, "")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestEmployeeCreate_UnknownArea(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.areas.EXPECT().GetByID(ctx, "AREA001").
		Return(models.Area{}, store.ErrAreaNotFound)

	_, err := f.service.Create(ctx, validEmployee(), "")
	assert.ErrorIs(t, err, store.ErrAreaNotFound)
}

func TestEmployeeCreate_DuplicateNationalID(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.areas.EXPECT().GetByID(ctx, "AREA001").Return(activeArea("AREA001"), nil)
	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Employee{}, store.ErrEmployeeAlreadyExists)

	_, err := f.service.Create(ctx, validEmployee(), "")
	assert.ErrorIs(t, err, store.ErrEmployeeAlreadyExists)
}

func TestEmployeeDelete(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.employees.EXPECT().Delete(ctx, int64(7)).Return(nil)
	require.NoError(t, f.service.Delete(ctx, 7))

	f.employees.EXPECT().Delete(ctx, int64(8)).Return(store.ErrEmployeeNotFound)
	assert.ErrorIs(t, f.service.Delete(ctx, 8), store.ErrEmployeeNotFound)
}

func TestRegisterBiometric(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	vector := []float64{0.1, 0.2, 0.3}
	ciphertext := []byte("ciphertext")
	nonce := []byte("nonce")

	f.employees.EXPECT().GetByID(ctx, int64(7)).Return(models.Employee{EmployeeID: 7}, nil)
	f.extractor.EXPECT().Extract(ctx, []byte("img")).Return(vector, nil)
	f.cipher.EXPECT().EncryptVector(vector).Return(ciphertext, nonce, nil)
	f.employees.EXPECT().UpdateBiometrics(ctx, int64(7), ciphertext, nonce).Return(nil)

	require.NoError(t, f.service.RegisterBiometric(ctx, 7, []byte("img")))
}

func TestRegisterBiometric_EmptyImage(t *testing.T) {
	f := newEmployeeServiceFixture(t)

	err := f.service.RegisterBiometric(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterBiometric_UnknownEmployee(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.employees.EXPECT().GetByID(ctx, int64(404)).
		Return(models.Employee{}, store.ErrEmployeeNotFound)

	err := f.service.RegisterBiometric(ctx, 404, []byte("img"))
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestRegisterBiometric_RejectsUnusableImage(t *testing.T) {
	f := newEmployeeServiceFixture(t)
	ctx := context.Background()

	f.employees.EXPECT().GetByID(ctx, int64(7)).Return(models.Employee{EmployeeID: 7}, nil)
	f.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(nil, biometric.ErrNoFaceDetected)

	err := f.service.RegisterBiometric(ctx, 7, []byte("img"))
	assert.ErrorIs(t, err, biometric.ErrNoFaceDetected)
}
