package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// withAuth routes the request through the full router with a stubbed
// operator token so URL parameters and the auth middleware are exercised.
func (f *handlerFixture) withAuth(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	f.auth.EXPECT().ParseToken(gomock.Any(), "token").Return(models.Token{Subject: "operator"}, nil)
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	f.handler.Init().ServeHTTP(rec, req)
	return rec
}

func TestCreateEmployee_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any(), "1234").
		DoAndReturn(func(_ context.Context, employee models.Employee, _ string) (models.Employee, error) {
			assert.Equal(t, "Maria", employee.FirstName)
			assert.Equal(t, models.RoleOperator, employee.Role)
			assert.Equal(t, "AREA001", employee.AreaID)
			employee.EmployeeID = 7
			return employee, nil
		})

	body := `{"first_name":"Maria","last_name":"Lopez","national_id":"X1234567",` +
		`"email":"maria.lopez@example.com","role":"Operator","area_id":"AREA001","pin":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	rec := f.withAuth(t, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var summary models.EmployeeSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, int64(7), summary.EmployeeID)
	assert.NotContains(t, rec.Body.String(), "1234", "PIN material must not leak into the response")
}

func TestCreateEmployee_Duplicate(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Employee{}, store.ErrEmployeeAlreadyExists)

	body := `{"first_name":"Maria","last_name":"Lopez","national_id":"X1234567",` +
		`"email":"maria.lopez@example.com","role":"Operator","area_id":"AREA001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetEmployee_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(models.Employee{EmployeeID: 7, FirstName: "Maria", AreaID: "AREA001"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/7", nil)
	rec := f.withAuth(t, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.EmployeeSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, int64(7), summary.EmployeeID)
	assert.False(t, summary.HasBiometrics)
}

func TestGetEmployee_InvalidID(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/seven", nil)
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEmployee_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/7", nil)
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().Delete(gomock.Any(), int64(404)).Return(store.ErrEmployeeNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/404", nil)
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterBiometric_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().
		RegisterBiometric(gomock.Any(), int64(7), []byte("jpeg-bytes")).
		Return(nil)

	body, contentType := multipartImage(t, []byte("jpeg-bytes"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/employees/7/biometric", body)
	req.Header.Set("Content-Type", contentType)
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListEmployees_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.employees.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Employee{
			{EmployeeID: 1, FirstName: "Maria"},
			{EmployeeID: 2, FirstName: "Ivan"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := f.withAuth(t, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []models.EmployeeSummary
	decodeBody(t, rec, &summaries)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(1), summaries[0].EmployeeID)
}

func TestListAreas_Handler(t *testing.T) {
	f := newHandlerFixture(t)

	f.areas.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Area{{AreaID: "AREA001", Name: "Assembly Line A", Status: models.AreaActive}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/areas", nil)
	rec := f.withAuth(t, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var areas []models.Area
	decodeBody(t, rec, &areas)
	require.Len(t, areas, 1)
	assert.Equal(t, "AREA001", areas[0].AreaID)
}

func TestGetArea_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.areas.EXPECT().
		GetByID(gomock.Any(), "NOPE").
		Return(models.Area{}, store.ErrAreaNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/areas/NOPE", nil)
	rec := f.withAuth(t, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
