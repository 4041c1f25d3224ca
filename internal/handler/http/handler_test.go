package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
)

// handlerFixture bundles a Handler with mocked services so each test can set
// expectations on exactly the service it exercises.
type handlerFixture struct {
	handler   *Handler
	access    *mock.MockAccessService
	employees *mock.MockEmployeeService
	areas     *mock.MockAreaService
	auth      *mock.MockAuthService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		access:    mock.NewMockAccessService(ctrl),
		employees: mock.NewMockEmployeeService(ctrl),
		areas:     mock.NewMockAreaService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
	}

	f.handler = NewHandler(&service.Services{
		AccessService:   f.access,
		EmployeeService: f.employees,
		AreaService:     f.areas,
		AuthService:     f.auth,
	}, logger.Nop())

	return f
}

// decodeBody unmarshals the recorded JSON response body into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}
