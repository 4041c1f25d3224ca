package service

import (
	"github.com/MKhiriev/go-gate-keeper/internal/biometric"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AccessService   AccessService
	EmployeeService EmployeeService
	AreaService     AreaService
	AuthService     AuthService
}

// NewServices wires all services over the shared storages, extractor and
// vector cipher.
func NewServices(storages *store.Storages, extractor biometric.Extractor, cipher crypto.VectorCipher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	matcher := biometric.NewMatcher(cipher, cfg.App.MatchThreshold, logger)

	return &Services{
		AccessService:   NewAccessService(storages, extractor, matcher, cfg.App, logger),
		EmployeeService: NewEmployeeService(storages, extractor, cipher, logger),
		AreaService:     NewAreaService(storages, logger),
		AuthService:     NewAuthService(cfg.App, logger),
	}
}
