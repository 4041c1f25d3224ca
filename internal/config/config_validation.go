// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The vector encryption key is the hard requirement: the biometric core
// cannot operate without it, so a missing or malformed key fails startup
// instead of surfacing per-request.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.VectorKey == "" {
		return fmt.Errorf("%w: vector key is not set", ErrInvalidAppConfigs)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.App.VectorKey)
	if err != nil {
		return fmt.Errorf("%w: vector key is not valid base64: %w", ErrInvalidAppConfigs, err)
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: decoded vector key must be 16, 24 or 32 bytes, got %d", ErrInvalidAppConfigs, len(key))
	}

	if cfg.App.MatchThreshold <= 0 || cfg.App.MatchThreshold >= 1 {
		return fmt.Errorf("%w: match threshold must be in (0, 1), got %v", ErrInvalidAppConfigs, cfg.App.MatchThreshold)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is not set", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	return nil
}

// VectorKeyBytes decodes the configured base64 vector key. validate must
// have accepted the config first; errors here only occur on unvalidated
// configs.
func (cfg *StructuredConfig) VectorKeyBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(cfg.App.VectorKey)
}
