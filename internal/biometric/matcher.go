package biometric

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// Matcher finds the enrolled identity closest to a probe vector. Candidates
// are stored encrypted; each one is decrypted through the [crypto.VectorCipher]
// for the duration of the comparison only.
//
// The scan is a linear decrypt-and-compare loop, O(candidates × dimension).
// That is acceptable at the scale of an active workforce; an approximate
// nearest-neighbor index would change the strict threshold semantics and is
// deliberately not used.
type Matcher struct {
	cipher    crypto.VectorCipher
	threshold float64
}

// NewMatcher constructs a [Matcher] with the given acceptance threshold.
// A candidate matches only when its Euclidean distance to the probe is
// strictly below threshold. Per-scan logging goes through the context
// logger; the constructor logger is used for startup tracing only.
func NewMatcher(cipher crypto.VectorCipher, threshold float64, logger *logger.Logger) *Matcher {
	logger.Debug().Float64("threshold", threshold).Msg("creating biometric matcher")
	return &Matcher{
		cipher:    cipher,
		threshold: threshold,
	}
}

// FindMatch scans candidates for the one closest to probe.
//
// Candidates without a complete (ciphertext, nonce) pair are skipped.
// A candidate that fails to decrypt or decrypts to a vector of a different
// dimension is skipped and logged — one corrupt record must not abort the
// whole scan. A candidate becomes the current best only when its distance is
// strictly less than both the running minimum and the threshold; ties keep
// the earlier candidate.
//
// Returns (nil, 0, nil) when no candidate is within threshold — including
// the empty candidate set. The returned confidence is 1 - distance of the
// best match; it is a display value, not a probability, and is never
// re-compared against a second threshold downstream.
func (m *Matcher) FindMatch(ctx context.Context, probe []float64, candidates []models.Employee) (*models.Employee, float64, error) {
	log := logger.FromContext(ctx)

	if len(probe) == 0 {
		return nil, 0, fmt.Errorf("%w: empty probe", ErrProbe)
	}

	var best *models.Employee
	bestDistance := m.threshold

	for i := range candidates {
		candidate := &candidates[i]
		if !candidate.HasBiometrics() {
			continue
		}

		stored, err := m.cipher.DecryptVector(candidate.VectorCiphertext, candidate.VectorNonce)
		if err != nil {
			log.Warn().
				Err(err).
				Int64("employee_id", candidate.EmployeeID).
				Msg("skipping candidate: stored vector failed to decrypt")
			continue
		}

		if len(stored) != len(probe) {
			log.Warn().
				Int64("employee_id", candidate.EmployeeID).
				Int("stored_dim", len(stored)).
				Int("probe_dim", len(probe)).
				Msg("skipping candidate: dimension mismatch")
			continue
		}

		distance := euclideanDistance(probe, stored)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	if best == nil {
		return nil, 0, nil
	}

	return best, 1 - bestDistance, nil
}

// euclideanDistance returns the L2 distance between two equal-length vectors.
func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
