package biometric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gate-keeper/internal/crypto"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func newTestCipher(t *testing.T) crypto.VectorCipher {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}
	c, err := crypto.NewVectorCipher(key)
	require.NoError(t, err)
	return c
}

func enrolled(t *testing.T, c crypto.VectorCipher, employeeID int64, vector []float64) models.Employee {
	t.Helper()
	ciphertext, nonce, err := c.EncryptVector(vector)
	require.NoError(t, err)
	return models.Employee{
		EmployeeID:       employeeID,
		Status:           models.EmployeeActive,
		VectorCiphertext: ciphertext,
		VectorNonce:      nonce,
	}
}

func TestFindMatch_IdenticalVector(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0.1, 0.2, 0.3, 0.4}
	candidates := []models.Employee{
		enrolled(t, c, 1, []float64{0.9, 0.9, 0.9, 0.9}),
		enrolled(t, c, 2, probe),
	}

	match, confidence, err := m.FindMatch(context.Background(), probe, candidates)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(2), match.EmployeeID)
	assert.InDelta(t, 1.0, confidence, 1e-12)
}

func TestFindMatch_NoCandidateWithinThreshold(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0, 0, 0}
	candidates := []models.Employee{
		enrolled(t, c, 1, []float64{5, 5, 5}),
	}

	match, confidence, err := m.FindMatch(context.Background(), probe, candidates)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Zero(t, confidence)
}

func TestFindMatch_ThresholdIsStrict(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0, 0}

	// distance exactly equal to the threshold must not match
	atThreshold := []models.Employee{enrolled(t, c, 1, []float64{0.6, 0})}
	match, _, err := m.FindMatch(context.Background(), probe, atThreshold)
	require.NoError(t, err)
	assert.Nil(t, match, "distance == threshold must be rejected")

	// distance just inside the threshold must match
	justInside := []models.Employee{enrolled(t, c, 1, []float64{0.59, 0})}
	match, confidence, err := m.FindMatch(context.Background(), probe, justInside)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.InDelta(t, 1-0.59, confidence, 1e-9)
}

func TestFindMatch_PicksNearestCandidate(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0, 0}
	candidates := []models.Employee{
		enrolled(t, c, 1, []float64{0.5, 0}),
		enrolled(t, c, 2, []float64{0.1, 0}),
		enrolled(t, c, 3, []float64{0.3, 0}),
	}

	match, confidence, err := m.FindMatch(context.Background(), probe, candidates)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(2), match.EmployeeID)
	assert.InDelta(t, 0.9, confidence, 1e-9)
}

func TestFindMatch_TieKeepsFirstCandidate(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0, 0}
	candidates := []models.Employee{
		enrolled(t, c, 7, []float64{0.2, 0}),
		enrolled(t, c, 8, []float64{0.2, 0}),
	}

	match, _, err := m.FindMatch(context.Background(), probe, candidates)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(7), match.EmployeeID, "equal distances must keep the earlier candidate")
}

func TestFindMatch_SkipsUnusableCandidates(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	probe := []float64{0, 0}

	corrupt := enrolled(t, c, 1, []float64{0.1, 0})
	corrupt.VectorCiphertext[0] ^= 0xFF

	wrongDim := enrolled(t, c, 2, []float64{0.1, 0, 0})

	noBiometrics := models.Employee{EmployeeID: 3, Status: models.EmployeeActive}

	good := enrolled(t, c, 4, []float64{0.2, 0})

	match, _, err := m.FindMatch(context.Background(), probe, []models.Employee{corrupt, wrongDim, noBiometrics, good})
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(4), match.EmployeeID)
}

func TestFindMatch_EmptyCandidateSet(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	match, confidence, err := m.FindMatch(context.Background(), []float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Zero(t, confidence)
}

func TestFindMatch_EmptyProbe(t *testing.T) {
	c := newTestCipher(t)
	m := NewMatcher(c, 0.6, logger.Nop())

	_, _, err := m.FindMatch(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrProbe)
}
