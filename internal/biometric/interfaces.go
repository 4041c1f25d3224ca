package biometric

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/extractor_mock.go -package=mock

// VectorDim is the dimension of the facial feature vectors produced by the
// external encoder model. The core treats the model as opaque; only the
// dimension is part of the contract.
const VectorDim = 128

// Extractor turns an image into a facial feature vector. The extraction
// model itself is external; implementations are thin clients.
type Extractor interface {
	// Extract returns the probe vector for the single face in image.
	// Returns [ErrNoFaceDetected] when no face is found, [ErrMultipleFaces]
	// when more than one is found, and an error wrapping
	// [ErrExtractorUnavailable] on transport or service failures.
	Extract(ctx context.Context, image []byte) ([]float64, error)
}
